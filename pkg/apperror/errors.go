// Package apperror defines the coded errors returned by every API surface.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes. The prefix names the area the failure belongs to.
const (
	CodeInvalidAccessKey = "SEC_001"
	CodeInvalidSignature = "SEC_002"
	CodeTimestampExpired = "SEC_003"
	CodeNonceUsed        = "SEC_004"
	CodeNotFound         = "WH_001"
	CodeInvalidDest      = "WH_002"
	CodeInvalidEvent     = "WH_003"
	CodeNotRetryable     = "WH_004"
	CodeBadCredentials   = "AUTH_001"
	CodeAccountLocked    = "AUTH_002"
	CodeInvalidToken     = "AUTH_003"
	CodeRateLimited      = "RATE_001"
	CodeUnknown          = "SYS_000"
	CodeInternal         = "SYS_001"
	CodeEncryption       = "SYS_003"
	CodeValidation       = "REQ_001"
	CodeUnsupportedMedia = "REQ_002"
)

type entry struct {
	status  int
	message string
}

var catalog = map[string]entry{
	CodeInvalidAccessKey: {http.StatusUnauthorized, "Invalid access key"},
	CodeInvalidSignature: {http.StatusUnauthorized, "Invalid signature"},
	CodeTimestampExpired: {http.StatusForbidden, "Request timestamp expired"},
	CodeNonceUsed:        {http.StatusForbidden, "Nonce has already been used"},
	CodeNotRetryable:     {http.StatusConflict, "Event is currently being processed"},
	CodeBadCredentials:   {http.StatusUnauthorized, "Invalid credentials"},
	CodeAccountLocked:    {http.StatusForbidden, "Account is temporarily locked"},
	CodeInvalidToken:     {http.StatusUnauthorized, "Invalid or expired token"},
	CodeRateLimited:      {http.StatusTooManyRequests, "Rate limit exceeded"},
	CodeUnknown:          {http.StatusInternalServerError, "Internal server error"},
	CodeInternal:         {http.StatusInternalServerError, "Internal server error"},
	CodeEncryption:       {http.StatusInternalServerError, "Encryption service failure"},
	CodeUnsupportedMedia: {http.StatusUnsupportedMediaType, "Content-Type must be application/json"},
}

// AppError carries a stable code and the HTTP status it is reported with.
// Err is logged but never serialized.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return "[" + e.Code + "] " + e.Message
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// New builds an AppError with an explicit message and status.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap is New with an internal cause attached.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	e := New(code, message, httpStatus)
	e.Err = err
	return e
}

// FromCode builds the catalogued error for code. Unknown codes become
// SYS_000 so a typo never leaks a zero status.
func FromCode(code string) *AppError {
	ent, ok := catalog[code]
	if !ok {
		code, ent = CodeUnknown, catalog[CodeUnknown]
	}
	return New(code, ent.message, ent.status)
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code carried anywhere in err's chain, or "".
func CodeOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

func ErrInvalidAccessKey() *AppError { return FromCode(CodeInvalidAccessKey) }
func ErrInvalidSignature() *AppError { return FromCode(CodeInvalidSignature) }
func ErrTimestampExpired() *AppError { return FromCode(CodeTimestampExpired) }
func ErrNonceUsed() *AppError        { return FromCode(CodeNonceUsed) }

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, entity+" not found", http.StatusNotFound)
}

func ErrInvalidDestination(reason string) *AppError {
	return New(CodeInvalidDest, "Invalid destination: "+reason, http.StatusBadRequest)
}

func ErrInvalidEvent(reason string) *AppError {
	return New(CodeInvalidEvent, "Invalid event: "+reason, http.StatusBadRequest)
}

func ErrEventNotRetryable() *AppError  { return FromCode(CodeNotRetryable) }
func ErrInvalidCredentials() *AppError { return FromCode(CodeBadCredentials) }
func ErrAccountLocked() *AppError      { return FromCode(CodeAccountLocked) }
func ErrInvalidToken() *AppError       { return FromCode(CodeInvalidToken) }
func ErrRateLimitExceeded() *AppError  { return FromCode(CodeRateLimited) }
func ErrUnsupportedMedia() *AppError   { return FromCode(CodeUnsupportedMedia) }

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	e := FromCode(CodeEncryption)
	e.Err = err
	return e
}

// InternalError hides err behind a generic SYS_001.
func InternalError(err error) *AppError {
	e := FromCode(CodeInternal)
	e.Err = err
	return e
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
