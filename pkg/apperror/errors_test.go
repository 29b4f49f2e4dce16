package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[WH_001] event not found", ErrNotFound("event").Error())
	assert.Equal(t, "[SYS_001] Internal database error: connection refused",
		ErrDatabaseError(errors.New("connection refused")).Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInvalidAccessKey(), "SEC_001", 401},
		{ErrInvalidSignature(), "SEC_002", 401},
		{ErrTimestampExpired(), "SEC_003", 403},
		{ErrNonceUsed(), "SEC_004", 403},
		{ErrNotFound("event"), "WH_001", 404},
		{ErrInvalidDestination("url"), "WH_002", 400},
		{ErrInvalidEvent("type"), "WH_003", 400},
		{ErrEventNotRetryable(), "WH_004", 409},
		{ErrInvalidCredentials(), "AUTH_001", 401},
		{ErrAccountLocked(), "AUTH_002", 403},
		{ErrInvalidToken(), "AUTH_003", 401},
		{ErrRateLimitExceeded(), "RATE_001", 429},
		{ErrUnsupportedMedia(), "REQ_002", 415},
		{Validation("bad"), "REQ_001", 400},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestFromCode_UnknownFallsBack(t *testing.T) {
	err := FromCode("NOPE_999")
	assert.Equal(t, CodeUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestFromCode_ReturnsFreshValues(t *testing.T) {
	a := FromCode(CodeInternal)
	a.Err = errors.New("x")
	assert.Nil(t, FromCode(CodeInternal).Err)
}

func TestCodeOf_WalksChain(t *testing.T) {
	wrapped := fmt.Errorf("load destination: %w", ErrNotFound("destination"))

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeNotFound))
	assert.False(t, Is(wrapped, CodeInvalidEvent))
	assert.Empty(t, CodeOf(errors.New("plain")))
	assert.False(t, Is(nil, CodeUnknown))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "destination not found", appErr.Message)
}

func TestInternalErrors_KeepCause(t *testing.T) {
	cause := errors.New("pool exhausted")

	for _, err := range []*AppError{InternalError(cause), ErrDatabaseError(cause), ErrEncryptionFailure(cause)} {
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	}
	assert.Equal(t, CodeEncryption, ErrEncryptionFailure(cause).Code)
	assert.Nil(t, New(CodeValidation, "x", 400).Unwrap())
}
