// Package response writes the JSON envelopes shared by every endpoint.
package response

import (
	"net/http"
	"time"

	"wellness-dispatch/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request-id middleware sets.
const RequestIDKey = "request_id"

type meta struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func metaFor(c *gin.Context) meta {
	id := c.GetString(RequestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return meta{RequestID: id, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}

type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// PageData is the data payload of a paginated listing.
type PageData struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func OK(c *gin.Context, data interface{})       { c.JSON(http.StatusOK, Envelope(c, data)) }
func Created(c *gin.Context, data interface{})  { c.JSON(http.StatusCreated, Envelope(c, data)) }
func Accepted(c *gin.Context, data interface{}) { c.JSON(http.StatusAccepted, Envelope(c, data)) }

// Page writes one page of a listing. total_pages rounds up and is 0 when
// pageSize is not positive.
func Page(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	pd := PageData{Items: items, Total: total, Page: page, PageSize: pageSize}
	if pageSize > 0 {
		pd.TotalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	OK(c, pd)
}

// Error writes err as an error envelope. Errors without an AppError in
// their chain are reported as SYS_000. The original error is attached to
// c.Errors so the request logger records the cause.
func Error(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	appErr, ok := apperror.As(err)
	if !ok {
		appErr = apperror.FromCode(apperror.CodeUnknown)
	}
	m := metaFor(c)
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: m.RequestID,
		Timestamp: m.Timestamp,
	})
}

// Envelope builds the success envelope without writing it.
func Envelope(c *gin.Context, data interface{}) SuccessResponse {
	m := metaFor(c)
	return SuccessResponse{Data: data, RequestID: m.RequestID, Timestamp: m.Timestamp}
}
