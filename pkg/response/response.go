package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/abel4moyo/zimnat-api-sub002/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Meta carries request correlation data on every envelope.
type Meta struct {
	RequestID   string `json:"requestId"`
	GeneratedAt string `json:"generatedAt"`
}

// Envelope is the standard response body: exactly one of Data or Error
// is set, discriminated by Success.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

// ErrorBody is the machine-readable error payload.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Meta:    buildMeta(c),
	})
}

// Error sends an error response. It checks if err is an
// *apperror.AppError and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Envelope{
			Success: false,
			Error:   &ErrorBody{Code: appErr.Code, Message: appErr.Message},
			Meta:    buildMeta(c),
		})
		return
	}

	// Unknown error -> 500, no internal detail leaks to the caller
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "INTERNAL_ERROR", Message: "Internal server error"},
		Meta:    buildMeta(c),
	})
}

func buildMeta(c *gin.Context) Meta {
	return Meta{
		RequestID:   GetRequestID(c),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// GetRequestID retrieves the correlation id from context, or generates one.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
