package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/storage"
)

// Response is the envelope of every API response
type Response struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Data     any              `json:"data,omitempty"`
	Error    string           `json:"error,omitempty"`
	Warnings []common.Warning `json:"warnings,omitempty"`
}

// SuccessResponse sends a successful response
func SuccessResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WithWarnings sends a successful response carrying integrity warnings
func WithWarnings(c *gin.Context, status int, message string, data any, warnings common.Diagnostics) {
	c.JSON(status, Response{
		Success:  true,
		Message:  message,
		Data:     data,
		Warnings: warnings,
	})
}

// ErrorResponseWithMessage sends an error response
func ErrorResponseWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequestError sends a 400
func BadRequestError(c *gin.Context, message string) {
	ErrorResponseWithMessage(c, http.StatusBadRequest, message)
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotLoaded):
		return http.StatusConflict
	case errors.Is(err, storage.ErrDocumentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError sends the error with the status StatusFor assigns it
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)
	ErrorResponseWithMessage(c, StatusFor(err), err.Error())
}
