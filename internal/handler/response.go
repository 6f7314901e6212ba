package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/internal/domain"
	"doclens/internal/middleware"
)

// APIResponse is the success envelope for all API responses.
type APIResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

// ErrorResponse is the error envelope for all API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{OK: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates an error to an HTTP status code and message.
// Only a missing upload is a user error; configuration, inference, and
// internal failures all surface as 500s carrying the failure message.
func MapDomainError(err error) (status int, msg string) {
	if errors.Is(err, domain.ErrMissingFile) {
		return http.StatusBadRequest, "No file uploaded"
	}
	return http.StatusInternalServerError, err.Error()
}

// HandleError maps an error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		log.Printf("[%s] analysis error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
