package handlers

import (
	"net/http"

	"github.com/examai/exam-service/internal/services"
	"github.com/examai/exam-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// BaseHandler provides common logging and error mapping for all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, message string, fields ...any) {
	base := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"remote_addr", c.ClientIP(),
	}
	h.logger.Info(message, append(base, fields...)...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, message string, fields ...any) {
	base := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	h.logger.LogError(err, message, append(base, fields...)...)
}

// RespondWithError sends a consistent error response and logs it.
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.logger.Warn(message, "status_code", statusCode)
	}
	c.JSON(statusCode, ErrorResponse{Message: message})
}

// handleServiceError maps service errors onto HTTP status codes. NotFound
// errors carry the missing entity's name in their message.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
		})
	default:
		h.LogError(c, err, "internal error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
