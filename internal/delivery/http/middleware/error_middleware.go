package middleware

import (
	"errors"
	"net/http"

	"empleaworks-backend/internal/delivery/http/response"
	"empleaworks-backend/pkg/apperror"
	"empleaworks-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the gin context into the
// JSON envelope. Non-AppError values are logged server-side and answered
// with a generic message so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
