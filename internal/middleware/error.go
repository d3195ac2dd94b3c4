package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/amrulpxl/erpcore-docs/pkg/errors"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// ErrorHandler recovers panics and renders AppErrors attached to the
// context. Unexpected errors are logged with detail and answered with a
// bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", string(debug.Stack())).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if appErr, ok := err.(*errors.AppError); ok {
				body := gin.H{"error": appErr.Message}
				if len(appErr.Fields) > 0 {
					body["errors"] = appErr.Fields
				}
				c.JSON(appErr.Code, body)
				return
			}

			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled request error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}
