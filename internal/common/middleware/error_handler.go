package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/pkg/logger"
)

// ErrorHandler catches panics and converts them to proper error responses.
// No failure is fatal to the process; the client simply gets the error and
// the UI returns to a stable state.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				appErr := errors.Internal("internal server error", "")
				c.AbortWithStatusJSON(appErr.Status, appErr)
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format.
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Internal("internal server error", err.Error())
	}

	c.JSON(appErr.Status, appErr)
}
