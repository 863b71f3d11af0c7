package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware converts panics into the uniform failure envelope so a
// crashing handler still answers with the shape clients expect.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := GetLoggerFromCtx(c.Request.Context())
				logger.ErrorContext(c.Request.Context(), "Panic recovered", "panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": fmt.Sprintf("Internal server error: %v", r),
					"data":    nil,
				})
			}
		}()
		c.Next()
	}
}
