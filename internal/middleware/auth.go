package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myaccountdemo/account_api/internal/platform/config"
	"github.com/myaccountdemo/account_api/internal/utils"
)

// AuthMiddleware validates the Authorization bearer token and stores the
// caller's identity claims in the request context. Any missing or invalid
// token short-circuits with a uniform 401 envelope.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			logger.WarnContext(c.Request.Context(), "Missing or malformed Authorization header")
			abortUnauthorized(c)
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
		if err != nil {
			logger.WarnContext(c.Request.Context(), "Token validation failed", "error", err)
			abortUnauthorized(c)
			return
		}

		userID, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil {
			logger.WarnContext(c.Request.Context(), "Token carries non-numeric user_id claim")
			abortUnauthorized(c)
			return
		}

		ctx := context.WithValue(c.Request.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Token is invalid or expired",
	})
}

// GetUserIDFromCtx returns the authenticated user id, or false when the
// request carried no valid token.
func GetUserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

// GetUsernameFromCtx returns the authenticated username, or false when the
// request carried no valid token.
func GetUsernameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(UsernameKey).(string)
	return name, ok
}
