package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/auth"
	"castpro_backend/internal/logger"
)

// AdminSessionMiddleware guards the admin API group. It validates the
// signed session cookie issued at login and rejects requests without a
// valid token.
func AdminSessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.SessionCookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		claims, err := auth.ParseSessionToken(tokenStr, secret)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Rejected invalid admin session",
				"path", c.Request.URL.Path, "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}

		ctx := logger.WithAdmin(c.Request.Context(), claims.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Set("adminUsername", claims.Username)
		c.Next()
	}
}
