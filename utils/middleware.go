package utils

import (
	"net/http"

	"smartpark-backend/sessions"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the protected route groups. It resolves the session
// cookie against the injected store and exposes the user's public fields on
// the request context.
func AuthMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessions.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		c.Set("userId", sess.UserID)
		c.Set("username", sess.Username)
		c.Set("fullName", sess.FullName)

		c.Next()
	}
}
