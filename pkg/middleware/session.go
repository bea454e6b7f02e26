package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionUserMiddleware copies the authenticated user id supplied by the
// upstream session layer into the gin context. Identity is established
// upstream; this service trusts the header as-is.
func SessionUserMiddleware() HandlerFunc {
	return func(c Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// RequireSessionUser rejects requests that carry no authenticated user id.
func RequireSessionUser() HandlerFunc {
	return func(c Context) {
		if c.GetString("user_id") == "" {
			c.JSON(http.StatusForbidden, H{"error": "You must be logged in"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user id for the request.
func SessionUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
