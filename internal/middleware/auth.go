package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/auth"
)

// UserIDKey is the gin context key under which Authenticated stores the
// resolved caller id.
const UserIDKey = "userID"

// Authenticated resolves the identity token from the authorization header and
// attaches the caller's user id to the request context. Signup and signin are
// registered outside this middleware; every other route passes through it.
// Missing, malformed, expired and badly signed tokens all answer 403, which
// the legacy surface used for unauthenticated callers.
func Authenticated(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "authorization token missing",
			})
			return
		}
		// both a bare token and the "Bearer <token>" form are accepted
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		userID, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}
