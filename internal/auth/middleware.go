package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

// UserIDFromContext returns the current user ID set by RequireUser. 0 if not set.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// RequireUser returns a middleware that validates the bearer token and sets
// the current user ID in context. Missing, malformed, expired or badly
// signed tokens get 401.
func RequireUser(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
