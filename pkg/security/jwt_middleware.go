package security

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UsernameKey holds the authenticated admin in the gin context.
const UsernameKey = "username"

// JWTMiddleware validates the bearer token and stores its subject under UsernameKey.
func JWTMiddleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		username, err := issuer.Username(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// CurrentUsername returns the admin set by JWTMiddleware.
func CurrentUsername(c *gin.Context) (string, bool) {
	username := c.GetString(UsernameKey)
	return username, username != ""
}
