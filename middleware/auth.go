// middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/service"
	"github.com/Vtdarling/kitchenAI/util"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is where verified claims are stored on the gin context.
const ClaimsContextKey = "authClaims"

// AuthenticateJWT is a middleware function that verifies bearer tokens.
// A missing token is rejected with 401, a bad or expired one with 403.
func AuthenticateJWT(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		// The token is prefixed with 'Bearer ', so we need to trim that
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := authService.Verify(tokenString)
		if err != nil {
			if errors.Is(err, entity.ErrMissingToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing"})
			} else {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// GetClaims retrieves the verified claims set by AuthenticateJWT, or nil.
func GetClaims(c *gin.Context) *util.Claims {
	v, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*util.Claims)
	return claims
}
