package middleware

import (
	"net/http"

	"eventdeck/eventdeck/models"
	"eventdeck/eventdeck/services"
	"eventdeck/eventdeck/utils/token"

	"github.com/gin-gonic/gin"
)

// principalKey is where the authenticated identity lives in the gin context.
const principalKey = "principal"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the decoded principal in the context for the handlers.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		principal, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the identity stored by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
