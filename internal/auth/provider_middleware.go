package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/pkg/jwt"
)

// ErrProviderMismatch is reported when a token's subject does not cover the requested provider.
var ErrProviderMismatch = errors.New("token is not valid for this provider")

// ProviderScopeMiddleware rejects tokens issued for a different provider than
// the :provider path parameter. It must be used AFTER AuthMiddleware.
func ProviderScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(SubjectKey)
		if subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if subject != jwt.AnyProvider && subject != c.Param("provider") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrProviderMismatch.Error()})
			return
		}

		c.Next()
	}
}
