package middleware

import (
	"net/http"
	"strings"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
	"fieldserve/pkg"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which the authenticated session
// claims are stored.
const ClaimsKey = "claims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

// RequireAuth validates the bearer token and injects the session claims into
// the request context.
func RequireAuth(auth interfaces.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom extracts the authenticated session claims set by RequireAuth.
func ClaimsFrom(c *gin.Context) (*entities.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*entities.Claims)
	return claims, ok
}
