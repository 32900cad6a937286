package middleware

import (
	"net/http"
	"strings"

	"laserwood/internal/infrastructure/auth"
	"laserwood/pkg"

	"github.com/gin-gonic/gin"
)

// TokenParser is satisfied by auth.TokenManager.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid admin token", http.StatusUnauthorized)

const (
	ctxSubject = "subject"
	ctxRole    = "role"
)

// RequireAdmin accepts only a valid Bearer token carrying the admin role.
func RequireAdmin(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(token))
		if err != nil || claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ctxSubject, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}
