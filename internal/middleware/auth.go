package middleware

import (
	"net/http"
	"strings"

	"github.com/adrianLames/Sistema-Pedidos/internal/apierror"
	"github.com/adrianLames/Sistema-Pedidos/internal/dto"
	"github.com/adrianLames/Sistema-Pedidos/internal/service"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// TokenAuth validates the Bearer token on every protected route. Validation
// goes through the auth service, which re-reads the user row, so revoking an
// account takes effect on the next request even for live tokens.
func TokenAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token no proporcionado"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		user, err := auth.Validate(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido"))
			return
		}

		c.Set(ClaimsKey, user)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user, ok := c.MustGet(ClaimsKey).(*dto.UsuarioPublico)
		if !ok || !allowed[user.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No autorizado"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the authenticated user from the Gin context.
func GetClaims(c *gin.Context) *dto.UsuarioPublico {
	user, _ := c.MustGet(ClaimsKey).(*dto.UsuarioPublico)
	return user
}
