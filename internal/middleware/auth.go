package middleware

import (
	"net/http"
	"strings"

	"retrovault/internal/apierror"
	"retrovault/internal/model"
	"retrovault/internal/repository"
	"retrovault/internal/token"

	"github.com/gin-gonic/gin"
)

const (
	// UserKey is the gin context key the authenticated user is attached to.
	UserKey = "usuario"
)

// AuthRequired validates the Bearer token on every protected route, re-checks
// that the referenced user still exists, and attaches the loaded user to the
// context.
func AuthRequired(tokens *token.Service, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NoAutorizado("Token no proporcionado. Acceso denegado.").Response())
			return
		}

		claims, err := tokens.Verificar(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			// err is ErrExpirado or ErrInvalido; the message tells the
			// client which, the status is 401 either way.
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NoAutorizado(err.Error()).Response())
			return
		}

		// Token is stateless except for this check: a deleted user's
		// outstanding tokens must stop working.
		u, err := usuarios.PorID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NoAutorizado("Usuario no encontrado. Token inválido.").Response())
			return
		}

		c.Set(UserKey, u)
		c.Next()
	}
}

// RequireRol rejects requests whose authenticated user's role is not in the
// allowed list. Must run after AuthRequired.
func RequireRol(roles ...model.Rol) gin.HandlerFunc {
	allowed := make(map[model.Rol]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NoAutorizado("Usuario no autenticado").Response())
			return
		}
		if !allowed[u.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.Prohibido("No tienes permisos para acceder a este recurso").Response())
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the typed user attached by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *model.Usuario {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.Usuario)
	return u
}
