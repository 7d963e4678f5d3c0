package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/usuarios-api/internal/domain/service"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
	"github.com/davidmtz/usuarios-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// BearerAuth extracts and verifies the Authorization bearer token and injects
// the verified claims into the Gin context. This gate is the only place
// identity is established; handlers never trust caller-asserted ids.
func BearerAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.AbortFail(c, http.StatusUnauthorized, apperrors.ErrMissingToken.Error())
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
