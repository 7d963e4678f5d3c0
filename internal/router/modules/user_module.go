package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmtz/usuarios-api/internal/domain/service"
	handlers "github.com/davidmtz/usuarios-api/internal/interface/http"
	"github.com/davidmtz/usuarios-api/internal/interface/middleware"
)

// UserModule wires the protected profile routes behind the bearer gate.
// GET/PUT/DELETE /api/users/profile
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  service.TokenService
}

func NewUserModule(h *handlers.UserHandler, tokens service.TokenService) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.BearerAuth(m.Tokens))
	{
		users.GET("/profile", m.Handler.GetProfile)
		users.PUT("/profile", m.Handler.UpdateProfile)
		users.DELETE("/profile", m.Handler.DeleteUser)
	}
}
