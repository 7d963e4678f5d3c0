package router

import (
	"github.com/davidmtz/usuarios-api/internal/application"
	"github.com/davidmtz/usuarios-api/internal/container"
	"github.com/davidmtz/usuarios-api/internal/infrastructure/cache"
	pginfra "github.com/davidmtz/usuarios-api/internal/infrastructure/postgres"
	handlers "github.com/davidmtz/usuarios-api/internal/interface/http"
	"github.com/davidmtz/usuarios-api/internal/router/modules"
)

// InitModules builds the flow objects from the container singletons and
// registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	logger := container.GetLogger()
	cfg := container.GetConfig()

	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	authSvc := application.NewAuthService(repo, container.GetHasher(), container.GetTokens(), pub, logger)

	var profileCache application.ProfileCache
	if rdb := container.GetRedis(); rdb != nil {
		profileCache = cache.NewRedisProfileCache(rdb, cfg.ProfileTTL, logger)
	}
	userSvc := application.NewUserService(repo, profileCache, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), container.GetTokens()))
}
