//go:build wireinject
// +build wireinject

package di

import (
	"tasknest/config"
	"tasknest/infras/gist"
	"tasknest/infras/jwt"
	"tasknest/infras/otel"
	"tasknest/infras/postgres"
	"tasknest/infras/redis"
	"tasknest/infras/s3"
	"tasknest/permissions"
	"tasknest/shared/cache"
	"tasknest/shared/repository"
	"tasknest/transport/http"
	"tasknest/transport/http/middleware"
	"tasknest/transport/http/router"

	authService "tasknest/internal/domains/auth/service"
	exportService "tasknest/internal/domains/export/service"
	projectRepository "tasknest/internal/domains/project/repository"
	projectService "tasknest/internal/domains/project/service"
	todoRepository "tasknest/internal/domains/todo/repository"
	todoService "tasknest/internal/domains/todo/service"
	userRepository "tasknest/internal/domains/user/repository"
	authHandler "tasknest/internal/handlers/auth"
	projectHandler "tasknest/internal/handlers/project"
	todoHandler "tasknest/internal/handlers/todo"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	gist.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	repository.NewTransactor,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
)

var domains = wire.NewSet(
	authDomain,
	projectDomain,
	todoDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	projectHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
