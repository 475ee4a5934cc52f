package router

import (
	_ "tasknest/docs"
	"tasknest/internal/handlers/auth"
	"tasknest/internal/handlers/project"
	"tasknest/internal/handlers/todo"
	"tasknest/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocURL = "/swagger/doc.json"

type DomainHandlers struct {
	Auth    auth.Handler
	Project project.Handler
	Todo    todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	app            middleware.AppMiddleware
	auth           middleware.Auth
}

// SetupRoutes installs the middleware chain and every route on router. The auth gate runs
// last so it sees the request id and tracing context.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		r.app.Tracing,
		r.app.RequestLogger,
		chiMiddleware.Recoverer,
		r.app.CORS(),
		r.auth.Auth,
	)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Project.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		app:            app,
		auth:           auth,
	}
}
