package middleware

import (
	"errors"
	"net/http"
	"tasknest/infras/jwt"
	"tasknest/infras/otel"
	"tasknest/permissions"
	"tasknest/shared/constant"
	"tasknest/shared/failure"
	"tasknest/shared/identity"
	"tasknest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// Auth verifies the bearer token and stores the caller identity in the request context.
// Routes marked public and requests that match no route pass through untouched.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(request)
		if path == "" || m.permission.IsPublic(path, request.Method) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			fail := failure.InvalidTokenError
			if errors.Is(err, jwt.ErrMissingToken) {
				fail = failure.MissingTokenError
			}

			scope.TraceError(fail)
			response.WithError(writer, fail)

			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("rejected token")
			scope.TraceError(err)

			response.WithError(writer, failure.InvalidTokenError)

			return
		}

		ctx = identity.WithIdentity(ctx, identity.Identity{UserID: claims.UserID, TokenID: claims.TokenID})

		writer.Header().Set(constant.ResponseHeaderUserToken, tokenString)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return ""
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}
