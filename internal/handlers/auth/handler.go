package auth

import (
	"net/http"
	"tasknest/infras/otel"
	"tasknest/internal/domains/auth/model/dto"
	"tasknest/internal/domains/auth/service"
	"tasknest/shared/constant"
	"tasknest/shared/validator"
	"tasknest/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgSignupSuccessful = "Signup successful"
	msgWelcome          = "Welcome "
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create an account and receive an access token. The token is also returned in the Usertoken header.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 200 {object} response.Body{data=dto.TokenResponse} "Signup successful"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /signup [post]
func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	req := dto.SignupRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User signed up successfully")

	w.Header().Set(constant.ResponseHeaderUserToken, res.Token)
	response.WithData(w, http.StatusOK, msgSignupSuccessful, res)
}

// Login handles user login
// @Summary Login a user
// @Description Exchange email and password for an access token. The token is also returned in the Usertoken header.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Body{data=dto.LoginResponse} "Welcome <name>"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	w.Header().Set(constant.ResponseHeaderUserToken, res.Token)
	response.WithData(w, http.StatusOK, msgWelcome+res.Name, res)
}
