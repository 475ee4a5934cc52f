package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tasknest/infras/otel/mocks"
	"tasknest/internal/domains/auth/model/dto"
	authMocks "tasknest/internal/domains/auth/service/mocks"
	"tasknest/internal/handlers/auth"
	"tasknest/shared/failure"
)

type body struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newRouter(t *testing.T) (http.Handler, *authMocks.MockAuth) {
	t.Helper()

	svc := authMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func do(router http.Handler, path, payload string) (*httptest.ResponseRecorder, body) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var b body
	_ = json.Unmarshal(rec.Body.Bytes(), &b)

	return rec, b
}

func TestSignup(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Signup(gomock.Any(), dto.SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "hunter22"}).
		Return(dto.TokenResponse{Token: "tok", ExpiresIn: 3600}, nil)

	rec, b := do(router, "/signup", `{"name":"Jane","email":"JANE@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Signup successful", b.Message)
	assert.Equal(t, "tok", b.Data["token"])
	assert.Equal(t, "tok", rec.Header().Get("Usertoken"))
}

func TestSignup_Invalid(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing name", payload: `{"email":"jane@example.com","password":"hunter22"}`},
		{name: "empty password", payload: `{"name":"Jane","email":"jane@example.com","password":""}`},
		{name: "bad email", payload: `{"name":"Jane","email":"jane","password":"hunter22"}`},
		{name: "not json", payload: `name=Jane`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, b := do(router, "/signup", tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, b.Message)
			assert.Empty(t, rec.Header().Get("Usertoken"))
		})
	}
}

func TestSignup_Conflict(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(dto.TokenResponse{}, failure.Conflict("User already registered with this email"))

	rec, b := do(router, "/signup", `{"name":"Jane","email":"jane@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already registered with this email", b.Message)
}

func TestLogin(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Login(gomock.Any(), dto.LoginRequest{Email: "jane@example.com", Password: "hunter22"}).
		Return(dto.LoginResponse{TokenResponse: dto.TokenResponse{Token: "tok", ExpiresIn: 3600}, Name: "Jane"}, nil)

	rec, b := do(router, "/login", `{"email":"jane@example.com","password":"hunter22"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome Jane", b.Message)
	assert.Equal(t, "tok", b.Data["token"])
	assert.Equal(t, "Jane", b.Data["name"])
	assert.Equal(t, "tok", rec.Header().Get("Usertoken"))
}

func TestLogin_WrongPassword(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.Unauthorized("Password is incorrect"))

	rec, b := do(router, "/login", `{"email":"jane@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Password is incorrect", b.Message)
	assert.Nil(t, b.Data)
	assert.Empty(t, rec.Header().Get("Usertoken"))
}
