package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"tasknest/config"
	"tasknest/infras/otel/mocks"
	"tasknest/transport/http/middleware"
)

func newAppConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tasknest"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowCredentials = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}
	cfg.App.CORS.AllowedHeaders = []string{"Authorization", "Content-Type"}
	cfg.App.CORS.MaxAgeSeconds = 300

	return cfg
}

func TestAppMiddleware_CORS(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), newAppConfig())

	router := chi.NewRouter()
	router.Use(app.CORS())
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAppMiddleware_CORSDisabled(t *testing.T) {
	cfg := newAppConfig()
	cfg.App.CORS.Enable = false

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg)

	handler := app.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAppMiddleware_TracingAndLoggingPassThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), newAppConfig())

	handler := app.Tracing(app.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/project/addproject", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
