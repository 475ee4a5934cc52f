package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tasknest/shared/failure"
	"tasknest/transport/http/response"
)

func TestWithData(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithData(rec, http.StatusCreated, "Project added", map[string]string{"id": "p-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Project added","data":{"id":"p-1"}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "Project deleted successfully")

	assert.JSONEq(t, `{"message":"Project deleted successfully"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure",
			err:      failure.NotFound("Todo not found."),
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Todo not found."}`,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("ctx: %w", failure.Conflict("taken")),
			wantCode: http.StatusConflict,
			wantBody: `{"message":"taken"}`,
		},
		{
			name:     "internal error is not leaked",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Server error."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithPreparingShutdown(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
