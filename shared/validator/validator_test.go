package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/shared/failure"
	"tasknest/shared/validator"
)

type todoBody struct {
	ProjectID   string  `json:"projectId"   validate:"required"`
	Description string  `json:"description" validate:"required,notblank,max=10"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending done"`
}

type signupBody struct {
	Email string `json:"email,omitempty" validate:"required,email"`
	Name  string `validate:"required"`
}

func ptr(s string) *string { return &s }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    todoBody
		wantMsg string
	}{
		{
			name: "valid",
			data: todoBody{ProjectID: "p1", Description: "Buy milk", Status: ptr("done")},
		},
		{
			name:    "missing project",
			data:    todoBody{Description: "Buy milk"},
			wantMsg: "projectId is required",
		},
		{
			name:    "blank description",
			data:    todoBody{ProjectID: "p1", Description: "   "},
			wantMsg: "description must not be blank",
		},
		{
			name:    "description too long",
			data:    todoBody{ProjectID: "p1", Description: "a very long description"},
			wantMsg: "description must be at most 10 characters",
		},
		{
			name:    "unknown status",
			data:    todoBody{ProjectID: "p1", Description: "Buy milk", Status: ptr("archived")},
			wantMsg: "status must be one of: pending, done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.Is(err, http.StatusBadRequest))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidateStruct_FieldNames(t *testing.T) {
	err := validator.ValidateStruct(&signupBody{Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())

	err = validator.ValidateStruct(&signupBody{Email: "nope", Name: "Ada"})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("Home", "notblank"))
	assert.NoError(t, validator.ValidateVar("ada@example.com", "email"))

	err := validator.ValidateVar("  ", "notblank")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be blank")

	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("archived", "oneof=pending done"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"projectId":"p1","description":"Buy milk"}`},
		{name: "fails rules", body: `{"projectId":"p1"}`, wantErr: true},
		{name: "malformed", body: `{"projectId":}`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data todoBody

			err := validator.Validate(strings.NewReader(tt.body), &data)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.Is(err, http.StatusBadRequest))
		})
	}
}

type sanitizedBody struct {
	Title string `json:"title" validate:"required,notblank"`
}

func (b *sanitizedBody) Sanitize() {
	b.Title = strings.TrimSpace(strings.ReplaceAll(b.Title, "<b>", ""))
}

func TestValidateSanitizesBeforeValidation(t *testing.T) {
	var data sanitizedBody

	err := validator.Validate(strings.NewReader(`{"title":"<b>  "}`), &data)
	require.Error(t, err)
	assert.Equal(t, "title must not be blank", err.Error())

	data = sanitizedBody{}

	require.NoError(t, validator.Validate(strings.NewReader(`{"title":"<b>Home"}`), &data))
	assert.Equal(t, "Home", data.Title)
}
