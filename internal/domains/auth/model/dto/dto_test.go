package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tasknest/internal/domains/auth/model/dto"
	"tasknest/shared/constant"
	"tasknest/shared/validator"
)

func TestSignupRequest_Sanitize(t *testing.T) {
	req := dto.SignupRequest{
		Name:     "<b>Jane</b> ",
		Email:    " Jane@Example.com",
		Password: " <keep> ",
	}

	req.Sanitize()

	assert.Equal(t, "Jane", req.Name)
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, " <keep> ", req.Password)
}

func TestSignupRequest_ToUserModel(t *testing.T) {
	req := dto.SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret",
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Jane", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
	assert.Equal(t, user.CreatedAt, user.ModifiedAt)
}

func TestSignupRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SignupRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  dto.SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "secret"},
		},
		{
			name:    "missing name",
			req:     dto.SignupRequest{Email: "jane@example.com", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     dto.SignupRequest{Name: "Jane", Email: "jane@example.com"},
			wantErr: true,
		},
		{
			name: "whitespace password is a password",
			req:  dto.SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "   "},
		},
		{
			name:    "invalid email",
			req:     dto.SignupRequest{Name: "Jane", Email: "jane", Password: "secret"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	assert.Error(t, validator.ValidateStruct(&dto.LoginRequest{Email: "jane@example.com"}))
	assert.Error(t, validator.ValidateStruct(&dto.LoginRequest{Password: "secret"}))
	assert.NoError(t, validator.ValidateStruct(&dto.LoginRequest{Email: "jane@example.com", Password: "secret"}))
}
