package dto

import (
	"strings"
	userModel "tasknest/internal/domains/user/model"
	gModel "tasknest/shared/model"
	"tasknest/shared/sanitizer"
	"tasknest/shared/timezone"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=100"`
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Sanitize cleans the profile fields. The password is hashed as given.
func (r *SignupRequest) Sanitize() {
	sanitizer.Strings(&r.Name, &r.Email)
	r.Email = strings.ToLower(r.Email)
}

func (r *SignupRequest) ToUserModel(actor, hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Sanitize() {
	sanitizer.Strings(&r.Email)
	r.Email = strings.ToLower(r.Email)
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type LoginResponse struct {
	TokenResponse
	Name string `json:"name"`
}
