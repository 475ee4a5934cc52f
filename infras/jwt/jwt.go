package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"tasknest/config"
	"tasknest/shared/constant"
	"tasknest/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingToken  = errors.New("authorization header is required")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

const bearerScheme = "Bearer"

// Claims represents the JWT claims structure
type Claims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access tokens.
type JWT interface {
	Issue(userID string) (token string, expiresIn int64, err error)
	Verify(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
}

// New creates a new JWT service
func New(cfg *config.Config) (JWT, error) {
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}

	return &Service{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.App.Name,
		expiresIn: time.Duration(cfg.JWT.ExpireMin) * time.Minute,
	}, nil
}

// Issue signs a token for userID. expiresIn is the lifetime in seconds.
func (s *Service) Issue(userID string) (string, int64, error) {
	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(s.expiresIn)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   userID,
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return constant.Empty, 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, int64(s.expiresIn.Seconds()), nil
}

// Verify validates and parses a JWT token
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == constant.Empty {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader accepts both "Bearer <token>" and a bare token.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	fields := strings.Fields(authHeader)

	switch len(fields) {
	case 0:
		return constant.Empty, ErrMissingToken
	case 1:
		if strings.EqualFold(fields[0], bearerScheme) {
			return constant.Empty, ErrMissingToken
		}

		return fields[0], nil
	case 2:
		if !strings.EqualFold(fields[0], bearerScheme) {
			return constant.Empty, ErrInvalidToken
		}

		return fields[1], nil
	default:
		return constant.Empty, ErrInvalidToken
	}
}
