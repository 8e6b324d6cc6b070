package auth

import (
	"context"
	"errors"
	"time"

	"movieapi/internal/platform/crypto"
	"movieapi/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

const accessTokenTTL = 15 * time.Minute

type Service struct {
	secret      string
	userService *user.Service
}

func NewService(secret string, userService *user.Service) *Service {
	return &Service{
		secret:      secret,
		userService: userService,
	}
}

func (s *Service) Register(ctx context.Context, email, name, password string) (user.User, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return user.User{}, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}

	return s.userService.Register(ctx, email, name, hashed)
}

func (s *Service) Login(ctx context.Context, email, password string) (string, int, error) {
	u, err := s.userService.GetByEmail(ctx, email)
	if err != nil || !VerifyPassword(u.Password, password) {
		// Same failure mode for unknown email and wrong password.
		return "", 0, ErrUnauthorized
	}

	accessToken, _, err := crypto.GenerateToken(s.secret, u.ID, u.Role, accessTokenTTL)
	if err != nil {
		return "", 0, err
	}

	return accessToken, int(accessTokenTTL.Seconds()), nil
}
