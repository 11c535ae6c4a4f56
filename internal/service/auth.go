package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"eventdesk/internal/credstore"
	"eventdesk/internal/domain"
	"eventdesk/internal/service/ports"
)

// AuthService owns the login, signup and logout flows. It is the only
// writer of the credential store.
type AuthService struct {
	api   ports.AuthAPI
	store credstore.Store
	log   logger.Logger
}

func NewAuthService(api ports.AuthAPI, store credstore.Store, log logger.Logger) *AuthService {
	return &AuthService{api: api, store: store, log: log}
}

// Login exchanges credentials upstream and persists the resulting
// token, user id and role. A failed save leaves the viewer logged out
// rather than half logged in.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (domain.Credentials, error) {
	parsed := domain.ParseRole(role)
	if !parsed.Known() {
		return domain.Credentials{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if username == "" || password == "" {
		return domain.Credentials{}, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	creds, err := s.api.Login(ctx, username, password, parsed)
	if err != nil {
		return domain.Credentials{}, err
	}

	if err = s.store.Save(ctx, creds); err != nil {
		return domain.Credentials{}, fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info("logged in",
		logger.String("user_id", creds.UserID),
		logger.String("role", string(creds.Role)),
	)

	return creds, nil
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) error {
	if !input.Role.Known() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}
	if input.Email == "" || input.Password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	switch input.Role {
	case domain.RoleUser:
		if input.Username == "" {
			return fmt.Errorf("%w: username is required", domain.ErrValidation)
		}
	case domain.RoleFacilitator:
		if input.Name == "" || input.Phone == "" {
			return fmt.Errorf("%w: name and phone are required", domain.ErrValidation)
		}
	}

	return s.api.Register(ctx, input)
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.log.Info("logged out")
	return nil
}
