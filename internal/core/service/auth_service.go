package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

// AuthService implements login, logout and self-service registration on top
// of the directory store.
type AuthService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewAuthService(st *store.Store, log zerolog.Logger) *AuthService {
	return &AuthService{store: st, log: log}
}

// Login resolves the email against the directory and opens the session.
// The password is accepted but never checked; this mirrors the demo
// directory the dashboard ships with and is not an authentication scheme.
func (s *AuthService) Login(_ context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.Login(email, password)
	if err != nil {
		s.log.Warn().Str("email", email).Msg("login failed")
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session opened")
	return &user, nil
}

// Register creates a new directory entry and opens a session for it.
// An unspecified role defaults to photographer.
func (s *AuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RolePhotographer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.store.Register(domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		Phone:    input.Phone,
		Telegram: input.Telegram,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return &user, nil
}

// Logout closes the session. Idempotent, never fails.
func (s *AuthService) Logout(_ context.Context) {
	s.store.Logout()
	s.log.Info().Msg("session closed")
}

// Current returns the session user, if a session is active.
func (s *AuthService) Current(_ context.Context) (*domain.User, bool) {
	user, ok := s.store.Session()
	if !ok {
		return nil, false
	}
	return &user, true
}
