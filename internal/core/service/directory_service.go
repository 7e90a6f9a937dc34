package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

// DirectoryService implements employee administration over the store.
type DirectoryService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewDirectoryService(st *store.Store, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: st, log: log}
}

// List returns directory entries matching the filters, in insertion order.
func (s *DirectoryService) List(_ context.Context, input ports.ListEmployeesInput) ([]domain.User, error) {
	users := s.store.Users()
	if input.Search == "" && input.Role == "" {
		return users, nil
	}

	needle := strings.ToLower(input.Search)
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if input.Role != "" && u.Role != input.Role {
			continue
		}
		if needle != "" && !matchesEmployee(u, needle) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// Get returns a single directory entry.
func (s *DirectoryService) Get(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// Add creates a new directory entry without touching the session.
func (s *DirectoryService) Add(_ context.Context, input ports.CreateEmployeeInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.store.Add(domain.User{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Phone:      input.Phone,
		Telegram:   input.Telegram,
		Department: input.Department,
		Position:   input.Position,
		Salary:     input.Salary,
		Avatar:     input.Avatar,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("employee added")
	return &user, nil
}

// Update merges a partial payload into the matching entry. The store keeps
// the session in sync when the entry is the logged-in user's record.
func (s *DirectoryService) Update(_ context.Context, id string, input ports.UpdateEmployeeInput) (*domain.User, error) {
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidRole
	}

	user, ok := s.store.Update(id, store.UserUpdate{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Phone:      input.Phone,
		Telegram:   input.Telegram,
		Department: input.Department,
		Position:   input.Position,
		Salary:     input.Salary,
		Avatar:     input.Avatar,
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	s.log.Info().Str("user_id", id).Msg("employee updated")
	return &user, nil
}

// Delete removes the matching entry. Unknown ids are a no-op, never an
// error; deleting the logged-in user's record also closes the session.
func (s *DirectoryService) Delete(_ context.Context, id string) error {
	if s.store.Delete(id) {
		s.log.Info().Str("user_id", id).Msg("employee deleted")
	}
	return nil
}

func matchesEmployee(u domain.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle) ||
		strings.Contains(strings.ToLower(u.Department), needle)
}
