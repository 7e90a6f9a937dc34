// Package store holds the in-memory state of the dashboard: the user
// directory and the current session. Nothing here survives a restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// UserUpdate is a partial set of field assignments for Update. Nil fields
// are left untouched. ID and CreatedAt are immutable and not represented.
type UserUpdate struct {
	Name       *string
	Email      *string
	Role       *string
	Phone      *string
	Telegram   *string
	Department *string
	Position   *string
	Salary     *float64
	Avatar     *string
}

// Store owns the user directory (insertion-ordered) and the single session.
// One mutex guards both so the session can never diverge from the directory
// entry it mirrors.
type Store struct {
	mu      sync.RWMutex
	users   []domain.User
	session *domain.User
}

// New creates a Store seeded with the given users. Seed entries missing an
// ID or CreatedAt get them assigned.
func New(seed []domain.User) *Store {
	s := &Store{users: make([]domain.User, 0, len(seed))}
	now := time.Now().UTC()
	for _, u := range seed {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		s.users = append(s.users, u)
	}
	return s
}

// Login looks up the first directory entry with a matching email and makes
// it the session. The password is accepted but never verified: this is a
// demo directory with no stored credentials, not an authentication scheme.
func (s *Store) Login(email, _ string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			s.session = &u
			return u, nil
		}
	}
	return domain.User{}, domain.ErrInvalidCredentials
}

// Logout clears the session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

// Register appends a new user and makes it the session. The email must not
// already be present in the directory.
func (s *Store) Register(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(u.Email) {
		return domain.User{}, domain.ErrDuplicateEmail
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, u)

	session := u
	s.session = &session
	return u, nil
}

// Add appends a new user without touching the session. Email uniqueness is
// enforced here too, same as Register.
func (s *Store) Add(u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(u.Email) {
		return domain.User{}, domain.ErrDuplicateEmail
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, u)
	return u, nil
}

// Update merges the non-nil fields of upd into the entry with the given id.
// An unknown id is a silent miss: ok is false and nothing changes. When the
// updated entry is the session's user, the session is refreshed in the same
// critical section so the two never diverge.
func (s *Store) Update(id string, upd UserUpdate) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		merge(&s.users[i], upd)
		if s.session != nil && s.session.ID == id {
			refreshed := s.users[i]
			s.session = &refreshed
		}
		return s.users[i], true
	}
	return domain.User{}, false
}

// Delete removes the entry with the given id. Deleting the session's user
// clears the session (forced logout on self-deletion). Unknown ids are a
// no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		s.users = append(s.users[:i], s.users[i+1:]...)
		if s.session != nil && s.session.ID == id {
			s.session = nil
		}
		return true
	}
	return false
}

// Users returns a copy of the directory in insertion order.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return domain.User{}, false
}

// Session returns the current session user, if any.
func (s *Store) Session() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.User{}, false
	}
	return *s.session, true
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Session()
	return ok
}

// Len returns the number of directory entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// emailTaken must be called with the lock held.
func (s *Store) emailTaken(email string) bool {
	for i := range s.users {
		if s.users[i].Email == email {
			return true
		}
	}
	return false
}

func merge(u *domain.User, upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Telegram != nil {
		u.Telegram = *upd.Telegram
	}
	if upd.Department != nil {
		u.Department = *upd.Department
	}
	if upd.Position != nil {
		u.Position = *upd.Position
	}
	if upd.Salary != nil {
		u.Salary = *upd.Salary
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
}
