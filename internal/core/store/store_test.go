package store

import (
	"testing"
	"time"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

func seedStore() *Store {
	return New([]domain.User{
		{ID: "1", Name: "Администратор", Email: "admin", Role: domain.RoleAdmin},
		{ID: "2", Name: "Анна Иванова", Email: "anna@photoalbums.com", Role: domain.RolePhotographer},
	})
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := seedStore()

	if _, err := s.Login("ghost@photoalbums.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("failed login must leave the session empty")
	}
}

func TestLogin_IgnoresPassword(t *testing.T) {
	s := seedStore()

	u, err := s.Login("anna@photoalbums.com", "definitely-wrong")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.ID != "2" {
		t.Fatalf("unexpected user: %+v", u)
	}

	session, ok := s.Session()
	if !ok || session.ID != "2" {
		t.Fatalf("session not set to the matching record: %+v", session)
	}
}

func TestLogin_DoesNotClobberSessionOnFailure(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	_, _ = s.Login("ghost@photoalbums.com", "x")

	session, ok := s.Session()
	if !ok || session.ID != "1" {
		t.Fatalf("failed login must leave the previous session intact, got %+v ok=%v", session, ok)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	s.Logout()
	if s.IsAuthenticated() {
		t.Fatalf("session should be empty after logout")
	}

	// second logout with no session is a no-op
	s.Logout()
	if s.IsAuthenticated() {
		t.Fatalf("session should stay empty")
	}
}

func TestRegister_SetsSessionAndAppends(t *testing.T) {
	s := seedStore()

	before := time.Now().UTC()
	u, err := s.Register(domain.User{Name: "Ольга", Email: "olga@photoalbums.com", Role: domain.RoleDesigner})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if u.CreatedAt.Before(before) {
		t.Fatalf("CreatedAt %v is earlier than call time %v", u.CreatedAt, before)
	}

	session, ok := s.Session()
	if !ok || session.ID != u.ID {
		t.Fatalf("register must open a session for the new user")
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 directory entries, got %d", s.Len())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := New([]domain.User{{ID: "1", Email: "a@x.com"}})

	if _, err := s.Register(domain.User{Name: "B", Email: "a@x.com", Role: domain.RolePhotographer}); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("directory must be unchanged, got %d entries", s.Len())
	}
	if s.IsAuthenticated() {
		t.Fatalf("failed register must not open a session")
	}
}

func TestAdd_GeneratesUniqueID(t *testing.T) {
	s := seedStore()

	u, err := s.Add(domain.User{Name: "Ольга", Email: "olga@photoalbums.com", Role: domain.RoleDesigner})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	count := 0
	for _, entry := range s.Users() {
		if entry.ID == u.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("new id present %d times, want exactly once", count)
	}
	if s.IsAuthenticated() {
		t.Fatalf("add must not touch the session")
	}
}

func TestAdd_DuplicateEmail(t *testing.T) {
	s := seedStore()

	if _, err := s.Add(domain.User{Name: "X", Email: "anna@photoalbums.com", Role: domain.RolePhotographer}); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdate_SessionNeverDiverges(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	salary := 90000.0
	updated, ok := s.Update("1", UserUpdate{Salary: &salary})
	if !ok {
		t.Fatalf("expected update to hit")
	}
	if updated.Salary != 90000 {
		t.Fatalf("directory entry salary = %v, want 90000", updated.Salary)
	}

	session, _ := s.Session()
	if session.Salary != 90000 {
		t.Fatalf("session salary = %v, want 90000 (session diverged from directory)", session.Salary)
	}
}

func TestUpdate_NonSessionUser_LeavesSessionAlone(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	name := "Анна Смирнова"
	if _, ok := s.Update("2", UserUpdate{Name: &name}); !ok {
		t.Fatalf("expected update to hit")
	}

	session, _ := s.Session()
	if session.ID != "1" || session.Name != "Администратор" {
		t.Fatalf("session must be untouched, got %+v", session)
	}
}

func TestUpdate_ImmutableFields(t *testing.T) {
	s := seedStore()
	before, _ := s.Get("2")

	phone := "+7 (900) 000-00-00"
	updated, _ := s.Update("2", UserUpdate{Phone: &phone})

	if updated.ID != before.ID {
		t.Fatalf("id changed: %s -> %s", before.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("CreatedAt changed: %v -> %v", before.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdate_UnknownID_SilentMiss(t *testing.T) {
	s := seedStore()

	name := "Nobody"
	if _, ok := s.Update("missing", UserUpdate{Name: &name}); ok {
		t.Fatalf("unknown id must be a miss")
	}
	if s.Len() != 2 {
		t.Fatalf("directory must be unchanged")
	}
}

func TestDelete_SelfClearsSession(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	if !s.Delete("1") {
		t.Fatalf("expected delete to hit")
	}
	if s.IsAuthenticated() {
		t.Fatalf("deleting the session's user must clear the session")
	}
	if _, ok := s.Get("1"); ok {
		t.Fatalf("entry still present after delete")
	}
}

func TestDelete_UnknownID_NoOp(t *testing.T) {
	s := seedStore()
	_, _ = s.Login("admin", "admin")

	if s.Delete("missing") {
		t.Fatalf("unknown id must be a no-op")
	}
	if s.Len() != 2 {
		t.Fatalf("directory length changed on no-op delete")
	}
	if !s.IsAuthenticated() {
		t.Fatalf("session must survive a no-op delete")
	}
}

// The admin walkthrough: log in, raise own salary, delete own account.
func TestAdminLifecycleScenario(t *testing.T) {
	s := New([]domain.User{{ID: "1", Email: "admin", Role: domain.RoleAdmin}})

	u, err := s.Login("admin", "admin")
	if err != nil || u.ID != "1" {
		t.Fatalf("login: %+v, %v", u, err)
	}

	salary := 90000.0
	if _, ok := s.Update("1", UserUpdate{Salary: &salary}); !ok {
		t.Fatalf("update missed")
	}
	session, _ := s.Session()
	if session.Salary != 90000 {
		t.Fatalf("session salary = %v, want 90000", session.Salary)
	}

	s.Delete("1")
	if s.IsAuthenticated() {
		t.Fatalf("session must be empty after self-deletion")
	}
	if s.Len() != 0 {
		t.Fatalf("directory must be empty, got %d", s.Len())
	}
}

func TestUsers_ReturnsCopy(t *testing.T) {
	s := seedStore()

	users := s.Users()
	users[0].Name = "mutated"

	fresh, _ := s.Get("1")
	if fresh.Name == "mutated" {
		t.Fatalf("Users must return a copy, not a mutation handle")
	}
}

func TestNew_AssignsMissingIDs(t *testing.T) {
	s := New([]domain.User{{Name: "X", Email: "x@photoalbums.com", Role: domain.RoleAdmin}})

	users := s.Users()
	if users[0].ID == "" {
		t.Fatalf("seed entry without id must get one assigned")
	}
	if users[0].CreatedAt.IsZero() {
		t.Fatalf("seed entry without CreatedAt must get one assigned")
	}
}
