package domain

import (
	"errors"
	"time"
)

const (
	RolePhotographer = "photographer"
	RoleDesigner     = "designer"
	RoleAdmin        = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the three fixed roles.
func ValidRole(role string) bool {
	return role == RolePhotographer || role == RoleDesigner || role == RoleAdmin
}

// User is an employee record and, when logged in, the session identity.
// ID and CreatedAt are assigned once at creation and never change.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	Telegram   string    `json:"telegram,omitempty"`
	Department string    `json:"department,omitempty"`
	Position   string    `json:"position,omitempty"`
	Salary     float64   `json:"salary,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
