package ports

import (
	"context"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// ListEmployeesInput carries the employee list filters. Search matches
// name, email and department case-insensitively; Role narrows to one role.
type ListEmployeesInput struct {
	Search string
	Role   string
}

// CreateEmployeeInput carries all data needed to add a directory entry.
// ID and CreatedAt are assigned by the store.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Role       string
	Phone      string
	Telegram   string
	Department string
	Position   string
	Salary     float64
	Avatar     string
}

// UpdateEmployeeInput is a partial update; nil fields are left untouched.
type UpdateEmployeeInput struct {
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

// DirectoryService defines use-case operations over the user directory.
type DirectoryService interface {
	List(ctx context.Context, input ListEmployeesInput) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Add(ctx context.Context, input CreateEmployeeInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
