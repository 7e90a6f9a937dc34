package ports

import (
	"context"
	"time"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// ListProjectsInput carries the project list filters plus the caller's
// identity for role scoping: photographers and designers only see projects
// they are assigned to.
type ListProjectsInput struct {
	Search string
	Status string
	Role   string
	UserID string
}

// CreateProjectInput carries all data needed to open a new album project.
type CreateProjectInput struct {
	Title          string
	AlbumType      string
	Description    string
	Deadline       time.Time
	ManagerID      string
	PhotographerID string
	DesignerID     string
}

// TransitionProjectInput moves a project to the next production stage.
type TransitionProjectInput struct {
	ID     string
	Status string
	Notes  string
}

// ProjectService defines use-case operations for album projects.
type ProjectService interface {
	List(ctx context.Context, input ListProjectsInput) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Transition(ctx context.Context, input TransitionProjectInput) (*domain.Project, error)
}
