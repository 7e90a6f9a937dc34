package ports

import (
	"context"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// StatCard is a single dashboard figure.
type StatCard struct {
	Label string
	Value string
}

// DashboardSummary is the role-specific landing view: stat cards plus the
// most recently updated projects.
type DashboardSummary struct {
	Stats          []StatCard
	RecentProjects []domain.Project
}

// DashboardService builds the landing view for the given user.
type DashboardService interface {
	Summary(ctx context.Context, user domain.User) (*DashboardSummary, error)
}
