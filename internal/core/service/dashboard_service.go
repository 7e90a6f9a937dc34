package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

const recentProjectsLimit = 3

// DashboardService assembles the role-specific landing view from live
// store contents.
type DashboardService struct {
	projects  *store.ProjectStore
	directory *store.Store
}

func NewDashboardService(projects *store.ProjectStore, directory *store.Store) *DashboardService {
	return &DashboardService{projects: projects, directory: directory}
}

// Summary returns the stat cards and recent projects for the given user.
func (s *DashboardService) Summary(_ context.Context, user domain.User) (*ports.DashboardSummary, error) {
	visible := make([]domain.Project, 0)
	for _, p := range s.projects.Projects() {
		if visibleTo(p, user.Role, user.ID) {
			visible = append(visible, p)
		}
	}

	summary := &ports.DashboardSummary{
		Stats:          s.stats(user.Role, visible),
		RecentProjects: recent(visible),
	}
	return summary, nil
}

func (s *DashboardService) stats(role string, visible []domain.Project) []ports.StatCard {
	var photos, designs, active, inReview, completed int
	for _, p := range visible {
		photos += p.PhotosCount
		designs += p.DesignsCount
		switch p.Status {
		case domain.StatusCompleted:
			completed++
		case domain.StatusReview:
			inReview++
			active++
		default:
			active++
		}
	}

	switch role {
	case domain.RolePhotographer:
		return []ports.StatCard{
			{Label: "photos_uploaded", Value: strconv.Itoa(photos)},
			{Label: "active_projects", Value: strconv.Itoa(active)},
			{Label: "awaiting_review", Value: strconv.Itoa(inReview)},
			{Label: "completed_projects", Value: strconv.Itoa(completed)},
		}
	case domain.RoleDesigner:
		return []ports.StatCard{
			{Label: "designs_created", Value: strconv.Itoa(designs)},
			{Label: "active_projects", Value: strconv.Itoa(active)},
			{Label: "awaiting_review", Value: strconv.Itoa(inReview)},
			{Label: "completed_projects", Value: strconv.Itoa(completed)},
		}
	default: // admin
		return []ports.StatCard{
			{Label: "total_projects", Value: strconv.Itoa(len(visible))},
			{Label: "active_users", Value: strconv.Itoa(s.directory.Len())},
			{Label: "active_projects", Value: strconv.Itoa(active)},
			{Label: "completed_projects", Value: strconv.Itoa(completed)},
		}
	}
}

// recent returns up to recentProjectsLimit projects, most recently updated
// first.
func recent(projects []domain.Project) []domain.Project {
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > recentProjectsLimit {
		sorted = sorted[:recentProjectsLimit]
	}
	return sorted
}
