package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// statusProgress maps a production stage to the nominal completion percentage
// shown on the dashboard after a transition.
var statusProgress = map[domain.ProjectStatus]int{
	domain.StatusPlanning:   10,
	domain.StatusInProgress: 50,
	domain.StatusReview:     90,
	domain.StatusCompleted:  100,
}

// ProjectStore owns the in-memory album project list.
type ProjectStore struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewProjectStore creates a ProjectStore seeded with the given projects.
func NewProjectStore(seed []domain.Project) *ProjectStore {
	p := &ProjectStore{projects: make([]domain.Project, 0, len(seed))}
	for _, proj := range seed {
		if proj.ID == "" {
			proj.ID = uuid.NewString()
		}
		p.projects = append(p.projects, proj)
	}
	return p
}

// Projects returns a copy of the project list in insertion order.
func (p *ProjectStore) Projects() []domain.Project {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]domain.Project, len(p.projects))
	copy(out, p.projects)
	return out
}

// Get returns the project with the given id.
func (p *ProjectStore) Get(id string) (domain.Project, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.projects {
		if p.projects[i].ID == id {
			return p.projects[i], nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// Add appends a new project in the planning stage.
func (p *ProjectStore) Add(proj domain.Project) domain.Project {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()
	proj.ID = uuid.NewString()
	proj.Status = domain.StatusPlanning
	proj.Progress = statusProgress[domain.StatusPlanning]
	proj.CreatedAt = now
	proj.UpdatedAt = now
	proj.StatusHistory = []domain.StatusHistoryEntry{{Status: domain.StatusPlanning, Timestamp: now}}
	p.projects = append(p.projects, proj)
	return proj
}

// Transition moves a project to the next production stage, recording the
// change in its status history. Disallowed transitions are rejected.
func (p *ProjectStore) Transition(id string, next domain.ProjectStatus, notes string) (domain.Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.projects {
		if p.projects[i].ID != id {
			continue
		}
		if !p.projects[i].Status.CanTransitionTo(next) {
			return domain.Project{}, domain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		p.projects[i].Status = next
		p.projects[i].Progress = statusProgress[next]
		p.projects[i].UpdatedAt = now
		p.projects[i].StatusHistory = append(p.projects[i].StatusHistory, domain.StatusHistoryEntry{
			Status:    next,
			Timestamp: now,
			Notes:     notes,
		})
		return p.projects[i], nil
	}
	return domain.Project{}, domain.ErrProjectNotFound
}
