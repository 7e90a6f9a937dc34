package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

// ProjectService implements album project listing, creation and stage
// transitions. Participant references are resolved against the directory.
type ProjectService struct {
	projects  *store.ProjectStore
	directory *store.Store
	log       zerolog.Logger
}

func NewProjectService(projects *store.ProjectStore, directory *store.Store, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, directory: directory, log: log}
}

// List returns projects matching the filters. Photographers and designers
// only see projects they are assigned to; admins see everything.
func (s *ProjectService) List(_ context.Context, input ports.ListProjectsInput) ([]domain.Project, error) {
	needle := strings.ToLower(input.Search)
	out := make([]domain.Project, 0)
	for _, p := range s.projects.Projects() {
		if !visibleTo(p, input.Role, input.UserID) {
			continue
		}
		if input.Status != "" && p.Status != domain.ProjectStatus(input.Status) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns a single project.
func (s *ProjectService) Get(_ context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create opens a new project in the planning stage. Assigned participants
// must exist in the directory.
func (s *ProjectService) Create(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	manager, err := s.participant(input.ManagerID)
	if err != nil {
		return nil, err
	}
	photographer, err := s.participant(input.PhotographerID)
	if err != nil {
		return nil, err
	}
	designer, err := s.participant(input.DesignerID)
	if err != nil {
		return nil, err
	}

	p := s.projects.Add(domain.Project{
		Title:        input.Title,
		AlbumType:    input.AlbumType,
		Description:  input.Description,
		Deadline:     input.Deadline,
		Manager:      manager,
		Photographer: photographer,
		Designer:     designer,
	})

	s.log.Info().Str("project_id", p.ID).Str("album_type", p.AlbumType).Msg("project created")
	return &p, nil
}

// Transition moves a project to the requested production stage.
func (s *ProjectService) Transition(_ context.Context, input ports.TransitionProjectInput) (*domain.Project, error) {
	next := domain.ProjectStatus(input.Status)
	switch next {
	case domain.StatusPlanning, domain.StatusInProgress, domain.StatusReview, domain.StatusCompleted:
	default:
		return nil, domain.ErrInvalidTransition
	}

	p, err := s.projects.Transition(input.ID, next, input.Notes)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", p.ID).Str("status", string(p.Status)).Msg("project stage changed")
	return &p, nil
}

// participant resolves a directory id to a reference. An empty id means the
// slot is unassigned.
func (s *ProjectService) participant(id string) (*domain.ParticipantRef, error) {
	if id == "" {
		return nil, nil
	}
	u, ok := s.directory.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.ParticipantRef{ID: u.ID, Name: u.Name}, nil
}

func visibleTo(p domain.Project, role, userID string) bool {
	switch role {
	case domain.RolePhotographer:
		return p.Photographer != nil && p.Photographer.ID == userID
	case domain.RoleDesigner:
		return p.Designer != nil && p.Designer.ID == userID
	default:
		return true
	}
}
