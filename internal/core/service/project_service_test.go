package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

func newProjectService() (*ProjectService, *store.ProjectStore) {
	directory := store.New([]domain.User{
		{ID: "1", Name: "Анна Иванова", Role: domain.RolePhotographer, Email: "anna@photoalbums.com"},
		{ID: "2", Name: "Михаил Петров", Role: domain.RoleDesigner, Email: "mikhail@photoalbums.com"},
		{ID: "3", Name: "Елена Сидорова", Role: domain.RoleAdmin, Email: "elena@photoalbums.com"},
	})
	projects := store.NewProjectStore([]domain.Project{
		{
			ID: "p1", Title: "Свадебный альбом", Description: "Премиальный альбом",
			Status:       domain.StatusInProgress,
			Photographer: &domain.ParticipantRef{ID: "1", Name: "Анна Иванова"},
			Designer:     &domain.ParticipantRef{ID: "2", Name: "Михаил Петров"},
		},
		{
			ID: "p2", Title: "Детский альбом", Description: "Студийная фотосессия",
			Status:       domain.StatusPlanning,
			Photographer: &domain.ParticipantRef{ID: "4", Name: "Дмитрий Козлов"},
		},
	})
	return NewProjectService(projects, directory, zerolog.Nop()), projects
}

func TestProjectList_AdminSeesAll(t *testing.T) {
	svc, _ := newProjectService()

	projects, err := svc.List(context.Background(), ports.ListProjectsInput{Role: domain.RoleAdmin, UserID: "3"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("admin must see all projects, got %d", len(projects))
	}
}

func TestProjectList_PhotographerSeesOwnOnly(t *testing.T) {
	svc, _ := newProjectService()

	projects, _ := svc.List(context.Background(), ports.ListProjectsInput{Role: domain.RolePhotographer, UserID: "1"})
	if len(projects) != 1 || projects[0].ID != "p1" {
		t.Fatalf("photographer 1 must only see p1, got %+v", projects)
	}
}

func TestProjectList_DesignerWithNoAssignments(t *testing.T) {
	svc, _ := newProjectService()

	projects, _ := svc.List(context.Background(), ports.ListProjectsInput{Role: domain.RoleDesigner, UserID: "99"})
	if len(projects) != 0 {
		t.Fatalf("unassigned designer must see nothing, got %+v", projects)
	}
}

func TestProjectList_StatusAndSearchFilters(t *testing.T) {
	svc, _ := newProjectService()

	projects, _ := svc.List(context.Background(), ports.ListProjectsInput{Role: domain.RoleAdmin, Status: "planning"})
	if len(projects) != 1 || projects[0].ID != "p2" {
		t.Fatalf("status filter failed: %+v", projects)
	}

	projects, _ = svc.List(context.Background(), ports.ListProjectsInput{Role: domain.RoleAdmin, Search: "свадебный"})
	if len(projects) != 1 || projects[0].ID != "p1" {
		t.Fatalf("search filter failed: %+v", projects)
	}
}

func TestProjectCreate_ResolvesParticipants(t *testing.T) {
	svc, _ := newProjectService()

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title:          "Выпускной альбом",
		AlbumType:      "Выпускной альбом",
		Deadline:       time.Now().AddDate(0, 1, 0),
		ManagerID:      "3",
		PhotographerID: "1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Manager == nil || p.Manager.Name != "Елена Сидорова" {
		t.Fatalf("manager ref not resolved: %+v", p.Manager)
	}
	if p.Designer != nil {
		t.Fatalf("unassigned designer must stay nil")
	}
	if p.Status != domain.StatusPlanning {
		t.Fatalf("new project must start in planning")
	}
}

func TestProjectCreate_UnknownParticipant(t *testing.T) {
	svc, _ := newProjectService()

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Title: "X", AlbumType: "X", PhotographerID: "missing",
	}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProjectTransition_UnknownStatus(t *testing.T) {
	svc, _ := newProjectService()

	if _, err := svc.Transition(context.Background(), ports.TransitionProjectInput{ID: "p1", Status: "archived"}); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestProjectTransition_Forwarded(t *testing.T) {
	svc, projects := newProjectService()

	p, err := svc.Transition(context.Background(), ports.TransitionProjectInput{ID: "p1", Status: "review", Notes: "альбом готов"})
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if p.Status != domain.StatusReview {
		t.Fatalf("status = %s, want review", p.Status)
	}

	stored, _ := projects.Get("p1")
	if stored.Status != domain.StatusReview {
		t.Fatalf("store not updated")
	}
}
