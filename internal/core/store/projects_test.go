package store

import (
	"testing"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

func TestProjectAdd_StartsInPlanning(t *testing.T) {
	ps := NewProjectStore(nil)

	p := ps.Add(domain.Project{Title: "Свадебный альбом", AlbumType: "Свадебный альбом"})
	if p.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if p.Status != domain.StatusPlanning {
		t.Fatalf("new projects must start in planning, got %s", p.Status)
	}
	if len(p.StatusHistory) != 1 || p.StatusHistory[0].Status != domain.StatusPlanning {
		t.Fatalf("unexpected status history: %+v", p.StatusHistory)
	}
}

func TestProjectTransition_HappyPath(t *testing.T) {
	ps := NewProjectStore(nil)
	p := ps.Add(domain.Project{Title: "Альбом"})

	for _, next := range []domain.ProjectStatus{domain.StatusInProgress, domain.StatusReview, domain.StatusCompleted} {
		got, err := ps.Transition(p.ID, next, "")
		if err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
		if got.Status != next {
			t.Fatalf("status = %s, want %s", got.Status, next)
		}
	}

	final, _ := ps.Get(p.ID)
	if len(final.StatusHistory) != 4 {
		t.Fatalf("expected 4 history entries, got %d", len(final.StatusHistory))
	}
	if final.Progress != 100 {
		t.Fatalf("completed project progress = %d, want 100", final.Progress)
	}
}

func TestProjectTransition_ReviewCanBounceBack(t *testing.T) {
	ps := NewProjectStore([]domain.Project{{ID: "p1", Status: domain.StatusReview}})

	got, err := ps.Transition("p1", domain.StatusInProgress, "client requested changes")
	if err != nil {
		t.Fatalf("review -> in-progress must be allowed: %v", err)
	}
	if got.StatusHistory[len(got.StatusHistory)-1].Notes != "client requested changes" {
		t.Fatalf("notes not recorded")
	}
}

func TestProjectTransition_Invalid(t *testing.T) {
	ps := NewProjectStore([]domain.Project{{ID: "p1", Status: domain.StatusPlanning}})

	if _, err := ps.Transition("p1", domain.StatusCompleted, ""); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// completed is terminal
	ps2 := NewProjectStore([]domain.Project{{ID: "p2", Status: domain.StatusCompleted}})
	if _, err := ps2.Transition("p2", domain.StatusReview, ""); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from completed, got %v", err)
	}
}

func TestProjectTransition_NotFound(t *testing.T) {
	ps := NewProjectStore(nil)

	if _, err := ps.Transition("missing", domain.StatusInProgress, ""); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectGet_NotFound(t *testing.T) {
	ps := NewProjectStore(nil)

	if _, err := ps.Get("missing"); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
