package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the production stage of an album project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in-progress"
	StatusReview     ProjectStatus = "review"
	StatusCompleted  ProjectStatus = "completed"
)

// validTransitions defines the allowed production stage transitions.
// Review can bounce back to in-progress when the client requests changes.
var validTransitions = map[ProjectStatus][]ProjectStatus{
	StatusPlanning:   {StatusInProgress},
	StatusInProgress: {StatusReview},
	StatusReview:     {StatusInProgress, StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrProjectNotFound = errors.New("project not found")

// CanTransitionTo reports whether a transition from the current stage to next is valid.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParticipantRef points at a directory entry assigned to a project.
type ParticipantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StatusHistoryEntry records a single stage change on a project.
type StatusHistoryEntry struct {
	Status    ProjectStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Notes     string        `json:"notes,omitempty"`
}

// Project is an album production order: a titled album of a given type
// moving through planning, shooting, design and review.
type Project struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	AlbumType     string               `json:"album_type"`
	Description   string               `json:"description"`
	Status        ProjectStatus        `json:"status"`
	Manager       *ParticipantRef      `json:"manager,omitempty"`
	Photographer  *ParticipantRef      `json:"photographer,omitempty"`
	Designer      *ParticipantRef      `json:"designer,omitempty"`
	Deadline      time.Time            `json:"deadline"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Progress      int                  `json:"progress"`
	PhotosCount   int                  `json:"photos_count"`
	DesignsCount  int                  `json:"designs_count"`
	StatusHistory []StatusHistoryEntry `json:"status_history"`
}
