package handler

import (
	"time"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

type createProjectRequest struct {
	Title          string    `json:"title"           validate:"required"`
	AlbumType      string    `json:"album_type"      validate:"required"`
	Description    string    `json:"description"`
	Deadline       time.Time `json:"deadline"        validate:"required"`
	ManagerID      string    `json:"manager_id"`
	PhotographerID string    `json:"photographer_id"`
	DesignerID     string    `json:"designer_id"`
}

type transitionProjectRequest struct {
	Status string `json:"status" validate:"required,oneof=planning in-progress review completed"`
	Notes  string `json:"notes"`
}

type listProjectsResponse struct {
	Data  []domain.Project `json:"data"`
	Total int              `json:"total"`
}
