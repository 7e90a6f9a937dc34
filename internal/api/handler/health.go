package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/core/store"
)

// HealthHandler handles the health probes. There are no external
// dependencies to ping; readiness only confirms the directory is seeded so
// login is possible.
type HealthHandler struct {
	directory *store.Store
}

func NewHealthHandler(directory *store.Store) *HealthHandler {
	return &HealthHandler{directory: directory}
}

// Liveness handles GET /health — is the process alive?
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type readinessResponse struct {
	Status        string `json:"status"`
	DirectorySize int    `json:"directory_size"`
}

// Readiness handles GET /health/ready — can anybody log in?
func (h *HealthHandler) Readiness(c echo.Context) error {
	size := h.directory.Len()
	if size == 0 {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{
			Status:        "degraded",
			DirectorySize: 0,
		})
	}
	return c.JSON(http.StatusOK, readinessResponse{
		Status:        "ok",
		DirectorySize: size,
	})
}
