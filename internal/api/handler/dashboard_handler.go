package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/ports"
)

// DashboardHandler serves the role-specific landing view.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

type statCardResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type dashboardResponse struct {
	User           *domain.User       `json:"user"`
	Stats          []statCardResponse `json:"stats"`
	RecentProjects []domain.Project   `json:"recent_projects"`
}

// Summary returns stat cards and recent projects for the session user.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), user)
	if err != nil {
		return err
	}

	resp := dashboardResponse{
		User:           &user,
		Stats:          make([]statCardResponse, 0, len(summary.Stats)),
		RecentProjects: summary.RecentProjects,
	}
	for _, s := range summary.Stats {
		resp.Stats = append(resp.Stats, statCardResponse{Label: s.Label, Value: s.Value})
	}
	return c.JSON(http.StatusOK, resp)
}
