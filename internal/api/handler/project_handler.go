package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/api/metrics"
	"github.com/photoalbums/studio-api/internal/core/ports"
)

// ProjectHandler handles the album project routes.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List returns projects visible to the caller, filtered by search and status.
// Photographers and designers only see projects they are assigned to.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        search  query     string  false  "Matches title or description"
// @Param        status  query     string  false  "planning | in-progress | review | completed"
// @Success      200     {object}  listProjectsResponse
// @Failure      401     {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	projects, err := h.projects.List(c.Request().Context(), ports.ListProjectsInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Role:   user.Role,
		UserID: user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProjectsResponse{Data: projects, Total: len(projects)})
}

// Get returns a single project.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create opens a new album project in the planning stage.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:          req.Title,
		AlbumType:      req.AlbumType,
		Description:    req.Description,
		Deadline:       req.Deadline,
		ManagerID:      req.ManagerID,
		PhotographerID: req.PhotographerID,
		DesignerID:     req.DesignerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Transition moves a project to the next production stage.
//
// @Summary      Change a project's status
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Project id"
// @Param        body  body      transitionProjectRequest  true  "Target status"
// @Success      200   {object}  domain.Project
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects/{id}/status [patch]
func (h *ProjectHandler) Transition(c echo.Context) error {
	var req transitionProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Transition(c.Request().Context(), ports.TransitionProjectInput{
		ID:     c.Param("id"),
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.ProjectTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, project)
}
