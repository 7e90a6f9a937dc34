package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/api/metrics"
	"github.com/photoalbums/studio-api/internal/core/ports"
)

// EmployeeHandler handles the admin employee-administration routes.
type EmployeeHandler struct {
	directory ports.DirectoryService
}

func NewEmployeeHandler(directory ports.DirectoryService) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// List returns directory entries matching the search and role filters.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        search  query     string  false  "Matches name, email or department"
// @Param        role    query     string  false  "photographer | designer | admin"
// @Success      200     {object}  listEmployeesResponse
// @Failure      403     {object}  map[string]string
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	users, err := h.directory.List(c.Request().Context(), ports.ListEmployeesInput{
		Search: c.QueryParam("search"),
		Role:   c.QueryParam("role"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEmployeesResponse{Data: users, Total: len(users)})
}

// Get returns a single directory entry.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	user, err := h.directory.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create adds a new employee to the directory.
//
// @Summary      Add an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.directory.Add(c.Request().Context(), ports.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Phone:      req.Phone,
		Telegram:   req.Telegram,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update merges a partial payload into an employee record. Updating the
// logged-in user's own record also refreshes the session copy.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/employees/{id} [patch]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.directory.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Phone:      req.Phone,
		Telegram:   req.Telegram,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		Avatar:     req.Avatar,
	})
	if err != nil {
		return err
	}

	metrics.EmployeeMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes an employee. Unknown ids are a no-op, so the route always
// answers 204. Deleting the logged-in user's record closes the session.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id  path  string  true  "Employee id"
// @Success      204  "deleted or already absent"
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.directory.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EmployeeMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
