package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/photoalbums/studio-api/docs"
	"github.com/photoalbums/studio-api/internal/api/handler"
	"github.com/photoalbums/studio-api/internal/api/middleware"
	"github.com/photoalbums/studio-api/internal/core/domain"
	"github.com/photoalbums/studio-api/internal/core/service"
	"github.com/photoalbums/studio-api/internal/core/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(directory *store.Store, projects *store.ProjectStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Dependencies ---
	authService := service.NewAuthService(directory, log)
	directoryService := service.NewDirectoryService(directory, log)
	projectService := service.NewProjectService(projects, directory, log)
	salaryService := service.NewSalaryService(directory, log)
	dashboardService := service.NewDashboardService(projects, directory)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(directoryService)
	projectHandler := handler.NewProjectHandler(projectService)
	salaryHandler := handler.NewSalaryHandler(salaryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(directory)

	session := middleware.Session(directory)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, session)

	// --- Dashboard ---
	v1 := e.Group("/v1", session)
	v1.GET("/dashboard", dashboardHandler.Summary)

	// --- Projects (all roles; listing is role-scoped in the service) ---
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.POST("/projects", projectHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RolePhotographer))
	v1.PATCH("/projects/:id/status", projectHandler.Transition)

	// --- Employee administration (admin only) ---
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	v1.GET("/employees", employeeHandler.List, adminOnly)
	v1.POST("/employees", employeeHandler.Create, adminOnly)
	v1.GET("/employees/:id", employeeHandler.Get, adminOnly)
	v1.PATCH("/employees/:id", employeeHandler.Update, adminOnly)
	v1.DELETE("/employees/:id", employeeHandler.Delete, adminOnly)

	// --- Payroll (admin only) ---
	v1.GET("/salaries", salaryHandler.List, adminOnly)

	// --- Health probes and operational endpoints (no session required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)    // readiness – is the directory seeded?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
