package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleAddTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleBeginEdit(c *gin.Context)
	HandleEditState(c *gin.Context)
	HandleCancelEdit(c *gin.Context)

	HandleExportTasks(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tasks  services.TaskService
	export services.ExportService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
	exportService services.ExportService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tasks:  taskService,
		export: exportService,
	}
}

// RegisterRoutes mounts the API on the router: the health probe at the
// root, login and everything task-related under /api/v1. All task routes
// sit behind the auth middleware; it passes requests through when auth is
// disabled.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/health", h.HandleHealth)

	api := router.Group("/api/v1")
	api.POST("/auth/login", h.HandleLogin)

	protected := api.Group("", h.HandleAuthMiddleware)
	protected.GET("/tasks", h.HandleListTasks)
	protected.POST("/tasks", h.HandleAddTask)
	protected.PUT("/tasks/:id", h.HandleUpdateTask)
	protected.POST("/tasks/:id/toggle", h.HandleToggleTask)
	protected.DELETE("/tasks/:id", h.HandleDeleteTask)
	protected.POST("/tasks/:id/edit", h.HandleBeginEdit)
	protected.GET("/edit", h.HandleEditState)
	protected.DELETE("/edit", h.HandleCancelEdit)
	protected.GET("/export", h.HandleExportTasks)
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
