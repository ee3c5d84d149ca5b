// Package handler provides the HTTP handlers of the StudyVerse API.
package handler

import (
	"context"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/service"
	"github.com/ncobase/studyverse/validation/validator"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports store health.
type HealthChecker interface {
	Health(ctx context.Context) map[string]any
}

// Handler aggregates all HTTP handlers.
type Handler struct {
	Task     *TaskHandler
	Stats    *StatsHandler
	Pomodoro *PomodoroHandler
	User     *UserHandler
	Auth     *AuthHandler
	Health   *HealthHandler
	gate     gin.HandlerFunc
	logger   *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers
// initialized. gate guards every route except auth and health.
func NewHandler(svc *service.Service, hc HealthChecker, gate gin.HandlerFunc, l *logger.Logger) *Handler {
	validator.Setup()
	return &Handler{
		Task:     NewTaskHandler(svc.Task, l),
		Stats:    NewStatsHandler(svc.Stats, l),
		Pomodoro: NewPomodoroHandler(svc.Pomodoro, l),
		User:     NewUserHandler(svc.User, l),
		Auth:     NewAuthHandler(svc.Auth, l),
		Health:   NewHealthHandler(hc),
		gate:     gate,
		logger:   l,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health.Check)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		private := api.Group("", h.gate)
		{
			tasks := private.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.POST("", h.Task.Create)
				tasks.PUT("/:id", h.Task.Update)
				tasks.DELETE("/:id", h.Task.Delete)
			}

			private.GET("/dashboard", h.Stats.Dashboard)
			private.GET("/stats", h.Stats.Statistics)

			pomodoro := private.Group("/pomodoro")
			{
				pomodoro.POST("/logs", h.Pomodoro.Log)
				pomodoro.GET("/logs", h.Pomodoro.Today)
				// paths used by the web client
				pomodoro.POST("/log", h.Pomodoro.Log)
				pomodoro.GET("/today", h.Pomodoro.Today)
			}

			users := private.Group("/users")
			{
				users.GET("/me", h.User.GetMe)
				users.PATCH("/me", h.User.UpdateMe)
			}
		}
	}
}
