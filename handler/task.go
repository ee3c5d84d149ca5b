package handler

import (
	"net/http"

	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/net/resp"
	"github.com/ncobase/studyverse/service"

	"github.com/gin-gonic/gin"
)

// TaskDeleted acknowledges a deletion.
const TaskDeleted = "Task deleted successfully"

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc    *service.TaskService
	logger *logger.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc *service.TaskService, l *logger.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: l}
}

// List handles task listing.
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.svc.ListTasks(c.Request.Context(), owner)
	if err != nil {
		fail(c, h.logger, err, "failed to list tasks")
		return
	}
	resp.Success(c.Writer, tasks)
}

// Create handles task creation.
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), owner, &req)
	if err != nil {
		fail(c, h.logger, err, "failed to create task")
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, task)
}

// Update handles task updates.
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, h.logger, err)
		return
	}

	task, err := h.svc.UpdateTask(c.Request.Context(), owner, c.Param("id"), &req)
	if err != nil {
		fail(c, h.logger, err, "failed to update task")
		return
	}
	resp.Success(c.Writer, task)
}

// Delete handles task deletion.
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteTask(c.Request.Context(), owner, c.Param("id")); err != nil {
		fail(c, h.logger, err, "failed to delete task")
		return
	}
	resp.Success(c.Writer, TaskDeleted)
}
