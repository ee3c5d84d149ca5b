package service

import (
	"context"
	"strings"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/structs"
)

const taskNotFound = "Task not found"

// TaskService handles task-related business logic.
type TaskService struct {
	data   *data.Data
	logger *logger.Logger
	now    Clock
}

// NewTaskService creates a new task service.
func NewTaskService(d *data.Data, l *logger.Logger, now Clock) *TaskService {
	return &TaskService{data: d, logger: l, now: now}
}

// CreateTaskRequest represents the request to create a task.
type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required,max=200"`
	Description string           `json:"description" binding:"max=2000"`
	DueDate     *DueDate         `json:"dueDate"`
	Priority    structs.Priority `json:"priority" binding:"omitempty,priority"`
}

// UpdateTaskRequest lists the fields a client may change. Absent fields are
// left untouched; dueDate null or "" removes the due date.
type UpdateTaskRequest struct {
	Title       *string           `json:"title" binding:"omitempty,max=200"`
	Description *string           `json:"description" binding:"omitempty,max=2000"`
	DueDate     DueDate           `json:"dueDate"`
	Priority    *structs.Priority `json:"priority" binding:"omitempty,priority"`
	Completed   *bool             `json:"completed"`
}

// ListTasks returns the owner's tasks by ascending due date.
func (s *TaskService) ListTasks(ctx context.Context, owner string) ([]*structs.Task, error) {
	return s.data.TaskRepo.ListByOwner(ctx, owner)
}

// CreateTask creates a task for owner with default priority and open state.
func (s *TaskService) CreateTask(ctx context.Context, owner string, req *CreateTaskRequest) (*structs.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ValidationError("title is required")
	}

	priority := req.Priority
	if priority == "" {
		priority = structs.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ValidationError("priority must be one of High, Medium, Low")
	}

	task := &structs.Task{
		Owner:       owner,
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate.Ptr(),
		Priority:    priority,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	return s.data.TaskRepo.Create(ctx, task)
}

// UpdateTask applies the supplied fields to one of owner's tasks.
func (s *TaskService) UpdateTask(ctx context.Context, owner, id string, req *UpdateTaskRequest) (*structs.Task, error) {
	patch := &structs.TaskPatch{
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ValidationError("title is required")
		}
		patch.Title = &title
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, ValidationError("priority must be one of High, Medium, Low")
		}
		patch.Priority = req.Priority
	}
	if req.DueDate.Cleared() {
		patch.ClearDueDate = true
	} else {
		patch.DueDate = req.DueDate.Ptr()
	}

	task, err := s.data.TaskRepo.UpdateByIDAndOwner(ctx, id, owner, patch)
	if err != nil {
		return nil, translate(err, taskNotFound, "")
	}
	return task, nil
}

// DeleteTask removes one of owner's tasks.
func (s *TaskService) DeleteTask(ctx context.Context, owner, id string) error {
	if err := s.data.TaskRepo.DeleteByIDAndOwner(ctx, id, owner); err != nil {
		return translate(err, taskNotFound, "")
	}
	s.logger.Info(ctx, "task removed", "id", id, "owner", owner)
	return nil
}
