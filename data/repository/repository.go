package repository

import (
	"context"
	"time"

	"github.com/ncobase/studyverse/structs"
)

// TaskRepository defines the interface for task data operations. Every
// operation is scoped to the owner.
type TaskRepository interface {
	Create(ctx context.Context, task *structs.Task) (*structs.Task, error)
	ListByOwner(ctx context.Context, owner string) ([]*structs.Task, error)
	FindByIDAndOwner(ctx context.Context, id, owner string) (*structs.Task, error)
	UpdateByIDAndOwner(ctx context.Context, id, owner string, patch *structs.TaskPatch) (*structs.Task, error)
	DeleteByIDAndOwner(ctx context.Context, id, owner string) error
}

// PomodoroRepository defines the interface for session log operations.
type PomodoroRepository interface {
	Create(ctx context.Context, log *structs.PomodoroLog) (*structs.PomodoroLog, error)
	ListByOwnerInRange(ctx context.Context, owner string, from, to time.Time) ([]*structs.PomodoroLog, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *structs.User) (*structs.User, error)
	FindByID(ctx context.Context, id string) (*structs.User, error)
	FindByEmail(ctx context.Context, email string) (*structs.User, error)
	Update(ctx context.Context, user *structs.User) (*structs.User, error)
}
