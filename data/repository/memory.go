package repository

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ncobase/studyverse/structs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is a process-local store implementing all three repositories.
// It keeps the single-record atomicity of the document store.
type Memory struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]*structs.Task
	logs  map[primitive.ObjectID]*structs.PomodoroLog
	users map[primitive.ObjectID]*structs.User
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		tasks: make(map[primitive.ObjectID]*structs.Task),
		logs:  make(map[primitive.ObjectID]*structs.PomodoroLog),
		users: make(map[primitive.ObjectID]*structs.User),
	}
}

// Tasks returns the task repository view.
func (m *Memory) Tasks() TaskRepository { return memoryTasks{m} }

// Pomodoros returns the session log repository view.
func (m *Memory) Pomodoros() PomodoroRepository { return memoryPomodoros{m} }

// Users returns the user repository view.
func (m *Memory) Users() UserRepository { return memoryUsers{m} }

type memoryTasks struct{ m *Memory }

func cloneTask(t *structs.Task) *structs.Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

func (r memoryTasks) Create(_ context.Context, task *structs.Task) (*structs.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	task.ID = primitive.NewObjectID()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	r.m.tasks[task.ID] = cloneTask(task)
	return cloneTask(task), nil
}

func (r memoryTasks) ListByOwner(_ context.Context, owner string) ([]*structs.Task, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	tasks := make([]*structs.Task, 0)
	for _, t := range r.m.tasks {
		if t.Owner == owner {
			tasks = append(tasks, cloneTask(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return taskLess(tasks[i], tasks[j]) })
	return tasks, nil
}

// taskLess orders like the document store: missing due dates first, then
// due date ascending, then id ascending.
func taskLess(a, b *structs.Task) bool {
	switch {
	case a.DueDate == nil && b.DueDate != nil:
		return true
	case a.DueDate != nil && b.DueDate == nil:
		return false
	case a.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
		return a.DueDate.Before(*b.DueDate)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

func (r memoryTasks) find(id, owner string) (*structs.Task, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	t, ok := r.m.tasks[objectID]
	if !ok || t.Owner != owner {
		return nil, false
	}
	return t, true
}

func (r memoryTasks) FindByIDAndOwner(_ context.Context, id, owner string) (*structs.Task, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	t, ok := r.find(id, owner)
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTask(t), nil
}

func (r memoryTasks) UpdateByIDAndOwner(_ context.Context, id, owner string, patch *structs.TaskPatch) (*structs.Task, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	t, ok := r.find(id, owner)
	if !ok {
		return nil, ErrNotFound
	}
	if patch != nil {
		patch.Apply(t)
	}
	return cloneTask(t), nil
}

func (r memoryTasks) DeleteByIDAndOwner(_ context.Context, id, owner string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	t, ok := r.find(id, owner)
	if !ok {
		return ErrNotFound
	}
	delete(r.m.tasks, t.ID)
	return nil
}

type memoryPomodoros struct{ m *Memory }

func (r memoryPomodoros) Create(_ context.Context, log *structs.PomodoroLog) (*structs.PomodoroLog, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	log.ID = primitive.NewObjectID()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	c := *log
	r.m.logs[log.ID] = &c
	out := c
	return &out, nil
}

func (r memoryPomodoros) ListByOwnerInRange(_ context.Context, owner string, from, to time.Time) ([]*structs.PomodoroLog, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	logs := make([]*structs.PomodoroLog, 0)
	for _, l := range r.m.logs {
		if l.Owner != owner || l.Timestamp.Before(from) || l.Timestamp.After(to) {
			continue
		}
		c := *l
		logs = append(logs, &c)
	}
	sort.Slice(logs, func(i, j int) bool {
		if logs[i].Timestamp.Equal(logs[j].Timestamp) {
			return bytes.Compare(logs[i].ID[:], logs[j].ID[:]) > 0
		}
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

type memoryUsers struct{ m *Memory }

func (r memoryUsers) emailTaken(email string, except primitive.ObjectID) bool {
	for id, u := range r.m.users {
		if id != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r memoryUsers) Create(_ context.Context, user *structs.User) (*structs.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if r.emailTaken(user.Email, primitive.NilObjectID) {
		return nil, ErrDuplicate
	}
	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	c := *user
	r.m.users[user.ID] = &c
	out := c
	return &out, nil
}

func (r memoryUsers) FindByID(_ context.Context, id string) (*structs.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	u, ok := r.m.users[objectID]
	if !ok {
		return nil, ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (*structs.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) Update(_ context.Context, user *structs.User) (*structs.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[user.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return nil, ErrDuplicate
	}
	u.Name = user.Name
	u.Email = user.Email
	u.UpdatedAt = time.Now()
	c := *u
	return &c, nil
}
