package service

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/security/jwt"
	"github.com/ncobase/studyverse/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	clock := &fakeClock{t: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)}
	svc := NewService(data.NewMemory(), jwt.NewTokenManager("test-secret", time.Hour), l, Options{
		Location: time.UTC,
		Clock:    clock.Now,
	})
	return svc, clock
}

func ptr[T any](v T) *T { return &v }

func dueDate(t time.Time) *DueDate { return &DueDate{Time: t} }

func TestCreateAndListTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "  Read Ch.1  "})
	require.NoError(t, err)
	assert.Equal(t, "Read Ch.1", created.Title)
	assert.Equal(t, structs.PriorityMedium, created.Priority)
	assert.False(t, created.Completed)
	assert.Nil(t, created.DueDate)
	assert.False(t, created.CreatedAt.IsZero())

	tasks, err := svc.Task.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
	assert.Equal(t, structs.PriorityMedium, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)
}

func TestListTasksEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	tasks, err := svc.Task.ListTasks(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "title is required", Message(err))

	_, err = svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "x", Priority: "Urgent"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaskOwnershipIsolation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.Task.CreateTask(ctx, "alice", &CreateTaskRequest{Title: "private"})
	require.NoError(t, err)
	id := task.ID.Hex()

	others, err := svc.Task.ListTasks(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.Task.UpdateTask(ctx, "bob", id, &UpdateTaskRequest{Completed: ptr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Task.DeleteTask(ctx, "bob", id), ErrNotFound)

	mine, err := svc.Task.ListTasks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].Completed)
}

func TestUpdateTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "draft", Description: "keep"})
	require.NoError(t, err)
	id := task.ID.Hex()
	due := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	req := &UpdateTaskRequest{
		Title:     ptr("final"),
		Priority:  ptr(structs.PriorityHigh),
		DueDate:   DueDate{Time: due, Set: true},
		Completed: ptr(true),
	}
	first, err := svc.Task.UpdateTask(ctx, "u1", id, req)
	require.NoError(t, err)
	second, err := svc.Task.UpdateTask(ctx, "u1", id, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, "final", second.Title)
	assert.Equal(t, "keep", second.Description)
	assert.Equal(t, structs.PriorityHigh, second.Priority)
	assert.True(t, second.Completed)
	require.NotNil(t, second.DueDate)
	assert.True(t, due.Equal(*second.DueDate))
	assert.Equal(t, task.Owner, second.Owner)
	assert.Equal(t, task.CreatedAt, second.CreatedAt)

	_, err = svc.Task.UpdateTask(ctx, "u1", id, &UpdateTaskRequest{Title: ptr(" ")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Task.UpdateTask(ctx, "u1", id, &UpdateTaskRequest{Priority: ptr(structs.Priority("Later"))})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Task.UpdateTask(ctx, "u1", "not-an-id", &UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "gone"})
	require.NoError(t, err)

	require.NoError(t, svc.Task.DeleteTask(ctx, "u1", task.ID.Hex()))
	assert.ErrorIs(t, svc.Task.DeleteTask(ctx, "u1", task.ID.Hex()), ErrNotFound)
	assert.ErrorIs(t, svc.Task.DeleteTask(ctx, "u1", "zzz"), ErrNotFound)
}

func TestDashboardWeeklyGoalsScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		task, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "t"})
		require.NoError(t, err)
		if i < 5 {
			_, err = svc.Task.UpdateTask(ctx, "u1", task.ID.Hex(), &UpdateTaskRequest{Completed: ptr(true)})
			require.NoError(t, err)
		}
	}

	d, err := svc.Stats.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, d.TotalTasks)
	assert.Equal(t, 5, d.CompletedTasks)
	assert.True(t, d.WeeklyGoals[0].Done)
	assert.True(t, d.WeeklyGoals[1].Done)
	assert.False(t, d.WeeklyGoals[2].Done)

	s, err := svc.Stats.Statistics(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 50, s.OverallCompletionRate)

	empty, err := svc.Stats.Statistics(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.OverallCompletionRate)
	assert.Len(t, empty.WeeklyHours, 7)
}

func TestDashboardUpcomingScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	nextMonday := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	task, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{
		Title:    "Read Ch.1",
		DueDate:  dueDate(nextMonday),
		Priority: structs.PriorityHigh,
	})
	require.NoError(t, err)

	d, err := svc.Stats.Dashboard(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, d.UpcomingTasks, 1)
	assert.Equal(t, "Read Ch.1", d.UpcomingTasks[0].Title)
	assert.True(t, nextMonday.Equal(d.UpcomingTasks[0].Due))

	_, err = svc.Task.UpdateTask(ctx, "u1", task.ID.Hex(), &UpdateTaskRequest{Completed: ptr(true)})
	require.NoError(t, err)
	d, err = svc.Stats.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, d.UpcomingTasks)
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	nextMonday := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	task, err := svc.Task.CreateTask(ctx, "u1", &CreateTaskRequest{Title: "Read Ch.1", DueDate: dueDate(nextMonday)})
	require.NoError(t, err)
	id := task.ID.Hex()

	var keep UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Read Ch.2"}`), &keep))
	kept, err := svc.Task.UpdateTask(ctx, "u1", id, &keep)
	require.NoError(t, err)
	require.NotNil(t, kept.DueDate)
	assert.True(t, nextMonday.Equal(*kept.DueDate))

	var clear UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &clear))
	cleared, err := svc.Task.UpdateTask(ctx, "u1", id, &clear)
	require.NoError(t, err)
	assert.Nil(t, cleared.DueDate)
	assert.Equal(t, "Read Ch.2", cleared.Title)

	d, err := svc.Stats.Dashboard(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, d.UpcomingTasks)

	// an empty string clears as well
	_, err = svc.Task.UpdateTask(ctx, "u1", id, &UpdateTaskRequest{DueDate: DueDate{Time: nextMonday, Set: true}})
	require.NoError(t, err)
	var blank UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":""}`), &blank))
	cleared, err = svc.Task.UpdateTask(ctx, "u1", id, &blank)
	require.NoError(t, err)
	assert.Nil(t, cleared.DueDate)
}

func TestPomodoroToday(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	log, err := svc.Pomodoro.LogSession(ctx, "u1", &LogSessionRequest{Mode: structs.ModeFocus})
	require.NoError(t, err)
	assert.Equal(t, structs.ModeFocus, log.Mode)
	assert.True(t, log.Timestamp.Equal(clock.t))

	clock.t = clock.t.Add(time.Hour)
	_, err = svc.Pomodoro.LogSession(ctx, "u2", &LogSessionRequest{Mode: structs.ModeShort})
	require.NoError(t, err)

	today, err := svc.Pomodoro.TodaySessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, structs.ModeFocus, today[0].Mode)

	clock.t = time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	tomorrow, err := svc.Pomodoro.TodaySessions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tomorrow)
}

func TestPomodoroNewestFirst(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	for _, mode := range []structs.PomodoroMode{structs.ModeFocus, structs.ModeShort, structs.ModeLong} {
		_, err := svc.Pomodoro.LogSession(ctx, "u1", &LogSessionRequest{Mode: mode})
		require.NoError(t, err)
		clock.t = clock.t.Add(time.Minute)
	}

	logs, err := svc.Pomodoro.TodaySessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, structs.ModeLong, logs[0].Mode)
	assert.Equal(t, structs.ModeFocus, logs[2].Mode)
}

func TestPomodoroInvalidMode(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Pomodoro.LogSession(ctx, "u1", &LogSessionRequest{Mode: "nap"})
	assert.ErrorIs(t, err, ErrValidation)

	logs, err := svc.Pomodoro.TodaySessions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 12, 15, 4, 5, 6, time.UTC)
	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 12, 23, 59, 59, 999999999, time.UTC), end)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Auth.Register(ctx, &RegisterRequest{Name: "Ada", Email: "Ada@Example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ada@example.com", res.User.Email)

	userID, err := jwt.NewTokenManager("test-secret", time.Hour).VerifyAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)

	_, err = svc.Auth.Register(ctx, &RegisterRequest{Name: "Ada2", Email: "ada@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrConflict)

	logged, err := svc.Auth.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, logged.User.ID)

	_, err = svc.Auth.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Auth.Login(ctx, &LoginRequest{Email: "who@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Auth.Register(ctx, &RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Auth.Register(ctx, &RegisterRequest{Name: " ", Email: "a@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Auth.Register(ctx, &RegisterRequest{Name: "A", Email: "not-mail", Password: "password1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ada, err := svc.Auth.Register(ctx, &RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "password1"})
	require.NoError(t, err)
	bob, err := svc.Auth.Register(ctx, &RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "password1"})
	require.NoError(t, err)

	me, err := svc.User.GetMe(ctx, ada.User.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.User, me)

	// empty fields keep the stored values
	same, err := svc.User.UpdateMe(ctx, ada.User.ID, &UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Ada", same.Name)
	assert.Equal(t, "ada@example.com", same.Email)

	renamed, err := svc.User.UpdateMe(ctx, ada.User.ID, &UpdateProfileRequest{Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", renamed.Name)
	assert.Equal(t, "ada@example.com", renamed.Email)

	_, err = svc.User.UpdateMe(ctx, ada.User.ID, &UpdateProfileRequest{Email: bob.User.Email})
	assert.ErrorIs(t, err, ErrConflict)
	_, err = svc.User.UpdateMe(ctx, ada.User.ID, &UpdateProfileRequest{Email: "broken@"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.User.GetMe(ctx, "000000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := svc.User.Exists(ctx, ada.User.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.User.Exists(ctx, "garbage")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDueDateUnmarshal(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","dueDate":"2025-03-17"}`), &req))
	require.NotNil(t, req.DueDate.Ptr())
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), *req.DueDate.Ptr())

	req = CreateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","dueDate":"2025-03-17T09:30:00+02:00"}`), &req))
	assert.True(t, time.Date(2025, 3, 17, 7, 30, 0, 0, time.UTC).Equal(*req.DueDate.Ptr()))

	req = CreateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","dueDate":""}`), &req))
	assert.Nil(t, req.DueDate.Ptr())

	req = CreateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","dueDate":null}`), &req))
	assert.Nil(t, req.DueDate.Ptr())

	var upd UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &upd))
	assert.False(t, upd.DueDate.Set)
	assert.False(t, upd.DueDate.Cleared())
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &upd))
	assert.True(t, upd.DueDate.Set)
	assert.True(t, upd.DueDate.Cleared())
	upd = UpdateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2025-03-17"}`), &upd))
	assert.False(t, upd.DueDate.Cleared())
	assert.NotNil(t, upd.DueDate.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"tomorrow"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":42}`), &req))
}
