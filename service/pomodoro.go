package service

import (
	"context"
	"time"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/structs"
)

// PomodoroService records finished timer intervals.
type PomodoroService struct {
	data   *data.Data
	logger *logger.Logger
	now    Clock
}

// NewPomodoroService creates a new pomodoro service.
func NewPomodoroService(d *data.Data, l *logger.Logger, now Clock) *PomodoroService {
	return &PomodoroService{data: d, logger: l, now: now}
}

// LogSessionRequest represents a finished interval.
type LogSessionRequest struct {
	Mode structs.PomodoroMode `json:"mode" binding:"required,pomodoro_mode"`
}

// LogSession appends a log stamped with the current time.
func (s *PomodoroService) LogSession(ctx context.Context, owner string, req *LogSessionRequest) (*structs.PomodoroLog, error) {
	if !req.Mode.Valid() {
		return nil, ValidationError("Invalid mode")
	}
	log, err := s.data.PomodoroRepo.Create(ctx, &structs.PomodoroLog{
		Owner:     owner,
		Mode:      req.Mode,
		Timestamp: s.now(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "pomodoro logged", "owner", owner, "mode", string(req.Mode))
	return log, nil
}

// TodaySessions lists the owner's logs of the current calendar day, newest
// first.
func (s *PomodoroService) TodaySessions(ctx context.Context, owner string) ([]*structs.PomodoroLog, error) {
	from, to := DayBounds(s.now())
	return s.data.PomodoroRepo.ListByOwnerInRange(ctx, owner, from, to)
}

// DayBounds returns the first and last instant of t's calendar day in t's
// location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
