// Package service contains the StudyVerse business logic.
package service

import (
	"time"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/logging/logger"
	"github.com/ncobase/studyverse/security/jwt"
)

// Clock returns the current instant.
type Clock func() time.Time

// Options tunes the services.
type Options struct {
	// Location is the zone for day and week boundaries. Defaults to time.Local.
	Location *time.Location
	// Clock defaults to time.Now.
	Clock Clock
}

// Service aggregates all business logic services.
type Service struct {
	Task     *TaskService
	Stats    *StatsService
	Pomodoro *PomodoroService
	User     *UserService
	Auth     *AuthService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(d *data.Data, tm *jwt.TokenManager, l *logger.Logger, opts Options) *Service {
	now := opts.now()
	return &Service{
		Task:     NewTaskService(d, l, now),
		Stats:    NewStatsService(d, now),
		Pomodoro: NewPomodoroService(d, l, now),
		User:     NewUserService(d, l),
		Auth:     NewAuthService(d, tm, l),
	}
}

// now returns the clock bound to the configured location.
func (o Options) now() Clock {
	clock := o.Clock
	if clock == nil {
		clock = time.Now
	}
	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return clock().In(loc) }
}
