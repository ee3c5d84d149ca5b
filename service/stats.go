package service

import (
	"context"

	"github.com/ncobase/studyverse/data"
	"github.com/ncobase/studyverse/service/stats"
	"github.com/ncobase/studyverse/structs"
)

// StatsService loads a user's tasks and aggregates them on every call.
type StatsService struct {
	data *data.Data
	now  Clock
}

// NewStatsService creates a new stats service.
func NewStatsService(d *data.Data, now Clock) *StatsService {
	return &StatsService{data: d, now: now}
}

// Dashboard returns the owner's dashboard summary.
func (s *StatsService) Dashboard(ctx context.Context, owner string) (*structs.Dashboard, error) {
	tasks, err := s.data.TaskRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return stats.Dashboard(tasks), nil
}

// Statistics returns the owner's chart bundle as of now.
func (s *StatsService) Statistics(ctx context.Context, owner string) (*structs.Statistics, error) {
	tasks, err := s.data.TaskRepo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	return stats.Statistics(tasks, s.now()), nil
}
