// Package stats derives the dashboard summary and the statistics bundle
// from a user's task list. Both are pure functions of their inputs.
package stats

import "github.com/ncobase/studyverse/structs"

// Weekly goal thresholds on the completed task count.
const (
	sessionGoalThreshold = 5
	taskGoalThreshold    = 3
)

// Dashboard summarizes tasks in their listing order.
func Dashboard(tasks []*structs.Task) *structs.Dashboard {
	completed := 0
	upcoming := make([]*structs.UpcomingTask, 0)
	for _, t := range tasks {
		if t.Completed {
			completed++
			continue
		}
		if t.HasDueDate() {
			upcoming = append(upcoming, &structs.UpcomingTask{
				ID:    t.ID.Hex(),
				Title: t.Title,
				Due:   *t.DueDate,
			})
		}
	}

	return &structs.Dashboard{
		TotalTasks:     len(tasks),
		CompletedTasks: completed,
		UpcomingTasks:  upcoming,
		WeeklyGoals:    weeklyGoals(completed),
	}
}

func weeklyGoals(completed int) []*structs.WeeklyGoal {
	return []*structs.WeeklyGoal{
		{ID: 1, Goal: "Complete 5 Pomodoro sessions", Done: completed >= sessionGoalThreshold},
		{ID: 2, Goal: "Finish 3 tasks", Done: completed >= taskGoalThreshold},
		// not backed by any data yet
		{ID: 3, Goal: "Revise 2 chapters", Done: false},
	}
}
