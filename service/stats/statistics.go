package stats

import (
	"math"
	"time"

	"github.com/ncobase/studyverse/structs"
)

// HoursPerTask is the study time estimate credited to each task.
const HoursPerTask = 1.5

// Breakdown bucket names.
const (
	BucketCompleted = "Completed"
	BucketPending   = "Pending"
	BucketOverdue   = "Overdue"
)

// WeekStart returns midnight of the Sunday that starts now's week, in now's
// location.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// Statistics computes the chart bundle at instant now. Weekdays are taken
// in now's location.
func Statistics(tasks []*structs.Task, now time.Time) *structs.Statistics {
	loc := now.Location()
	weekStart := WeekStart(now)

	var weekly [7]int
	var daily [7]structs.DailyTaskStat
	completed, pending, overdue := 0, 0, 0

	for _, t := range tasks {
		if t.Completed {
			completed++
		}
		if !t.HasDueDate() {
			// undated tasks count toward the total only
			continue
		}

		due := t.DueDate.In(loc)
		wd := due.Weekday()

		if !due.Before(weekStart) && !due.After(now) {
			weekly[wd]++
		}

		if t.Completed {
			daily[wd].Completed++
		} else {
			daily[wd].Pending++
			if due.Before(now) {
				overdue++
			} else {
				pending++
			}
		}
	}

	out := &structs.Statistics{
		WeeklyHours:    make([]*structs.DayHours, 0, 7),
		DailyTaskStats: make([]*structs.DailyTaskStat, 0, 7),
		TaskBreakdown: []*structs.BreakdownItem{
			{Name: BucketCompleted, Value: completed},
			{Name: BucketPending, Value: pending},
			{Name: BucketOverdue, Value: overdue},
		},
		OverallCompletionRate: CompletionRate(completed, len(tasks)),
	}
	for i, day := range structs.Weekdays {
		out.WeeklyHours = append(out.WeeklyHours, &structs.DayHours{
			Day:   day,
			Hours: float64(weekly[i]) * HoursPerTask,
		})
		out.DailyTaskStats = append(out.DailyTaskStats, &structs.DailyTaskStat{
			Day:       day,
			Completed: daily[i].Completed,
			Pending:   daily[i].Pending,
		})
	}
	return out
}

// CompletionRate returns round(100 * completed / max(total, 1)).
func CompletionRate(completed, total int) int {
	if total < 1 {
		total = 1
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}
