package structs

import "time"

// Weekdays are the chart labels, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type Dashboard struct {
	TotalTasks     int             `json:"totalTasks"`
	CompletedTasks int             `json:"completedTasks"`
	UpcomingTasks  []*UpcomingTask `json:"upcomingTasks"`
	WeeklyGoals    []*WeeklyGoal   `json:"weeklyGoals"`
}

type UpcomingTask struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Due   time.Time `json:"due"`
}

type WeeklyGoal struct {
	ID   int    `json:"id"`
	Goal string `json:"goal"`
	Done bool   `json:"done"`
}

type Statistics struct {
	WeeklyHours           []*DayHours      `json:"weeklyHours"`
	TaskBreakdown         []*BreakdownItem `json:"taskBreakdown"`
	DailyTaskStats        []*DailyTaskStat `json:"dailyTaskStats"`
	OverallCompletionRate int              `json:"overallCompletionRate"`
}

type DayHours struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

type BreakdownItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DailyTaskStat struct {
	Day       string `json:"day"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}
