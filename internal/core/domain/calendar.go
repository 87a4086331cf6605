package domain

import (
	"time"

	"go.uber.org/zap"
)

const dayKeyLayout = "2006-01-02"

// DayKey formats t as its calendar-day bucket key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// WeekRange is an inclusive span of calendar days, Start and End both
// truncated to midnight.
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on one of the range's days, i.e. within
// [Start, End + 1 day).
func (w WeekRange) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End.AddDate(0, 0, 1))
}

// MonthGrid returns every day shown by the month view of ref's month: full
// Sunday-started weeks covering the first through the last day.
func MonthGrid(ref time.Time) []time.Time {
	first := startOfMonth(ref)
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first)
	end := startOfWeek(last).AddDate(0, 0, 6)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekRanges splits ref's month view into the week cards of the week view.
// A leading week that ends before the month starts is dropped.
func WeekRanges(ref time.Time) []WeekRange {
	first := startOfMonth(ref)
	last := first.AddDate(0, 1, -1)

	var ranges []WeekRange
	for ws := startOfWeek(first); !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		we := ws.AddDate(0, 0, 6)
		if !we.Before(first) {
			ranges = append(ranges, WeekRange{Start: ws, End: we})
		}
	}
	return ranges
}

// BucketTasksByDay groups tasks by the calendar day of their due timestamp.
// The schema requires a due date, so a zero value should be unreachable; it
// is logged and skipped rather than crashing the view.
func BucketTasksByDay(tasks []Task) map[string][]Task {
	buckets := make(map[string][]Task)
	for _, t := range tasks {
		if t.Due.IsZero() {
			zap.L().Warn("task without due date skipped from calendar", zap.Uint64("task_id", t.ID))
			continue
		}
		key := DayKey(t.Due)
		buckets[key] = append(buckets[key], t)
	}
	return buckets
}

// TasksInWeek returns the tasks whose due date falls inside week, keeping
// input order.
func TasksInWeek(tasks []Task, week WeekRange) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Due.IsZero() {
			continue
		}
		if week.Contains(t.Due) {
			out = append(out, t)
		}
	}
	return out
}

// CustomerCalendar is the assembled calendar page for one customer.
type CustomerCalendar struct {
	Customer   Customer
	Days       []time.Time
	Weeks      []WeekRange
	TasksByDay map[string][]Task
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
