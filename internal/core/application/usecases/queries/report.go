// Package queries contains read-only operations that project the current
// state of orders, stock, and drivers into response models. Queries bypass
// the domain aggregates and read the database directly, per the CQRS split.
package queries

import "time"

// PercentChange returns the month-over-month change from previous to
// current, in percent. With no previous activity there is nothing to divide
// by: any current activity counts as +100, none as 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// MonthWindow is a half-open calendar month interval [Start, End).
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the window.
func (w MonthWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// MonthWindows returns the calendar month containing now and the month
// before it, in now's location. Month-over-month metrics compare these two
// windows.
func MonthWindows(now time.Time) (current, previous MonthWindow) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	current = MonthWindow{Start: start, End: start.AddDate(0, 1, 0)}
	previous = MonthWindow{Start: start.AddDate(0, -1, 0), End: start}
	return current, previous
}
