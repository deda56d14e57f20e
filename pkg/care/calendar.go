package care

import (
	"sort"
	"time"

	"lawncare/entities"
)

// TasksBetween keeps tasks dated within [from, to]. A zero bound is open.
func TasksBetween(tasks []entities.Task, from, to time.Time) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TasksInMonth keeps tasks whose date falls in the given month of loc.
func TasksInMonth(tasks []entities.Task, year int, month time.Month, loc *time.Location) []entities.Task {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		d := t.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns a copy of tasks sorted by date, earliest first.
func Upcoming(tasks []entities.Task) []entities.Task {
	out := append([]entities.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
