package care

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lawncare/entities"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 8, 0, 0, 0, time.UTC) }

func TestTasksBetween(t *testing.T) {
	tasks := []entities.Task{
		{ID: "a", Date: day(2026, 4, 30)},
		{ID: "b", Date: day(2026, 5, 2)},
		{ID: "c", Date: day(2026, 5, 9)},
	}

	got := TasksBetween(tasks, day(2026, 5, 1), day(2026, 5, 9))
	assert.Equal(t, []string{"b", "c"}, ids(got))

	got = TasksBetween(tasks, time.Time{}, day(2026, 5, 1))
	assert.Equal(t, []string{"a"}, ids(got))

	assert.Len(t, TasksBetween(tasks, time.Time{}, time.Time{}), 3)
}

func TestTasksInMonth(t *testing.T) {
	tasks := []entities.Task{
		{ID: "a", Date: day(2026, 4, 30)},
		{ID: "b", Date: day(2026, 5, 1)},
		{ID: "c", Date: day(2025, 5, 1)},
	}
	assert.Equal(t, []string{"b"}, ids(TasksInMonth(tasks, 2026, time.May, nil)))
}

func TestUpcoming(t *testing.T) {
	tasks := []entities.Task{
		{ID: "late", Date: day(2026, 5, 9)},
		{ID: "early", Date: day(2026, 5, 1)},
		{ID: "mid", Date: day(2026, 5, 3)},
	}
	assert.Equal(t, []string{"early", "mid", "late"}, ids(Upcoming(tasks)))
	assert.Equal(t, "late", tasks[0].ID, "input must stay untouched")
}

func ids(tasks []entities.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
