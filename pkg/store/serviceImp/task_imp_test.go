package serviceImp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/entities"
	"lawncare/pkg/care"
)

func taskByType(t *testing.T, tasks []entities.Task, typ entities.TaskType) entities.Task {
	t.Helper()
	for _, task := range tasks {
		if task.Type == typ {
			return task
		}
	}
	t.Fatalf("no %s task", typ)
	return entities.Task{}
}

func TestSeededTasks(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))

	tasks, err := s.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, entities.TaskMowing, tasks[0].Type)
	assert.Equal(t, entities.TaskWatering, tasks[1].Type)
	assert.Equal(t, entities.TaskFertilizing, tasks[2].Type)
	assert.True(t, clock.Now().AddDate(0, 0, 2).Equal(tasks[1].Date))
}

func TestToggleTaskCompletion_BooksLaborOnce(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))
	tasks, err := s.Tasks()
	require.NoError(t, err)
	mowing := taskByType(t, tasks, entities.TaskMowing)
	require.Equal(t, 30, mowing.Duration)

	require.NoError(t, s.ToggleTaskCompletion(mowing.ID))

	expenses, err := s.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 750.0, expenses[0].Amount)
	assert.Equal(t, entities.ExpenseLabor, expenses[0].Type)
	assert.Equal(t, "Labor: Mowing (30 min)", expenses[0].Description)

	tasks, err = s.Tasks()
	require.NoError(t, err)
	assert.True(t, taskByType(t, tasks, entities.TaskMowing).Completed)

	// Un-completing deliberately keeps the labor expense.
	require.NoError(t, s.ToggleTaskCompletion(mowing.ID))
	expenses, err = s.Expenses()
	require.NoError(t, err)
	assert.Len(t, expenses, 1)

	tasks, err = s.Tasks()
	require.NoError(t, err)
	assert.False(t, taskByType(t, tasks, entities.TaskMowing).Completed)

	// Completing again books the work again.
	require.NoError(t, s.ToggleTaskCompletion(mowing.ID))
	expenses, err = s.Expenses()
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}

func TestToggleTaskCompletion_UsesFatherWage(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))
	require.NoError(t, s.UpdateWages(entities.Wages{Father: 1000, Mother: 9999, Child: 9999}))

	tasks, err := s.Tasks()
	require.NoError(t, err)
	watering := taskByType(t, tasks, entities.TaskWatering)
	require.NoError(t, s.ToggleTaskCompletion(watering.ID))

	expenses, err := s.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, care.LaborCost(15, 1000), expenses[0].Amount)
}

func TestToggleTaskCompletion_ZeroWageBooksNothing(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))
	require.NoError(t, s.UpdateWages(entities.Wages{}))

	tasks, err := s.Tasks()
	require.NoError(t, err)
	require.NoError(t, s.ToggleTaskCompletion(tasks[0].ID))

	expenses, err := s.Expenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
	tasks, err = s.Tasks()
	require.NoError(t, err)
	assert.True(t, tasks[0].Completed)
}

func TestToggleTaskCompletion_UnknownIDIsNoop(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	require.NoError(t, s.ToggleTaskCompletion("missing"))
	expenses, err := s.Expenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestGetTaskDetails(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	d, err := s.GetTaskDetails(entities.Task{Type: entities.TaskWatering})
	require.NoError(t, err)
	assert.Equal(t, 33.0, d.Amount)
	assert.Equal(t, "about 500L of water", d.Description)

	d, err = s.GetTaskDetails(entities.Task{Type: entities.TaskFertilizing})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, d.Amount)
	assert.Equal(t, "using Lawn Food", d.Description)

	d, err = s.GetTaskDetails(entities.Task{Type: entities.TaskAeration})
	require.NoError(t, err)
	assert.Equal(t, care.TaskDetails{}, d)
}

func TestGetTaskDetails_NoFertilizer(t *testing.T) {
	s, _ := newStore(t, baseSeed(false))

	d, err := s.GetTaskDetails(entities.Task{Type: entities.TaskFertilizing})
	require.NoError(t, err)
	assert.False(t, d.Available)
	assert.Equal(t, "no fertilizer configured", d.Description)
}

func TestRegenerateTasks(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))
	old, err := s.Tasks()
	require.NoError(t, err)
	require.NoError(t, s.ToggleTaskCompletion(old[0].ID))

	clock.Advance(72 * time.Hour)
	batch, err := s.RegenerateTasks()
	require.NoError(t, err)
	require.Len(t, batch, 3)

	tasks, err := s.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, batch[i].ID, task.ID)
		assert.NotEqual(t, old[i].ID, task.ID)
		assert.False(t, task.Completed)
	}
	assert.True(t, clock.Now().Equal(tasks[0].Date))
}

func TestTaskQueries(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))
	now := clock.Now()

	got, err := s.TasksBetween(now.AddDate(0, 0, 1), now.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entities.TaskWatering, got[0].Type)

	batch := []entities.Task{
		{ID: "late", Type: entities.TaskAeration, Date: now.AddDate(0, 0, 9), Duration: 60},
		{ID: "early", Type: entities.TaskTopdressing, Date: now.AddDate(0, 0, 1), Duration: 45},
	}
	require.NoError(t, s.ReplaceTasks(batch))
	up, err := s.UpcomingTasks()
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, "early", up[0].ID)
	assert.Equal(t, "late", up[1].ID)
}
