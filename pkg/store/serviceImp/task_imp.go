package serviceImp

import (
	"fmt"
	"log/slog"
	"time"

	"lawncare/entities"
	"lawncare/pkg/care"
	"lawncare/pkg/metrics"
)

func (s *store) Tasks() ([]entities.Task, error) {
	out, err := s.read().schedule.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

func (s *store) TasksBetween(from, to time.Time) ([]entities.Task, error) {
	all, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	return care.TasksBetween(all, from, to), nil
}

func (s *store) UpcomingTasks() ([]entities.Task, error) {
	all, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	return care.Upcoming(all), nil
}

// ReplaceTasks swaps the whole schedule for batch.
func (s *store) ReplaceTasks(batch []entities.Task) error {
	err := s.tx(func(r repos) error {
		if err := r.schedule.DeleteAll(); err != nil {
			return err
		}
		return r.schedule.BulkInsert(batch)
	})
	if err != nil {
		return fmt.Errorf("replace tasks: %w", err)
	}
	return nil
}

// RegenerateTasks derives a fresh batch from the current profile and installs it.
func (s *store) RegenerateTasks() ([]entities.Task, error) {
	p, err := s.Profile()
	if err != nil {
		return nil, err
	}
	batch := care.DeriveTasks(p, s.clock(), s.newID)
	if err := s.ReplaceTasks(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *store) GetTaskDetails(t entities.Task) (care.TaskDetails, error) {
	r := s.read()
	p, err := r.profile.GetProfile()
	if err != nil {
		return care.TaskDetails{}, fmt.Errorf("task details: %w", err)
	}
	if p == nil {
		p = &entities.LawnProfile{}
	}
	fert, err := r.profile.ActiveFertilizer()
	if err != nil {
		return care.TaskDetails{}, fmt.Errorf("task details: %w", err)
	}
	return care.Details(t.Type, *p, fert), nil
}

// ToggleTaskCompletion flips the completed flag. Completing a task books its
// labor at the father's wage; un-completing it leaves that expense in place.
func (s *store) ToggleTaskCompletion(taskID string) error {
	var (
		completed *entities.Task
		labor     *entities.Expense
	)
	err := s.tx(func(r repos) error {
		t, err := r.schedule.FindByID(taskID)
		if err != nil || t == nil {
			return err
		}
		t.Completed = !t.Completed
		if err := r.schedule.Save(t); err != nil {
			return err
		}
		if !t.Completed {
			return nil
		}
		completed = t

		w, err := r.profile.GetWages()
		if err != nil {
			return err
		}
		if w == nil {
			return nil
		}
		cost := care.LaborCost(t.Duration, w.Father)
		if cost <= 0 {
			return nil
		}
		labor = &entities.Expense{
			ID:          s.newID(),
			Date:        s.clock(),
			Amount:      cost,
			Description: care.LaborDescription(t.Type, t.Duration),
			Type:        entities.ExpenseLabor,
		}
		return r.expense.Create(labor)
	})
	if err != nil {
		return fmt.Errorf("toggle task %s: %w", taskID, err)
	}
	if completed != nil {
		metrics.TasksCompleted.WithLabelValues(string(completed.Type)).Inc()
	}
	if labor != nil {
		metrics.ExpensesCreated.WithLabelValues(string(labor.Type)).Inc()
		slog.Debug("labor expense booked", "task_id", taskID, "expense_id", labor.ID, "amount", labor.Amount)
	}
	return nil
}
