package serviceImp

import (
	"fmt"

	"lawncare/entities"
	"lawncare/pkg/care"
	"lawncare/pkg/metrics"
	"lawncare/pkg/store/service"
)

func (s *store) Expenses() ([]entities.Expense, error) {
	out, err := s.read().expense.List()
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

// AddExpense records an expense dated now and returns its id.
func (s *store) AddExpense(in service.NewExpense) (string, error) {
	e := entities.Expense{
		ID:          s.newID(),
		Date:        s.clock(),
		Amount:      in.Amount,
		Description: in.Description,
		Type:        in.Type,
	}
	if err := s.read().expense.Create(&e); err != nil {
		return "", fmt.Errorf("add expense: %w", err)
	}
	metrics.ExpensesCreated.WithLabelValues(string(e.Type)).Inc()
	return e.ID, nil
}

// AddLaborExpense books minutes of work by person at their hourly wage.
func (s *store) AddLaborExpense(person entities.Person, minutes int) (string, error) {
	w, err := s.Wages()
	if err != nil {
		return "", err
	}
	rate, ok := w.Rate(person)
	if !ok {
		return "", fmt.Errorf("unknown person %q: %w", person, service.ErrInvalidLabor)
	}
	cost := care.WageCost(rate, minutes)
	if cost <= 0 {
		return "", service.ErrInvalidLabor
	}
	return s.AddExpense(service.NewExpense{
		Amount:      cost,
		Description: care.PersonLaborDescription(person, minutes),
		Type:        entities.ExpenseLabor,
	})
}

// UpdateExpense replaces amount, description and date; a zero Date keeps the
// stored one and the type never changes. Purchase expenses are owned by their
// inventory item and are refused with service.ErrExpenseLinked.
func (s *store) UpdateExpense(e entities.Expense) error {
	err := s.tx(func(r repos) error {
		cur, err := r.expense.FindByID(e.ID)
		if err != nil || cur == nil {
			return err
		}
		owner, err := r.inventory.FindByExpenseID(e.ID)
		if err != nil {
			return err
		}
		if owner != nil {
			return service.ErrExpenseLinked
		}
		e.Type = cur.Type
		if e.Date.IsZero() {
			e.Date = cur.Date
		}
		e.Date = e.Date.UTC()
		return r.expense.Save(&e)
	})
	if err != nil {
		return fmt.Errorf("update expense %s: %w", e.ID, err)
	}
	return nil
}

// DeleteExpense removes a user-entered expense. Purchase expenses still
// linked to an inventory item are refused with service.ErrExpenseLinked.
func (s *store) DeleteExpense(id string) error {
	err := s.tx(func(r repos) error {
		owner, err := r.inventory.FindByExpenseID(id)
		if err != nil {
			return err
		}
		if owner != nil {
			return service.ErrExpenseLinked
		}
		return r.expense.Delete(id)
	})
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	return nil
}
