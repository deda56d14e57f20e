package repository

import "lawncare/entities"

type ExpenseRepository interface {
	Create(e *entities.Expense) error
	FindByID(id string) (*entities.Expense, error)
	Save(e *entities.Expense) error
	Delete(id string) error
	// List is sorted by date, newest first; ties keep the most recently added first.
	List() ([]entities.Expense, error)
}
