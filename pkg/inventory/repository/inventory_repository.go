package repository

import "lawncare/entities"

type InventoryRepository interface {
	Create(it *entities.InventoryItem) error
	FindByID(id string) (*entities.InventoryItem, error)
	FindByExpenseID(expenseID string) (*entities.InventoryItem, error)
	Save(it *entities.InventoryItem) error
	Delete(id string) error
	// List returns the most recently added item first.
	List() ([]entities.InventoryItem, error)
}
