package entities

import (
	"time"

	"gorm.io/gorm"
)

type ExpenseType string

const (
	ExpenseInventory ExpenseType = "inventory"
	ExpenseLabor     ExpenseType = "labor"
	ExpenseOther     ExpenseType = "other"
)

type Expense struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	Date        time.Time   `gorm:"index" json:"date"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Type        ExpenseType `gorm:"index" json:"type"`
}

// AfterFind normalises the stored date to UTC.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.UTC()
	return nil
}
