package service

import (
	"errors"
	"time"

	"lawncare/entities"
	"lawncare/pkg/care"
)

var (
	// ErrExpenseLinked is returned when deleting an expense that an inventory
	// item still points at; delete the item instead.
	ErrExpenseLinked = errors.New("expense belongs to an inventory item")
	// ErrInvalidLabor is returned when a manual labor entry costs nothing.
	ErrInvalidLabor = errors.New("labor cost must be positive")
)

// Store is the lawn care domain store. Update, delete and toggle calls on an
// unknown id are silent no-ops that return nil.
type Store interface {
	Profile() (entities.LawnProfile, error)
	UpdateProfile(p ProfilePatch) (entities.LawnProfile, error)
	// ApplyProfile merges p and installs the task batch derived from the
	// result in the same transaction.
	ApplyProfile(p ProfilePatch) (entities.LawnProfile, []entities.Task, error)

	Fertilizers() ([]entities.Fertilizer, error)
	ActiveFertilizer() (*entities.Fertilizer, error)
	UpdateFertilizer(f entities.Fertilizer) error

	Wages() (entities.Wages, error)
	UpdateWages(w entities.Wages) error

	Tasks() ([]entities.Task, error)
	TasksBetween(from, to time.Time) ([]entities.Task, error)
	UpcomingTasks() ([]entities.Task, error)
	ReplaceTasks(batch []entities.Task) error
	RegenerateTasks() ([]entities.Task, error)
	GetTaskDetails(t entities.Task) (care.TaskDetails, error)
	ToggleTaskCompletion(taskID string) error

	MediaLogs() ([]entities.MediaLog, error)
	MediaLogsByTag(tag string) ([]entities.MediaLog, error)
	AddMediaLog(in NewMediaLog) (string, error)
	UpdateMediaLog(l entities.MediaLog) error
	DeleteMediaLog(id string) error
	ToggleMediaLogLike(id string) error

	Inventory() ([]entities.InventoryItem, error)
	AddInventoryItem(in NewInventoryItem) (string, error)
	UpdateInventoryItem(it entities.InventoryItem) error
	DeleteInventoryItem(id string) error

	Expenses() ([]entities.Expense, error)
	AddExpense(in NewExpense) (string, error)
	AddLaborExpense(person entities.Person, minutes int) (string, error)
	UpdateExpense(e entities.Expense) error
	DeleteExpense(id string) error
}

// ProfilePatch merges non-nil fields into the profile.
type ProfilePatch struct {
	Area           *float64            `json:"area"`
	GrassType      *entities.GrassType `json:"grass_type"`
	TargetHeight   *float64            `json:"target_height"`
	MowerType      *entities.MowerType `json:"mower_type"`
	IrrigationRate *float64            `json:"irrigation_rate"`
}

func (p ProfilePatch) Apply(cur *entities.LawnProfile) {
	if p.Area != nil {
		cur.Area = *p.Area
	}
	if p.GrassType != nil {
		cur.GrassType = *p.GrassType
	}
	if p.TargetHeight != nil {
		cur.TargetHeight = *p.TargetHeight
	}
	if p.MowerType != nil {
		cur.MowerType = *p.MowerType
	}
	if p.IrrigationRate != nil {
		cur.IrrigationRate = *p.IrrigationRate
	}
}

type NewMediaLog struct {
	MediaURL  string
	MediaType entities.MediaType
	Note      string
	Tags      []string
}

type NewInventoryItem struct {
	Name        string
	Category    entities.InventoryCategory
	StockQty    float64
	Unit        entities.Unit
	CostPerUnit float64
}

type NewExpense struct {
	Amount      float64
	Description string
	Type        entities.ExpenseType
}
