package entities

import (
	"time"

	"gorm.io/gorm"
)

type TaskType string

const (
	TaskMowing      TaskType = "Mowing"
	TaskWatering    TaskType = "Watering"
	TaskFertilizing TaskType = "Fertilizing"
	TaskAeration    TaskType = "Aeration"
	TaskTopdressing TaskType = "Topdressing"
)

type Task struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Type      TaskType  `json:"type"`
	Date      time.Time `gorm:"index" json:"date"`
	Duration  int       `json:"duration"` // minutes
	Completed bool      `json:"completed"`
}

func (t *Task) AfterFind(tx *gorm.DB) error {
	t.Date = t.Date.UTC()
	return nil
}
