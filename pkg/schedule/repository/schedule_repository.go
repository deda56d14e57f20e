package repository

import "lawncare/entities"

type ScheduleRepository interface {
	BulkInsert([]entities.Task) error
	DeleteAll() error
	List() ([]entities.Task, error)
	FindByID(id string) (*entities.Task, error)
	Save(t *entities.Task) error
}
