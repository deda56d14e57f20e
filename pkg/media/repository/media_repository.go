package repository

import "lawncare/entities"

type MediaRepository interface {
	Create(m *entities.MediaLog) error
	FindByID(id string) (*entities.MediaLog, error)
	Save(m *entities.MediaLog) error
	Delete(id string) error
	List() ([]entities.MediaLog, error)
}
