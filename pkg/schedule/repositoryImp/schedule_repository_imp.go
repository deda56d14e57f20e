package repositoryImp

import (
	"lawncare/entities"
	"lawncare/pkg/schedule/repository"

	"gorm.io/gorm"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(ts []entities.Task) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Create(&ts).Error
}

func (r *schedRepo) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&entities.Task{}).Error
}

// List returns tasks in the order their batch was generated.
func (r *schedRepo) List() ([]entities.Task, error) {
	var out []entities.Task
	if err := r.db.Order("rowid ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) FindByID(id string) (*entities.Task, error) {
	var t entities.Task
	res := r.db.Where("id = ?", id).Limit(1).Find(&t)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &t, nil
}

func (r *schedRepo) Save(t *entities.Task) error { return r.db.Save(t).Error }
