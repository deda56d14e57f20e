package repositoryImp

import (
	"lawncare/entities"
	"lawncare/pkg/media/repository"

	"gorm.io/gorm"
)

type mediaRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MediaRepository { return &mediaRepo{db} }

func (r *mediaRepo) Create(m *entities.MediaLog) error { return r.db.Create(m).Error }

func (r *mediaRepo) FindByID(id string) (*entities.MediaLog, error) {
	var m entities.MediaLog
	res := r.db.Where("id = ?", id).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *mediaRepo) Save(m *entities.MediaLog) error { return r.db.Save(m).Error }

func (r *mediaRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.MediaLog{}).Error
}

// List returns the newest entry first.
func (r *mediaRepo) List() ([]entities.MediaLog, error) {
	var out []entities.MediaLog
	if err := r.db.Order("rowid DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
