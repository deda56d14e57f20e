package repositoryImp

import (
	"lawncare/entities"
	"lawncare/pkg/profile/repository"

	"gorm.io/gorm"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) GetProfile() (*entities.LawnProfile, error) {
	var p entities.LawnProfile
	res := r.db.Where("id = ?", entities.ProfileID).Limit(1).Find(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *profileRepo) SaveProfile(p *entities.LawnProfile) error {
	p.ID = entities.ProfileID
	return r.db.Save(p).Error
}

func (r *profileRepo) ListFertilizers() ([]entities.Fertilizer, error) {
	var out []entities.Fertilizer
	if err := r.db.Order("rowid ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) FindFertilizer(id string) (*entities.Fertilizer, error) {
	return r.firstFertilizer(r.db.Where("id = ?", id))
}

func (r *profileRepo) ActiveFertilizer() (*entities.Fertilizer, error) {
	return r.firstFertilizer(r.db.Where("active = ?", true).Order("rowid ASC"))
}

func (r *profileRepo) firstFertilizer(q *gorm.DB) (*entities.Fertilizer, error) {
	var f entities.Fertilizer
	res := q.Limit(1).Find(&f)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &f, nil
}

func (r *profileRepo) SaveFertilizer(f *entities.Fertilizer) error { return r.db.Save(f).Error }

func (r *profileRepo) GetWages() (*entities.Wages, error) {
	var w entities.Wages
	res := r.db.Where("id = ?", entities.WagesID).Limit(1).Find(&w)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &w, nil
}

func (r *profileRepo) SaveWages(w *entities.Wages) error {
	w.ID = entities.WagesID
	return r.db.Save(w).Error
}
