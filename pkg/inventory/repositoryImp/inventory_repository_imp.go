package repositoryImp

import (
	"gorm.io/gorm"

	"lawncare/entities"
	"lawncare/pkg/inventory/repository"
)

type inventoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(it *entities.InventoryItem) error { return r.db.Create(it).Error }

func (r *inventoryRepo) FindByID(id string) (*entities.InventoryItem, error) {
	return r.first(r.db.Where("id = ?", id))
}

func (r *inventoryRepo) FindByExpenseID(expenseID string) (*entities.InventoryItem, error) {
	return r.first(r.db.Where("expense_id = ?", expenseID))
}

func (r *inventoryRepo) first(q *gorm.DB) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	res := q.Limit(1).Find(&it)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &it, nil
}

func (r *inventoryRepo) Save(it *entities.InventoryItem) error { return r.db.Save(it).Error }

func (r *inventoryRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepo) List() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Order("rowid DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
