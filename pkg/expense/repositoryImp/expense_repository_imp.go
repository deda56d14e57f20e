package repositoryImp

import (
	"sort"

	"gorm.io/gorm"

	"lawncare/entities"
	"lawncare/pkg/expense/repository"
)

type expenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExpenseRepository { return &expenseRepo{db: db} }

func (r *expenseRepo) Create(e *entities.Expense) error { return r.db.Create(e).Error }

func (r *expenseRepo) FindByID(id string) (*entities.Expense, error) {
	var out entities.Expense
	res := r.db.Where("id = ?", id).Limit(1).Find(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

func (r *expenseRepo) Save(e *entities.Expense) error { return r.db.Save(e).Error }

func (r *expenseRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Expense{}).Error
}

func (r *expenseRepo) List() ([]entities.Expense, error) {
	var list []entities.Expense
	if err := r.db.Order("rowid DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}
