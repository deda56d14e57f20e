package serviceImp

import (
	"fmt"
	"log/slog"

	"lawncare/entities"
	"lawncare/pkg/metrics"
	"lawncare/pkg/store/service"
)

func (s *store) Inventory() ([]entities.InventoryItem, error) {
	out, err := s.read().inventory.List()
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return out, nil
}

// AddInventoryItem books the purchase expense and the item together; neither
// exists without the other.
func (s *store) AddInventoryItem(in service.NewInventoryItem) (string, error) {
	exp := entities.Expense{
		ID:          s.newID(),
		Date:        s.clock(),
		Amount:      in.StockQty * in.CostPerUnit,
		Description: in.Name,
		Type:        entities.ExpenseInventory,
	}
	item := entities.InventoryItem{
		ID:          s.newID(),
		Name:        in.Name,
		Category:    in.Category,
		StockQty:    in.StockQty,
		Unit:        in.Unit,
		CostPerUnit: in.CostPerUnit,
		ExpenseID:   &exp.ID,
	}
	err := s.tx(func(r repos) error {
		if err := r.expense.Create(&exp); err != nil {
			return err
		}
		return r.inventory.Create(&item)
	})
	if err != nil {
		return "", fmt.Errorf("add inventory item: %w", err)
	}
	metrics.ExpensesCreated.WithLabelValues(string(exp.Type)).Inc()
	return item.ID, nil
}

// UpdateInventoryItem replaces the item and keeps its purchase expense in
// step. The link itself is owned by the store: the stored ExpenseID wins
// over whatever the payload carries.
func (s *store) UpdateInventoryItem(it entities.InventoryItem) error {
	synced := false
	err := s.tx(func(r repos) error {
		cur, err := r.inventory.FindByID(it.ID)
		if err != nil || cur == nil {
			return err
		}
		// Resolve the linked expense before anything is written so the
		// comparison runs against its pre-update state.
		var linked *entities.Expense
		if cur.ExpenseID != nil {
			if linked, err = r.expense.FindByID(*cur.ExpenseID); err != nil {
				return err
			}
		}

		it.ExpenseID = cur.ExpenseID
		if err := r.inventory.Save(&it); err != nil {
			return err
		}

		if linked == nil {
			return nil
		}
		total := it.TotalCost()
		if linked.Amount == total && linked.Description == it.Name {
			return nil
		}
		linked.Amount = total
		linked.Description = it.Name
		synced = true
		return r.expense.Save(linked)
	})
	if err != nil {
		return fmt.Errorf("update inventory item %s: %w", it.ID, err)
	}
	if synced {
		metrics.InventoryCascades.WithLabelValues("update").Inc()
		slog.Debug("inventory expense synced", "item_id", it.ID, "expense_id", *it.ExpenseID)
	}
	return nil
}

// DeleteInventoryItem removes the item and its purchase expense.
func (s *store) DeleteInventoryItem(id string) error {
	cascaded := false
	err := s.tx(func(r repos) error {
		cur, err := r.inventory.FindByID(id)
		if err != nil || cur == nil {
			return err
		}
		if cur.ExpenseID != nil {
			if err := r.expense.Delete(*cur.ExpenseID); err != nil {
				return err
			}
			cascaded = true
		}
		return r.inventory.Delete(id)
	})
	if err != nil {
		return fmt.Errorf("delete inventory item %s: %w", id, err)
	}
	if cascaded {
		metrics.InventoryCascades.WithLabelValues("delete").Inc()
	}
	return nil
}
