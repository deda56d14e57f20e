package entities

// All lists every persisted model for AutoMigrate.
func All() []any {
	return []any{
		&LawnProfile{},
		&Fertilizer{},
		&Wages{},
		&InventoryItem{},
		&Task{},
		&Expense{},
		&MediaLog{},
	}
}
