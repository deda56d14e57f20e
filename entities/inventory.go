package entities

type InventoryCategory string

const (
	CategoryFertilizer InventoryCategory = "Fertilizer"
	CategorySeed       InventoryCategory = "Seed"
	CategoryPesticide  InventoryCategory = "Pesticide"
	CategoryOther      InventoryCategory = "Other"
)

type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "ml"
	UnitCount      Unit = "count"
)

type InventoryItem struct {
	ID          string            `gorm:"primaryKey" json:"id"`
	Name        string            `json:"name"`
	Category    InventoryCategory `json:"category"`
	StockQty    float64           `json:"stock_qty"`
	Unit        Unit              `json:"unit"`
	CostPerUnit float64           `json:"cost_per_unit"`
	// ExpenseID is a weak link to the purchase expense; nil when untracked.
	ExpenseID *string `gorm:"index" json:"expense_id,omitempty"`
}

// TotalCost is what the linked purchase expense must always carry.
func (i InventoryItem) TotalCost() float64 { return i.StockQty * i.CostPerUnit }
