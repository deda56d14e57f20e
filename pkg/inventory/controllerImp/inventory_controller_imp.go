package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lawncare/entities"
	"lawncare/pkg/httpx"
	"lawncare/pkg/store/service"
)

type InventoryCtrl struct{ store service.Store }

func New(store service.Store) *InventoryCtrl { return &InventoryCtrl{store} }

// itemReq accepts either the unit cost or the total paid for the stock.
type itemReq struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Category    string   `json:"category" validate:"required,oneof=Fertilizer Seed Pesticide Other"`
	StockQty    float64  `json:"stock_qty" validate:"gt=0"`
	Unit        string   `json:"unit" validate:"required,oneof=kg g L ml count"`
	CostPerUnit *float64 `json:"cost_per_unit" validate:"required_without=TotalCost,omitempty,gte=0"`
	TotalCost   *float64 `json:"total_cost" validate:"omitempty,gte=0"`
}

func (r itemReq) unitCost() float64 {
	if r.CostPerUnit != nil {
		return *r.CostPerUnit
	}
	return *r.TotalCost / r.StockQty
}

func (h *InventoryCtrl) List(c echo.Context) error {
	out, err := h.store.Inventory()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Create stores the item and its purchase expense.
func (h *InventoryCtrl) Create(c echo.Context) error {
	var req itemReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	id, err := h.store.AddInventoryItem(service.NewInventoryItem{
		Name:        req.Name,
		Category:    entities.InventoryCategory(req.Category),
		StockQty:    req.StockQty,
		Unit:        entities.Unit(req.Unit),
		CostPerUnit: req.unitCost(),
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.Created(c, id)
}

func (h *InventoryCtrl) Update(c echo.Context) error {
	var req itemReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	err := h.store.UpdateInventoryItem(entities.InventoryItem{
		ID:          c.Param("id"),
		Name:        req.Name,
		Category:    entities.InventoryCategory(req.Category),
		StockQty:    req.StockQty,
		Unit:        entities.Unit(req.Unit),
		CostPerUnit: req.unitCost(),
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
	if err := h.store.DeleteInventoryItem(c.Param("id")); err != nil {
		return httpx.StoreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
