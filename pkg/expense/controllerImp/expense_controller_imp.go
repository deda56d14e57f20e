package controllerImp

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lawncare/entities"
	"lawncare/pkg/httpx"
	"lawncare/pkg/report"
	"lawncare/pkg/store/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExpenseCtrl struct {
	store service.Store
	loc   *time.Location
}

func New(store service.Store, loc *time.Location) *ExpenseCtrl {
	if loc == nil {
		loc = time.UTC
	}
	return &ExpenseCtrl{store: store, loc: loc}
}

type expenseReq struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description" validate:"required,max=200"`
	Type        string  `json:"type" validate:"required,oneof=inventory labor other"`
}

// updateReq has no type: an expense keeps the type it was recorded with.
type updateReq struct {
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description" validate:"required,max=200"`
	// Date is YYYY-MM-DD or RFC3339; empty keeps the stored date.
	Date string `json:"date"`
}

type laborReq struct {
	Person  string `json:"person" validate:"required,oneof=father mother child"`
	Minutes int    `json:"minutes" validate:"gt=0"`
}

func (h *ExpenseCtrl) List(c echo.Context) error {
	out, err := h.store.Expenses()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	var req expenseReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	id, err := h.store.AddExpense(service.NewExpense{
		Amount:      req.Amount,
		Description: req.Description,
		Type:        entities.ExpenseType(req.Type),
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.Created(c, id)
}

// CreateLabor books a manual labor entry priced at the person's wage.
func (h *ExpenseCtrl) CreateLabor(c echo.Context) error {
	var req laborReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	id, err := h.store.AddLaborExpense(entities.Person(req.Person), req.Minutes)
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.Created(c, id)
}

// Update answers 409 for an inventory purchase, like Delete.
func (h *ExpenseCtrl) Update(c echo.Context) error {
	var req updateReq
	if ok, err := httpx.BindValid(c, &req); !ok {
		return err
	}
	var date time.Time
	if req.Date != "" {
		d, err := h.parseDate(req.Date)
		if err != nil {
			return httpx.BadRequest(c, "date must be YYYY-MM-DD or RFC3339")
		}
		date = d
	}
	err := h.store.UpdateExpense(entities.Expense{
		ID:          c.Param("id"),
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return httpx.OK(c)
}

func (h *ExpenseCtrl) parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, h.loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Delete answers 409 for an inventory purchase; the item owns it.
func (h *ExpenseCtrl) Delete(c echo.Context) error {
	if err := h.store.DeleteExpense(c.Param("id")); err != nil {
		return httpx.StoreError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ExpenseCtrl) Summary(c echo.Context) error {
	all, err := h.store.Expenses()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	return c.JSON(http.StatusOK, report.Summarize(all, h.loc))
}

func (h *ExpenseCtrl) Export(c echo.Context) error {
	all, err := h.store.Expenses()
	if err != nil {
		return httpx.StoreError(c, err)
	}
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, all, h.loc); err != nil {
		return httpx.StoreError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
