package serviceImp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/entities"
	"lawncare/pkg/store/service"
)

func expenseIDs(t *testing.T, s service.Store) []string {
	t.Helper()
	all, err := s.Expenses()
	require.NoError(t, err)
	out := make([]string, 0, len(all))
	for _, e := range all {
		out = append(out, e.ID)
	}
	return out
}

func assertSortedByDateDesc(t *testing.T, s service.Store) {
	t.Helper()
	all, err := s.Expenses()
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.After(all[i-1].Date), "expense %s is newer than %s", all[i].ID, all[i-1].ID)
	}
}

func TestAddExpense_ReturnsIDAndStampsNow(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))

	id, err := s.AddExpense(service.NewExpense{Amount: 1200, Description: "Edging tool", Type: entities.ExpenseOther})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	e := findExpense(t, s, id)
	require.NotNil(t, e)
	assert.Equal(t, 1200.0, e.Amount)
	assert.Equal(t, "Edging tool", e.Description)
	assert.Equal(t, entities.ExpenseOther, e.Type)
	assert.True(t, clock.Now().Equal(e.Date))
}

func TestExpenses_SortedDescendingAfterAddAndUpdate(t *testing.T) {
	s, clock := newStore(t, baseSeed(true))

	a, err := s.AddExpense(service.NewExpense{Amount: 1, Description: "a", Type: entities.ExpenseOther})
	require.NoError(t, err)
	clock.Advance(time.Hour)
	b, err := s.AddExpense(service.NewExpense{Amount: 2, Description: "b", Type: entities.ExpenseOther})
	require.NoError(t, err)
	clock.Advance(time.Hour)
	c, err := s.AddExpense(service.NewExpense{Amount: 3, Description: "c", Type: entities.ExpenseOther})
	require.NoError(t, err)

	assert.Equal(t, []string{c, b, a}, expenseIDs(t, s))
	assertSortedByDateDesc(t, s)

	old := findExpense(t, s, a)
	old.Date = clock.Now().Add(48 * time.Hour)
	require.NoError(t, s.UpdateExpense(*old))
	assert.Equal(t, []string{a, c, b}, expenseIDs(t, s))
	assertSortedByDateDesc(t, s)
}

func TestExpenses_TiesKeepNewestAddedFirst(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	first, err := s.AddExpense(service.NewExpense{Amount: 1, Description: "first", Type: entities.ExpenseOther})
	require.NoError(t, err)
	second, err := s.AddExpense(service.NewExpense{Amount: 2, Description: "second", Type: entities.ExpenseOther})
	require.NoError(t, err)

	assert.Equal(t, []string{second, first}, expenseIDs(t, s))
}

func TestUpdateExpense(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	id, err := s.AddExpense(service.NewExpense{Amount: 100, Description: "Hose", Type: entities.ExpenseOther})
	require.NoError(t, err)
	before := findExpense(t, s, id)

	require.NoError(t, s.UpdateExpense(entities.Expense{ID: id, Amount: 150, Description: "Hose, 20m", Type: entities.ExpenseOther}))
	after := findExpense(t, s, id)
	assert.Equal(t, 150.0, after.Amount)
	assert.Equal(t, "Hose, 20m", after.Description)
	assert.True(t, before.Date.Equal(after.Date), "zero date keeps the stored one")

	require.NoError(t, s.UpdateExpense(entities.Expense{ID: "missing", Amount: 1}))
	assert.Equal(t, []string{id}, expenseIDs(t, s))
}

func TestUpdateExpense_KeepsStoredType(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	id, err := s.AddExpense(service.NewExpense{Amount: 300, Description: "Mower service", Type: entities.ExpenseOther})
	require.NoError(t, err)

	require.NoError(t, s.UpdateExpense(entities.Expense{ID: id, Amount: 350, Description: "Mower service", Type: entities.ExpenseLabor}))
	got := findExpense(t, s, id)
	assert.Equal(t, 350.0, got.Amount)
	assert.Equal(t, entities.ExpenseOther, got.Type)
}

func TestUpdateExpense_RefusesInventoryLinked(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	_, err := s.AddInventoryItem(seedItem())
	require.NoError(t, err)
	items, err := s.Inventory()
	require.NoError(t, err)
	linkID := *items[0].ExpenseID
	before := findExpense(t, s, linkID)

	err = s.UpdateExpense(entities.Expense{ID: linkID, Amount: 1, Description: "renamed", Type: entities.ExpenseOther})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrExpenseLinked))

	after := findExpense(t, s, linkID)
	assert.Equal(t, items[0].TotalCost(), after.Amount)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, entities.ExpenseInventory, after.Type)
}

func TestDeleteExpense_Idempotent(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	keep, err := s.AddExpense(service.NewExpense{Amount: 10, Description: "keep", Type: entities.ExpenseOther})
	require.NoError(t, err)
	drop, err := s.AddExpense(service.NewExpense{Amount: 20, Description: "drop", Type: entities.ExpenseLabor})
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpense(drop))
	require.NoError(t, s.DeleteExpense(drop))
	assert.Equal(t, []string{keep}, expenseIDs(t, s))
}

func TestDeleteExpense_RefusesInventoryLinked(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	itemID, err := s.AddInventoryItem(seedItem())
	require.NoError(t, err)
	items, err := s.Inventory()
	require.NoError(t, err)
	linkID := *items[0].ExpenseID

	err = s.DeleteExpense(linkID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrExpenseLinked))
	assert.NotNil(t, findExpense(t, s, linkID))

	require.NoError(t, s.DeleteInventoryItem(itemID))
	assert.Nil(t, findExpense(t, s, linkID))
	require.NoError(t, s.DeleteExpense(linkID))
}

func TestAddLaborExpense(t *testing.T) {
	s, _ := newStore(t, baseSeed(true))

	id, err := s.AddLaborExpense(entities.PersonMother, 30)
	require.NoError(t, err)
	e := findExpense(t, s, id)
	require.NotNil(t, e)
	assert.Equal(t, 600.0, e.Amount)
	assert.Equal(t, entities.ExpenseLabor, e.Type)
	assert.Equal(t, "Labor: mother (30 min)", e.Description)

	_, err = s.AddLaborExpense(entities.PersonChild, 0)
	assert.ErrorIs(t, err, service.ErrInvalidLabor)

	_, err = s.AddLaborExpense(entities.Person("uncle"), 30)
	assert.ErrorIs(t, err, service.ErrInvalidLabor)

	assert.Len(t, expenseIDs(t, s), 1)
}
