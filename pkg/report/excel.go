package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"lawncare/entities"
)

const (
	SheetExpenses = "Expenses"
	SheetMonthly  = "Monthly"
)

// WriteWorkbook writes an xlsx with every expense and the monthly totals.
func WriteWorkbook(w io.Writer, expenses []entities.Expense, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetExpenses); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	rows := [][]any{{"Date", "Type", "Description", "Amount"}}
	for _, e := range expenses {
		rows = append(rows, []any{e.Date.In(loc).Format("2006-01-02"), string(e.Type), e.Description, e.Amount})
	}
	if err := writeRows(x, SheetExpenses, rows); err != nil {
		return err
	}

	if _, err := x.NewSheet(SheetMonthly); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	sum := Summarize(expenses, loc)
	monthly := [][]any{{"Month", "Total"}}
	for _, m := range sum.ByMonth {
		monthly = append(monthly, []any{m.Month, m.Total})
	}
	monthly = append(monthly, []any{"All", sum.Total})
	if err := writeRows(x, SheetMonthly, monthly); err != nil {
		return err
	}

	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := x.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
