package report

import (
	"sort"
	"time"

	"lawncare/entities"
)

type MonthTotal struct {
	Month string  `json:"month"` // YYYY-MM
	Total float64 `json:"total"`
}

type Summary struct {
	Total   float64                          `json:"total"`
	ByMonth []MonthTotal                     `json:"by_month"`
	ByType  map[entities.ExpenseType]float64 `json:"by_type"`
}

// Summarize totals expenses overall, per calendar month in loc (oldest month
// first) and per expense type.
func Summarize(expenses []entities.Expense, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}
	out := Summary{ByType: map[entities.ExpenseType]float64{}}
	months := map[string]float64{}
	for _, e := range expenses {
		out.Total += e.Amount
		out.ByType[e.Type] += e.Amount
		months[e.Date.In(loc).Format("2006-01")] += e.Amount
	}
	out.ByMonth = make([]MonthTotal, 0, len(months))
	for m, v := range months {
		out.ByMonth = append(out.ByMonth, MonthTotal{Month: m, Total: v})
	}
	sort.Slice(out.ByMonth, func(i, j int) bool { return out.ByMonth[i].Month < out.ByMonth[j].Month })
	return out
}
