package services

import (
	"github.com/aarondl/null/v8"

	"repair-system/internal/entities"
)

// RecalculateFinance держит производные поля согласованными с исходными:
// net = settlement - expense (незаполненное в формуле считается нулём),
// payout = net / 2 — доля мастера. Поля пересчитываются только парой и только
// сервером; значения из запроса сюда не попадают.
func RecalculateFinance(ord *entities.Order) {
	if !ord.Settlement.Valid && !ord.Expense.Valid {
		ord.Net = null.Float64{}
		ord.Payout = null.Float64{}
		return
	}

	var settlement, expense float64
	if ord.Settlement.Valid {
		settlement = ord.Settlement.Float64
	}
	if ord.Expense.Valid {
		expense = ord.Expense.Float64
	}

	net := settlement - expense
	ord.Net = null.Float64From(net)
	ord.Payout = null.Float64From(net / 2)
}
