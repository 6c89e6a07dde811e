package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"repair-system/internal/entities"
)

func TestRecalculateFinance(t *testing.T) {
	testCases := []struct {
		name       string
		settlement null.Float64
		expense    null.Float64
		wantNet    null.Float64
		wantPayout null.Float64
	}{
		{
			name:       "оба поля заполнены",
			settlement: null.Float64From(1000),
			expense:    null.Float64From(200),
			wantNet:    null.Float64From(800),
			wantPayout: null.Float64From(400),
		},
		{
			name:       "только расчёт",
			settlement: null.Float64From(500),
			wantNet:    null.Float64From(500),
			wantPayout: null.Float64From(250),
		},
		{
			name:       "только расход даёт отрицательные производные",
			expense:    null.Float64From(300),
			wantNet:    null.Float64From(-300),
			wantPayout: null.Float64From(-150),
		},
		{
			name: "оба пустые — производные очищаются",
		},
		{
			name:       "нулевой расчёт — это значение, а не пусто",
			settlement: null.Float64From(0),
			expense:    null.Float64From(50),
			wantNet:    null.Float64From(-50),
			wantPayout: null.Float64From(-25),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ord := &entities.Order{
				Settlement: tc.settlement,
				Expense:    tc.expense,
				// Устаревшие производные должны быть перезаписаны в любом случае.
				Net:    null.Float64From(9999),
				Payout: null.Float64From(9999),
			}

			RecalculateFinance(ord)

			assert.Equal(t, tc.wantNet, ord.Net, "net посчитан неверно")
			assert.Equal(t, tc.wantPayout, ord.Payout, "payout посчитан неверно")
		})
	}
}
