package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/repositories"
	"repair-system/pkg/constants"
	"repair-system/pkg/types"
)

type ReportServiceInterface interface {
	GetMasterReport(ctx context.Context, filter types.ReportFilter) ([]dto.MasterReportItemDTO, error)
	GetCityReport(ctx context.Context, filter types.ReportFilter) ([]dto.CityReportItemDTO, error)
	ExportMasterReport(ctx context.Context, filter types.ReportFilter) (*excelize.File, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// aggregateMasterReport сворачивает заказы DONE по мастерам. Заказы без
// назначенного мастера в свод не попадают.
func aggregateMasterReport(orders []entities.Order) []dto.MasterReportItemDTO {
	rows := make(map[int64]*entities.MasterReportRow)

	for i := range orders {
		ord := &orders[i]
		if !ord.MasterID.Valid {
			continue
		}
		row, ok := rows[ord.MasterID.Int64]
		if !ok {
			row = &entities.MasterReportRow{
				MasterID:   ord.MasterID.Int64,
				MasterName: ord.MasterName.String,
			}
			rows[ord.MasterID.Int64] = row
		}
		row.OrderCount++
		if ord.Settlement.Valid {
			row.Revenue += ord.Settlement.Float64
		}
		if ord.Net.Valid {
			row.CleanTotal += ord.Net.Float64
		}
		if ord.Payout.Valid {
			row.Salary += ord.Payout.Float64
		}
	}

	result := make([]dto.MasterReportItemDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.MasterReportItemDTO{
			MasterID:   row.MasterID,
			MasterName: row.MasterName,
			OrderCount: row.OrderCount,
			Revenue:    row.Revenue,
			CleanTotal: row.CleanTotal,
			Salary:     row.Salary,
		}
		if row.OrderCount > 0 {
			item.AverageCheck = math.Round(row.Revenue / float64(row.OrderCount))
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].OrderCount != result[j].OrderCount {
			return result[i].OrderCount > result[j].OrderCount
		}
		return result[i].MasterID < result[j].MasterID
	})
	return result
}

// aggregateCityReport сворачивает закрытые заказы по городу самого заказа
// (не по городу мастера) и пришивает к каждой строке сальдо кассы того же города.
// Сумма payout отчитывается как "доход компании" — ровно та же величина, что идёт
// мастерам зарплатой в своде по мастерам; так считала исходная система.
func aggregateCityReport(orders []entities.Order, entries []entities.LedgerEntry) []dto.CityReportItemDTO {
	rows := make(map[string]*entities.CityReportRow)

	for i := range orders {
		ord := &orders[i]
		row, ok := rows[ord.City]
		if !ok {
			row = &entities.CityReportRow{City: ord.City}
			rows[ord.City] = row
		}
		row.OrderCount++
		if ord.Settlement.Valid {
			row.Revenue += ord.Settlement.Float64
		}
		if ord.Payout.Valid {
			row.CompanyIncome += ord.Payout.Float64
		}
	}

	type cashTotals struct {
		income  float64
		expense float64
	}
	cash := make(map[string]cashTotals)
	for i := range entries {
		e := &entries[i]
		t := cash[e.City]
		switch e.Direction {
		case constants.LedgerIncome:
			t.income += e.Amount
		case constants.LedgerExpense:
			t.expense += e.Amount
		}
		cash[e.City] = t
	}

	result := make([]dto.CityReportItemDTO, 0, len(rows))
	for city, row := range rows {
		t := cash[city]
		result = append(result, dto.CityReportItemDTO{
			City:          row.City,
			OrderCount:    row.OrderCount,
			Revenue:       row.Revenue,
			CompanyIncome: row.CompanyIncome,
			CashIncome:    t.income,
			CashExpense:   t.expense,
			CashBalance:   t.income - t.expense,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].OrderCount != result[j].OrderCount {
			return result[i].OrderCount > result[j].OrderCount
		}
		return result[i].City < result[j].City
	})
	return result
}

func (s *reportService) GetMasterReport(ctx context.Context, filter types.ReportFilter) ([]dto.MasterReportItemDTO, error) {
	orders, err := s.reportRepo.GetDoneOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregateMasterReport(orders), nil
}

func (s *reportService) GetCityReport(ctx context.Context, filter types.ReportFilter) ([]dto.CityReportItemDTO, error) {
	orders, err := s.reportRepo.GetClosedOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	entries, err := s.reportRepo.GetLedgerEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	return aggregateCityReport(orders, entries), nil
}

func (s *reportService) ExportMasterReport(ctx context.Context, filter types.ReportFilter) (*excelize.File, error) {
	items, err := s.GetMasterReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Мастера"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Мастер", "Заказов", "Выручка", "Чистыми", "Зарплата", "Средний чек"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("ошибка адресации ячейки заголовка: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("ошибка записи заголовка отчёта: %w", err)
		}
	}

	for rowIdx, item := range items {
		values := []interface{}{
			item.MasterName, item.OrderCount, item.Revenue,
			item.CleanTotal, item.Salary, item.AverageCheck,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("ошибка адресации ячейки отчёта: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("ошибка записи строки отчёта: %w", err)
			}
		}
	}

	return f, nil
}
