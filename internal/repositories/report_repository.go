package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-system/internal/entities"
	"repair-system/pkg/constants"
	"repair-system/pkg/types"
)

// Отчёты читают сырые строки; сама агрегация выполняется сервисом в памяти.
type ReportRepositoryInterface interface {
	// GetDoneOrders — заказы DONE для свода по мастерам. Непустой City ограничивает
	// выборку мастерами, работающими в этом городе; Cities — область доступа из токена.
	GetDoneOrders(ctx context.Context, filter types.ReportFilter) ([]entities.Order, error)
	// GetClosedOrders — заказы DONE с проставленным closed_at в окне [From, To)
	// для свода по городам.
	GetClosedOrders(ctx context.Context, filter types.ReportFilter) ([]entities.Order, error)
	GetLedgerEntries(ctx context.Context, filter types.ReportFilter) ([]entities.LedgerEntry, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

func (r *reportRepository) queryOrders(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса отчёта: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса отчёта: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		ord, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки отчёта: %w", err)
		}
		orders = append(orders, *ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *reportRepository) GetDoneOrders(ctx context.Context, filter types.ReportFilter) ([]entities.Order, error) {
	builder := orderSelect().Where(sq.Eq{"o.status": constants.StatusDone})
	if filter.City != "" {
		builder = builder.Where(sq.Expr("? = ANY(m.cities)", filter.City))
	}
	if len(filter.Cities) > 0 {
		builder = builder.Where(sq.Eq{"o.city": filter.Cities})
	}
	return r.queryOrders(ctx, builder)
}

func (r *reportRepository) GetClosedOrders(ctx context.Context, filter types.ReportFilter) ([]entities.Order, error) {
	builder := orderSelect().
		Where(sq.Eq{"o.status": constants.StatusDone}).
		Where(sq.NotEq{"o.closed_at": nil})

	if filter.City != "" {
		builder = builder.Where(sq.Eq{"o.city": filter.City})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"o.closed_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"o.closed_at": *filter.To})
	}
	if len(filter.Cities) > 0 {
		builder = builder.Where(sq.Eq{"o.city": filter.Cities})
	}
	return r.queryOrders(ctx, builder)
}

func (r *reportRepository) GetLedgerEntries(ctx context.Context, filter types.ReportFilter) ([]entities.LedgerEntry, error) {
	ledgerRepo := &LedgerRepository{storage: r.db}
	return ledgerRepo.GetEntries(ctx, types.LedgerFilter{
		City:   filter.City,
		From:   filter.From,
		To:     filter.To,
		Cities: filter.Cities,
	})
}
