package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-system/internal/entities"
	"repair-system/pkg/types"
)

type LedgerRepositoryInterface interface {
	CreateEntry(ctx context.Context, entry *entities.LedgerEntry) (int64, error)
	GetEntries(ctx context.Context, filter types.LedgerFilter) ([]entities.LedgerEntry, error)
}

type LedgerRepository struct {
	storage *pgxpool.Pool
}

func NewLedgerRepository(storage *pgxpool.Pool) LedgerRepositoryInterface {
	return &LedgerRepository{storage: storage}
}

func (r *LedgerRepository) CreateEntry(ctx context.Context, entry *entities.LedgerEntry) (int64, error) {
	query := `
		INSERT INTO ledger_entries (direction, amount, city, memo, created_by, payment_purpose, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`

	var newID int64
	err := r.storage.QueryRow(ctx, query,
		entry.Direction, entry.Amount, entry.City, entry.Memo, entry.CreatedBy, entry.PaymentPurpose,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка записи движения по кассе: %w", err)
	}
	return newID, nil
}

func (r *LedgerRepository) GetEntries(ctx context.Context, filter types.LedgerFilter) ([]entities.LedgerEntry, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "direction", "amount", "city", "memo", "created_by", "payment_purpose", "created_at").
		From("ledger_entries")

	if filter.City != "" {
		builder = builder.Where(sq.Eq{"city": filter.City})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"created_at": *filter.To})
	}
	if len(filter.Cities) > 0 {
		builder = builder.Where(sq.Eq{"city": filter.Cities})
	}

	query, args, err := builder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса по кассе: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей кассы: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.LedgerEntry, 0)
	for rows.Next() {
		var e entities.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Direction, &e.Amount, &e.City, &e.Memo, &e.CreatedBy, &e.PaymentPurpose, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи кассы: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
