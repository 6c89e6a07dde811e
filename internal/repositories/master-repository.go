package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repair-system/internal/entities"
	apperrors "repair-system/pkg/errors"
)

// Справочник мастеров ведётся внешней частью продукта; ядру нужна только читающая сторона.
type MasterRepositoryInterface interface {
	GetMasters(ctx context.Context, city string) ([]entities.Master, error)
	FindMaster(ctx context.Context, id int64) (*entities.Master, error)
}

type MasterRepository struct {
	storage *pgxpool.Pool
}

func NewMasterRepository(storage *pgxpool.Pool) MasterRepositoryInterface {
	return &MasterRepository{storage: storage}
}

func (r *MasterRepository) GetMasters(ctx context.Context, city string) ([]entities.Master, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "name", "cities", "is_active", "created_at").
		From("masters")

	if city != "" {
		builder = builder.Where(sq.Expr("? = ANY(cities)", city))
	}

	query, args, err := builder.OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса справочника мастеров: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения справочника мастеров: %w", err)
	}
	defer rows.Close()

	masters := make([]entities.Master, 0)
	for rows.Next() {
		var m entities.Master
		if err := rows.Scan(&m.ID, &m.Name, &m.Cities, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования мастера: %w", err)
		}
		masters = append(masters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *MasterRepository) FindMaster(ctx context.Context, id int64) (*entities.Master, error) {
	var m entities.Master
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, cities, is_active, created_at FROM masters WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Cities, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMasterNotFound
		}
		return nil, fmt.Errorf("ошибка поиска мастера: %w", err)
	}
	return &m, nil
}
