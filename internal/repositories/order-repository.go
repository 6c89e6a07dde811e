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
	"repair-system/pkg/types"
)

type OrderRepositoryInterface interface {
	// GetOrders возвращает ПОЛНЫЙ отфильтрованный набор без сортировки и пагинации:
	// порядок очереди и срез страницы считаются в памяти сервисом.
	GetOrders(ctx context.Context, filter types.OrderFilter) ([]entities.Order, error)
	FindOrder(ctx context.Context, id int64) (*entities.Order, error)
	CreateOrder(ctx context.Context, ord *entities.Order) (int64, error)
	// UpdateOrder перезаписывает заказ при условии, что статус в БД всё ещё равен
	// expectedStatus (compare-and-swap). Проигранная гонка — ErrOrderConflict.
	UpdateOrder(ctx context.Context, ord *entities.Order, expectedStatus string) error
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

var orderColumns = []string{
	"o.id", "o.campaign_id", "o.city", "o.contact_name", "o.phone", "o.client_name",
	"o.address", "o.equipment_type", "o.problem", "o.meeting_at", "o.order_type",
	"o.master_id", "m.name AS master_name", "o.status",
	"o.settlement", "o.expense", "o.net", "o.payout",
	"o.closed_at", "o.document_receipt", "o.document_closing",
	"o.created_at", "o.updated_at",
}

func orderSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(orderColumns...).
		From("orders o").
		LeftJoin("masters m ON o.master_id = m.id")
}

func scanOrderRow(row pgx.Row) (*entities.Order, error) {
	var o entities.Order
	err := row.Scan(
		&o.ID, &o.CampaignID, &o.City, &o.ContactName, &o.Phone, &o.ClientName,
		&o.Address, &o.EquipmentType, &o.Problem, &o.MeetingAt, &o.OrderType,
		&o.MasterID, &o.MasterName, &o.Status,
		&o.Settlement, &o.Expense, &o.Net, &o.Payout,
		&o.ClosedAt, &o.DocumentReceipt, &o.DocumentClosing,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.OrderFilter) ([]entities.Order, error) {
	builder := orderSelect()

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"o.status": filter.Status})
	}
	if filter.City != "" {
		builder = builder.Where(sq.Eq{"o.city": filter.City})
	}
	if filter.Master != "" {
		builder = builder.Where(sq.ILike{"m.name": "%" + filter.Master + "%"})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"o.phone": pattern},
			sq.ILike{"o.address": pattern},
			sq.Expr("o.id::text = ?", filter.Search),
		})
	}
	if len(filter.Cities) > 0 {
		builder = builder.Where(sq.Eq{"o.city": filter.Cities})
	}

	query, args, err := builder.OrderBy("o.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заказов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка заказов: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		ord, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования заказа в списке: %w", err)
		}
		orders = append(orders, *ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindOrder(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := orderSelect().Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса заказа: %w", err)
	}

	ord, err := scanOrderRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования заказа: %w", err)
	}
	return ord, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, ord *entities.Order) (int64, error) {
	query := `
		INSERT INTO orders (campaign_id, city, contact_name, phone, client_name, address,
			equipment_type, problem, meeting_at, order_type, master_id, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id`

	var newID int64
	err := r.storage.QueryRow(ctx, query,
		ord.CampaignID, ord.City, ord.ContactName, ord.Phone, ord.ClientName, ord.Address,
		ord.EquipmentType, ord.Problem, ord.MeetingAt, ord.OrderType, ord.MasterID, ord.Status,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания заказа: %w", err)
	}
	return newID, nil
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, ord *entities.Order, expectedStatus string) error {
	query := `
		UPDATE orders SET
			campaign_id = $1, city = $2, contact_name = $3, phone = $4, client_name = $5,
			address = $6, equipment_type = $7, problem = $8, meeting_at = $9, order_type = $10,
			master_id = $11, status = $12, settlement = $13, expense = $14, net = $15,
			payout = $16, closed_at = $17, document_receipt = $18, document_closing = $19,
			updated_at = NOW()
		WHERE id = $20 AND status = $21`

	tag, err := r.storage.Exec(ctx, query,
		ord.CampaignID, ord.City, ord.ContactName, ord.Phone, ord.ClientName,
		ord.Address, ord.EquipmentType, ord.Problem, ord.MeetingAt, ord.OrderType,
		ord.MasterID, ord.Status, ord.Settlement, ord.Expense, ord.Net,
		ord.Payout, ord.ClosedAt, ord.DocumentReceipt, ord.DocumentClosing,
		ord.ID, expectedStatus,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления заказа: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.storage.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, ord.ID).Scan(&exists); err != nil {
			return fmt.Errorf("ошибка проверки существования заказа: %w", err)
		}
		if !exists {
			return apperrors.ErrOrderNotFound
		}
		return apperrors.ErrOrderConflict
	}
	return nil
}
