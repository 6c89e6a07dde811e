package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/internal/repositories"
	"repair-system/pkg/constants"
	apperrors "repair-system/pkg/errors"
	"repair-system/pkg/types"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*dto.OrderDTO, error)
	GetOrders(ctx context.Context, filter types.OrderFilter, limit, offset uint64) ([]dto.OrderDTO, uint64, error)
	FindOrder(ctx context.Context, id int64) (*dto.OrderDTO, error)
	UpdateOrder(ctx context.Context, id int64, updateData dto.UpdateOrderDTO) (*dto.OrderUpdateResultDTO, error)
	AssignMaster(ctx context.Context, id int64, assignData dto.AssignMasterDTO) (*dto.OrderUpdateResultDTO, error)
	CloseOrder(ctx context.Context, id int64, closeData dto.CloseOrderDTO) (*dto.OrderUpdateResultDTO, error)
}

type OrderService struct {
	orderRepo  repositories.OrderRepositoryInterface
	ledgerRepo repositories.LedgerRepositoryInterface
	masters    MasterServiceInterface
	logger     *zap.Logger
	now        func() time.Time
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	masters MasterServiceInterface,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:  orderRepo,
		ledgerRepo: ledgerRepo,
		masters:    masters,
		logger:     logger,
		now:        time.Now,
	}
}

// canTransition проверяет смену статуса. Из MODERN обратного пути в рабочий
// поток нет — только терминальные статусы либо сам MODERN. Терминальные
// статусы отсекаются ещё раньше проверкой неизменяемости.
func canTransition(from, to string) bool {
	if from == constants.StatusModern {
		switch to {
		case constants.StatusModern, constants.StatusDone, constants.StatusRefused, constants.StatusNotOrdered:
			return true
		default:
			return false
		}
	}
	return true
}

// shouldPostIncome — условие проводки по кассе: переход именно В DONE
// (статус до обновления был другим) при положительной сумме расчёта.
func shouldPostIncome(prevStatus string, ord *entities.Order) bool {
	return ord.Status == constants.StatusDone &&
		prevStatus != constants.StatusDone &&
		ord.Settlement.Valid && ord.Settlement.Float64 > 0
}

// applyOrderUpdate применяет белый список полей. Поля, которых нет в DTO
// (в том числе net/payout), изменить этим путём невозможно. Для Opt-полей
// переданный null очищает значение.
func applyOrderUpdate(ord *entities.Order, d dto.UpdateOrderDTO) {
	if d.City != nil {
		ord.City = *d.City
	}
	if d.ContactName != nil {
		ord.ContactName = *d.ContactName
	}
	if d.Phone != nil {
		ord.Phone = *d.Phone
	}
	if d.ClientName.Set {
		ord.ClientName = d.ClientName.String
	}
	if d.Address != nil {
		ord.Address = *d.Address
	}
	if d.EquipmentType != nil {
		ord.EquipmentType = *d.EquipmentType
	}
	if d.Problem != nil {
		ord.Problem = *d.Problem
	}
	if d.OrderType != nil {
		ord.OrderType = *d.OrderType
	}
	if d.CampaignID.Set {
		ord.CampaignID = d.CampaignID.Int64
	}
	if d.MeetingAt.Set {
		ord.MeetingAt = d.MeetingAt.Time
	}
	if d.MasterID.Set {
		ord.MasterID = d.MasterID.Int64
		ord.MasterName = null.String{}
	}
	if d.Status != nil {
		ord.Status = *d.Status
	}
	if d.Settlement.Set {
		ord.Settlement = d.Settlement.Float64
	}
	if d.Expense.Set {
		ord.Expense = d.Expense.Float64
	}
	if d.DocumentReceipt.Set {
		ord.DocumentReceipt = d.DocumentReceipt.String
	}
	if d.DocumentClosing.Set {
		ord.DocumentClosing = d.DocumentClosing.String
	}
}

// mutateOrder — общий путь всех обновлений: машина статусов, пересчёт
// производных, однократный closed_at, CAS-запись и затем проводка по кассе.
func (s *OrderService) mutateOrder(ctx context.Context, id int64, mutate func(*entities.Order)) (*dto.OrderUpdateResultDTO, error) {
	ord, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalStatus(ord.Status) {
		return nil, apperrors.ErrTerminalOrderImmutable
	}
	prevStatus := ord.Status

	mutate(ord)

	if !canTransition(prevStatus, ord.Status) {
		return nil, apperrors.ErrInvalidTransition
	}

	RecalculateFinance(ord)

	if constants.IsTerminalStatus(ord.Status) && !ord.ClosedAt.Valid {
		ord.ClosedAt = null.TimeFrom(s.now())
	}

	if err := s.orderRepo.UpdateOrder(ctx, ord, prevStatus); err != nil {
		return nil, err
	}

	if ord.MasterID.Valid && !ord.MasterName.Valid {
		if name, nameErr := s.masters.MasterName(ctx, ord.MasterID.Int64); nameErr == nil {
			ord.MasterName = null.StringFrom(name)
		}
	}

	result := &dto.OrderUpdateResultDTO{Order: orderToDTO(ord)}

	if shouldPostIncome(prevStatus, ord) {
		if err := s.postIncome(ctx, ord); err != nil {
			// Проводка не откатывает заказ и не повторяется: обновление уже
			// состоялось, неудача кассы только журналируется и отдаётся клиенту.
			s.logger.Error("касса: приход по заказу не проведён",
				zap.Int64("orderID", ord.ID),
				zap.Float64("amount", ord.Settlement.Float64),
				zap.Error(err))
			result.LedgerError = apperrors.ErrLedgerPostFailed.Error()
		} else {
			result.LedgerPosted = true
		}
	}

	return result, nil
}

func (s *OrderService) postIncome(ctx context.Context, ord *entities.Order) error {
	masterName := constants.MasterUnassigned
	if ord.MasterID.Valid {
		if name, err := s.masters.MasterName(ctx, ord.MasterID.Int64); err == nil {
			masterName = name
		} else if ord.MasterName.Valid {
			masterName = ord.MasterName.String
		}
	}

	entry := &entities.LedgerEntry{
		Direction:      constants.LedgerIncome,
		Amount:         ord.Settlement.Float64,
		City:           ord.City,
		Memo:           fmt.Sprintf("Заказ №%d: %s, расчёт %.2f", ord.ID, masterName, ord.Settlement.Float64),
		CreatedBy:      constants.LedgerSystemCreator,
		PaymentPurpose: null.StringFrom(fmt.Sprintf("order:%d", ord.ID)),
	}

	_, err := s.ledgerRepo.CreateEntry(ctx, entry)
	return err
}

func (s *OrderService) CreateOrder(ctx context.Context, orderData dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	ord := &entities.Order{
		CampaignID:    null.Int64FromPtr(orderData.CampaignID),
		City:          orderData.City,
		ContactName:   orderData.ContactName,
		Phone:         orderData.Phone,
		ClientName:    null.StringFromPtr(orderData.ClientName),
		Address:       orderData.Address,
		EquipmentType: orderData.EquipmentType,
		Problem:       orderData.Problem,
		MeetingAt:     null.TimeFromPtr(orderData.MeetingAt),
		OrderType:     orderData.OrderType,
		MasterID:      null.Int64FromPtr(orderData.MasterID),
		Status:        constants.StatusPending,
	}

	newID, err := s.orderRepo.CreateOrder(ctx, ord)
	if err != nil {
		s.logger.Error("ошибка создания заказа", zap.Error(err))
		return nil, err
	}
	return s.FindOrder(ctx, newID)
}

func (s *OrderService) GetOrders(ctx context.Context, filter types.OrderFilter, limit, offset uint64) ([]dto.OrderDTO, uint64, error) {
	orders, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	RankOrders(orders)
	total := uint64(len(orders))
	page := PaginateOrders(orders, limit, offset)

	result := make([]dto.OrderDTO, 0, len(page))
	for i := range page {
		result = append(result, orderToDTO(&page[i]))
	}
	return result, total, nil
}

func (s *OrderService) FindOrder(ctx context.Context, id int64) (*dto.OrderDTO, error) {
	ord, err := s.orderRepo.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	out := orderToDTO(ord)
	return &out, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int64, updateData dto.UpdateOrderDTO) (*dto.OrderUpdateResultDTO, error) {
	return s.mutateOrder(ctx, id, func(ord *entities.Order) {
		applyOrderUpdate(ord, updateData)
	})
}

// AssignMaster — суженное обновление: меняется только ссылка на мастера.
// Мастер разрешается по справочнику до записи, чтобы несуществующий id
// возвращался как "мастер не найден", а не падал на внешнем ключе в БД.
func (s *OrderService) AssignMaster(ctx context.Context, id int64, assignData dto.AssignMasterDTO) (*dto.OrderUpdateResultDTO, error) {
	name, err := s.masters.MasterName(ctx, assignData.MasterID)
	if err != nil {
		return nil, err
	}
	return s.mutateOrder(ctx, id, func(ord *entities.Order) {
		ord.MasterID = null.Int64From(assignData.MasterID)
		ord.MasterName = null.StringFrom(name)
	})
}

// CloseOrder — ярлык закрытия: статус принудительно DONE, финансовые поля из
// запроса, дальше общий путь (пересчёт, closed_at, проводка).
func (s *OrderService) CloseOrder(ctx context.Context, id int64, closeData dto.CloseOrderDTO) (*dto.OrderUpdateResultDTO, error) {
	return s.mutateOrder(ctx, id, func(ord *entities.Order) {
		ord.Status = constants.StatusDone
		if closeData.Settlement != nil {
			ord.Settlement = null.Float64From(*closeData.Settlement)
		}
		if closeData.Expense != nil {
			ord.Expense = null.Float64From(*closeData.Expense)
		}
		if closeData.DocumentClosing != nil {
			ord.DocumentClosing = null.StringFrom(*closeData.DocumentClosing)
		}
	})
}
