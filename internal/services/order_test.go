package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/entities"
	"repair-system/pkg/constants"
	apperrors "repair-system/pkg/errors"
	"repair-system/pkg/types"
	"repair-system/pkg/utils"
)

// --- ПОДДЕЛКИ ХРАНИЛИЩ ---

type fakeOrderRepo struct {
	orders map[int64]entities.Order
	nextID int64

	// forceConflict имитирует проигранную гонку compare-and-swap.
	forceConflict bool
	updateCalls   int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]entities.Order), nextID: 1}
}

func (r *fakeOrderRepo) put(ord entities.Order) {
	if ord.ID == 0 {
		ord.ID = r.nextID
	}
	if ord.ID >= r.nextID {
		r.nextID = ord.ID + 1
	}
	r.orders[ord.ID] = ord
}

func (r *fakeOrderRepo) GetOrders(_ context.Context, filter types.OrderFilter) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(r.orders))
	for _, ord := range r.orders {
		if filter.Status != "" && ord.Status != filter.Status {
			continue
		}
		if filter.City != "" && ord.City != filter.City {
			continue
		}
		result = append(result, ord)
	}
	return result, nil
}

func (r *fakeOrderRepo) FindOrder(_ context.Context, id int64) (*entities.Order, error) {
	ord, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrOrderNotFound
	}
	cp := ord
	return &cp, nil
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, ord *entities.Order) (int64, error) {
	cp := *ord
	cp.ID = r.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.put(cp)
	return cp.ID, nil
}

func (r *fakeOrderRepo) UpdateOrder(_ context.Context, ord *entities.Order, expectedStatus string) error {
	r.updateCalls++
	stored, ok := r.orders[ord.ID]
	if !ok {
		return apperrors.ErrOrderNotFound
	}
	if r.forceConflict || stored.Status != expectedStatus {
		return apperrors.ErrOrderConflict
	}
	cp := *ord
	cp.UpdatedAt = time.Now()
	r.orders[ord.ID] = cp
	return nil
}

type fakeLedgerRepo struct {
	entries []entities.LedgerEntry
	failing bool
}

func (r *fakeLedgerRepo) CreateEntry(_ context.Context, entry *entities.LedgerEntry) (int64, error) {
	if r.failing {
		return 0, errors.New("касса недоступна")
	}
	cp := *entry
	cp.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, cp)
	return cp.ID, nil
}

func (r *fakeLedgerRepo) GetEntries(_ context.Context, _ types.LedgerFilter) ([]entities.LedgerEntry, error) {
	return r.entries, nil
}

type fakeMasterService struct {
	names map[int64]string
}

func (s *fakeMasterService) GetMasters(_ context.Context, _ string) ([]dto.MasterDTO, error) {
	return nil, nil
}

func (s *fakeMasterService) MasterName(_ context.Context, id int64) (string, error) {
	name, ok := s.names[id]
	if !ok {
		return "", apperrors.ErrMasterNotFound
	}
	return name, nil
}

func newTestOrderService(orderRepo *fakeOrderRepo, ledgerRepo *fakeLedgerRepo) *OrderService {
	svc := NewOrderService(
		orderRepo,
		ledgerRepo,
		&fakeMasterService{names: map[int64]string{7: "Карим"}},
		zap.NewNop(),
	).(*OrderService)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func pendingOrder(id int64) entities.Order {
	return entities.Order{
		ID:            id,
		City:          "Душанбе",
		ContactName:   "Фарход",
		Phone:         "+992900000001",
		Address:       "ул. Рудаки, 10",
		EquipmentType: "холодильник",
		Problem:       "не морозит",
		OrderType:     "ремонт",
		Status:        constants.StatusPending,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// --- МАШИНА СТАТУСОВ ---

func TestUpdateOrder_TerminalOrderImmutable(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	ord.Status = constants.StatusDone
	repo.put(ord)
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	_, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Problem: utils.Ptr("другая неисправность"),
	})

	require.ErrorIs(t, err, apperrors.ErrTerminalOrderImmutable,
		"терминальный заказ не должен меняться")
	assert.Zero(t, repo.updateCalls, "запись в хранилище не должна была произойти")
}

func TestUpdateOrder_ModernLockIn(t *testing.T) {
	allowed := map[string]bool{
		constants.StatusModern:     true,
		constants.StatusDone:       true,
		constants.StatusRefused:    true,
		constants.StatusNotOrdered: true,
	}

	for _, target := range []string{
		constants.StatusPending, constants.StatusAccepted, constants.StatusInProgress,
		constants.StatusModern, constants.StatusDone, constants.StatusRefused, constants.StatusNotOrdered,
	} {
		t.Run(target, func(t *testing.T) {
			repo := newFakeOrderRepo()
			ord := pendingOrder(1)
			ord.Status = constants.StatusModern
			repo.put(ord)
			svc := newTestOrderService(repo, &fakeLedgerRepo{})

			_, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
				Status: utils.Ptr(target),
			})

			if allowed[target] {
				require.NoError(t, err, "переход из MODERN в %s должен быть разрешён", target)
			} else {
				require.ErrorIs(t, err, apperrors.ErrInvalidTransition,
					"из MODERN нет возврата в рабочий поток")
			}
		})
	}
}

func TestUpdateOrder_SetsClosedAtOnce(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	alreadyClosed := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	ord.ClosedAt = null.TimeFrom(alreadyClosed)
	repo.put(ord)
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Status: utils.Ptr(constants.StatusRefused),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Order.ClosedAt)
	assert.Equal(t, alreadyClosed.Format(time.RFC3339), *res.Order.ClosedAt,
		"уже проставленный closed_at не должен перезаписываться")
}

func TestUpdateOrder_ClosedAtSetOnTerminal(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Status: utils.Ptr(constants.StatusNotOrdered),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Order.ClosedAt, "терминальный переход должен проставить closed_at")
	assert.Equal(t, "2026-03-15T10:00:00Z", *res.Order.ClosedAt)
}

func TestUpdateOrder_CASConflict(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	repo.forceConflict = true
	ledger := &fakeLedgerRepo{}
	svc := newTestOrderService(repo, ledger)

	_, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Status: utils.Ptr(constants.StatusDone),
		Settlement: types.OptFloat{
			Set:     true,
			Float64: null.Float64From(1000),
		},
	})

	require.ErrorIs(t, err, apperrors.ErrOrderConflict, "проигранная гонка должна вернуть конфликт")
	assert.Empty(t, ledger.entries, "при конфликте проводки быть не должно")
}

// --- ПРОИЗВОДНЫЕ ФИНАНСЫ И ОЧИСТКА ЧЕРЕЗ NULL ---

func TestUpdateOrder_RecalculatesDerivedFields(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Settlement: types.OptFloat{Set: true, Float64: null.Float64From(1000)},
		Expense:    types.OptFloat{Set: true, Float64: null.Float64From(200)},
	})

	require.NoError(t, err)
	require.NotNil(t, res.Order.Net)
	require.NotNil(t, res.Order.Payout)
	assert.Equal(t, 800.0, *res.Order.Net)
	assert.Equal(t, 400.0, *res.Order.Payout)
}

func TestUpdateOrder_NullClearsFinance(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	ord.Settlement = null.Float64From(1000)
	ord.Expense = null.Float64From(200)
	ord.Net = null.Float64From(800)
	ord.Payout = null.Float64From(400)
	repo.put(ord)
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	// Переданный null очищает поле; непереданное поле не трогается.
	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Settlement: types.OptFloat{Set: true},
		Expense:    types.OptFloat{Set: true},
	})

	require.NoError(t, err)
	assert.Nil(t, res.Order.Settlement)
	assert.Nil(t, res.Order.Expense)
	assert.Nil(t, res.Order.Net, "производные должны очиститься вместе с исходными")
	assert.Nil(t, res.Order.Payout)
}

func TestUpdateOrder_AbsentFieldsUntouched(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	ord.Settlement = null.Float64From(500)
	repo.put(ord)
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Problem: utils.Ptr("после диагностики: компрессор"),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Order.Settlement, "непереданное поле не должно сбрасываться")
	assert.Equal(t, 500.0, *res.Order.Settlement)
}

// --- ПРОВОДКА ПО КАССЕ ---

func TestUpdateOrder_PostsIncomeOnDone(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	ord.MasterID = null.Int64From(7)
	repo.put(ord)
	ledger := &fakeLedgerRepo{}
	svc := newTestOrderService(repo, ledger)

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Status:     utils.Ptr(constants.StatusDone),
		Settlement: types.OptFloat{Set: true, Float64: null.Float64From(1500)},
	})

	require.NoError(t, err)
	assert.True(t, res.LedgerPosted)
	assert.Empty(t, res.LedgerError)

	require.Len(t, ledger.entries, 1, "переход в DONE должен дать ровно одну проводку")
	entry := ledger.entries[0]
	assert.Equal(t, constants.LedgerIncome, entry.Direction)
	assert.Equal(t, 1500.0, entry.Amount)
	assert.Equal(t, "Душанбе", entry.City)
	assert.Equal(t, constants.LedgerSystemCreator, entry.CreatedBy)
	assert.Contains(t, entry.Memo, "Карим")
	require.True(t, entry.PaymentPurpose.Valid)
	assert.Equal(t, "order:1", entry.PaymentPurpose.String)
}

func TestUpdateOrder_NoIncomeWithoutSettlement(t *testing.T) {
	testCases := []struct {
		name       string
		settlement types.OptFloat
	}{
		{name: "расчёт не задан"},
		{name: "расчёт нулевой", settlement: types.OptFloat{Set: true, Float64: null.Float64From(0)}},
		{name: "расчёт отрицательный", settlement: types.OptFloat{Set: true, Float64: null.Float64From(-10)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeOrderRepo()
			repo.put(pendingOrder(1))
			ledger := &fakeLedgerRepo{}
			svc := newTestOrderService(repo, ledger)

			res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
				Status:     utils.Ptr(constants.StatusDone),
				Settlement: tc.settlement,
			})

			require.NoError(t, err)
			assert.False(t, res.LedgerPosted)
			assert.Empty(t, ledger.entries, "без положительного расчёта прихода быть не должно")
		})
	}
}

func TestUpdateOrder_NoIncomeWhenAlreadyDone(t *testing.T) {
	// Сам сервис не даст обновить DONE-заказ, но условие проводки проверяет
	// именно смену статуса: повторного прихода не будет и на уровне предиката.
	ord := &entities.Order{
		Status:     constants.StatusDone,
		Settlement: null.Float64From(100),
	}
	assert.False(t, shouldPostIncome(constants.StatusDone, ord))
	assert.True(t, shouldPostIncome(constants.StatusInProgress, ord))
}

func TestUpdateOrder_LedgerFailureDoesNotFailOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	ledger := &fakeLedgerRepo{failing: true}
	svc := newTestOrderService(repo, ledger)

	res, err := svc.UpdateOrder(context.Background(), 1, dto.UpdateOrderDTO{
		Status:     utils.Ptr(constants.StatusDone),
		Settlement: types.OptFloat{Set: true, Float64: null.Float64From(900)},
	})

	require.NoError(t, err, "неудача кассы не должна валить обновление заказа")
	assert.Equal(t, constants.StatusDone, res.Order.Status)
	assert.False(t, res.LedgerPosted)
	assert.Equal(t, apperrors.ErrLedgerPostFailed.Error(), res.LedgerError)

	stored, findErr := repo.FindOrder(context.Background(), 1)
	require.NoError(t, findErr)
	assert.Equal(t, constants.StatusDone, stored.Status, "заказ должен остаться закрытым")
}

// --- ЯРЛЫКИ ---

func TestCloseOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	ord := pendingOrder(1)
	ord.MasterID = null.Int64From(7)
	repo.put(ord)
	ledger := &fakeLedgerRepo{}
	svc := newTestOrderService(repo, ledger)

	res, err := svc.CloseOrder(context.Background(), 1, dto.CloseOrderDTO{
		Settlement:      utils.Ptr(2000.0),
		Expense:         utils.Ptr(500.0),
		DocumentClosing: utils.Ptr("act-42.pdf"),
	})

	require.NoError(t, err)
	assert.Equal(t, constants.StatusDone, res.Order.Status)
	require.NotNil(t, res.Order.Net)
	assert.Equal(t, 1500.0, *res.Order.Net)
	require.NotNil(t, res.Order.Payout)
	assert.Equal(t, 750.0, *res.Order.Payout)
	require.NotNil(t, res.Order.ClosedAt)
	assert.True(t, res.LedgerPosted)
	require.Len(t, ledger.entries, 1)
	assert.Equal(t, 2000.0, ledger.entries[0].Amount)
}

func TestAssignMaster(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	res, err := svc.AssignMaster(context.Background(), 1, dto.AssignMasterDTO{MasterID: 7})

	require.NoError(t, err)
	require.NotNil(t, res.Order.Master)
	assert.Equal(t, int64(7), res.Order.Master.ID)
	assert.Equal(t, "Карим", res.Order.Master.Name)
}

func TestAssignMaster_UnknownMaster(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.put(pendingOrder(1))
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	_, err := svc.AssignMaster(context.Background(), 1, dto.AssignMasterDTO{MasterID: 999})

	require.ErrorIs(t, err, apperrors.ErrMasterNotFound,
		"несуществующий мастер должен отсекаться до записи")
	assert.Zero(t, repo.updateCalls, "заказ не должен был обновляться")
}

// --- СОЗДАНИЕ И СПИСОК ---

func TestCreateOrder_StartsPending(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderDTO{
		City:          "Худжанд",
		ContactName:   "Манижа",
		Phone:         "+992900000002",
		Address:       "ул. Ленина, 3",
		EquipmentType: "стиральная машина",
		Problem:       "течёт",
		OrderType:     "ремонт",
	})

	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, order.Status, "новый заказ всегда начинает с PENDING")
	assert.Nil(t, order.ClosedAt)
	assert.Nil(t, order.Net)
}

func TestGetOrders_RanksAndPaginates(t *testing.T) {
	repo := newFakeOrderRepo()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	done := pendingOrder(1)
	done.Status = constants.StatusDone
	done.CreatedAt = base
	repo.put(done)

	accepted := pendingOrder(2)
	accepted.Status = constants.StatusAccepted
	accepted.CreatedAt = base
	repo.put(accepted)

	pending := pendingOrder(3)
	pending.MeetingAt = null.TimeFrom(base.Add(time.Hour))
	repo.put(pending)

	svc := newTestOrderService(repo, &fakeLedgerRepo{})

	list, total, err := svc.GetOrders(context.Background(), types.OrderFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total, "total считается до среза страницы")
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID, "PENDING должен быть первым")
	assert.Equal(t, int64(2), list[1].ID)
}
