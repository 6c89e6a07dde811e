package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/dto"
	"repair-system/internal/services"
	apperrors "repair-system/pkg/errors"
	"repair-system/pkg/types"
	"repair-system/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func parseOrderID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInputError("неверный ID заказа: '%s'", ctx.Param("id"))
	}
	return id, nil
}

func (c *OrderController) GetOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())

	filter := types.OrderFilter{
		Status: params.Filters["status"],
		City:   params.Filters["city"],
		Master: params.Filters["master"],
		Search: params.Search,
		Cities: utils.GetCitiesFromCtx(reqCtx),
	}

	orders, total, err := c.orderService.GetOrders(reqCtx, filter, params.Limit, params.Offset)
	if err != nil {
		c.logger.Error("ошибка получения списка заказов", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, orders, "Список заказов успешно получен", http.StatusOK, total)
}

func (c *OrderController) FindOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseOrderID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	order, err := c.orderService.FindOrder(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, order, "Заказ успешно найден", http.StatusOK)
}

func (c *OrderController) CreateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body dto.CreateOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("некорректное тело запроса"))
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	order, err := c.orderService.CreateOrder(reqCtx, body)
	if err != nil {
		c.logger.Error("ошибка создания заказа", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, order, "Заказ успешно создан", http.StatusCreated)
}

func (c *OrderController) UpdateOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseOrderID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.UpdateOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("некорректное тело запроса"))
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	result, err := c.orderService.UpdateOrder(reqCtx, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, result, "Заказ успешно обновлён", http.StatusOK)
}

func (c *OrderController) AssignMaster(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseOrderID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.AssignMasterDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("некорректное тело запроса"))
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	result, err := c.orderService.AssignMaster(reqCtx, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, result, "Мастер успешно назначен", http.StatusOK)
}

func (c *OrderController) CloseOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := parseOrderID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	var body dto.CloseOrderDTO
	if err := ctx.Bind(&body); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("некорректное тело запроса"))
	}
	if err := ctx.Validate(&body); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	result, err := c.orderService.CloseOrder(reqCtx, id, body)
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, result, "Заказ успешно закрыт", http.StatusOK)
}
