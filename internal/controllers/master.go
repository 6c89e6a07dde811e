package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/services"
	"repair-system/pkg/utils"
)

type MasterController struct {
	masterService services.MasterServiceInterface
	logger        *zap.Logger
}

func NewMasterController(masterService services.MasterServiceInterface, logger *zap.Logger) *MasterController {
	return &MasterController{masterService: masterService, logger: logger}
}

func (c *MasterController) GetMasters(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	city := ctx.QueryParam("city")

	masters, err := c.masterService.GetMasters(reqCtx, city)
	if err != nil {
		c.logger.Error("ошибка получения списка мастеров", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, masters, "Список мастеров успешно получен", http.StatusOK)
}
