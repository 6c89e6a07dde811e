package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/services"
	"repair-system/pkg/types"
	"repair-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetMasterReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := types.ReportFilter{
		City:   ctx.QueryParam("city"),
		Cities: utils.GetCitiesFromCtx(reqCtx),
	}

	report, err := c.reportService.GetMasterReport(reqCtx, filter)
	if err != nil {
		c.logger.Error("ошибка формирования отчёта по мастерам", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, report, "Отчёт по мастерам успешно сформирован", http.StatusOK)
}

func (c *ReportController) ExportMasterReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := types.ReportFilter{
		City:   ctx.QueryParam("city"),
		Cities: utils.GetCitiesFromCtx(reqCtx),
	}

	f, err := c.reportService.ExportMasterReport(reqCtx, filter)
	if err != nil {
		c.logger.Error("ошибка выгрузки отчёта по мастерам", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	fileName := fmt.Sprintf("masters_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *ReportController) GetCityReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	from, to := parsePeriod(ctx)

	filter := types.ReportFilter{
		City:   ctx.QueryParam("city"),
		From:   from,
		To:     to,
		Cities: utils.GetCitiesFromCtx(reqCtx),
	}

	report, err := c.reportService.GetCityReport(reqCtx, filter)
	if err != nil {
		c.logger.Error("ошибка формирования отчёта по городам", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, report, "Отчёт по городам успешно сформирован", http.StatusOK)
}
