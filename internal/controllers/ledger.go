package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/services"
	"repair-system/pkg/types"
	"repair-system/pkg/utils"
)

type LedgerController struct {
	ledgerService services.LedgerServiceInterface
	logger        *zap.Logger
}

func NewLedgerController(ledgerService services.LedgerServiceInterface, logger *zap.Logger) *LedgerController {
	return &LedgerController{ledgerService: ledgerService, logger: logger}
}

// parsePeriod читает границы окна из query. Неразборчивые даты молча
// игнорируются — касса отдаётся целиком.
func parsePeriod(ctx echo.Context) (from, to *time.Time) {
	if s := ctx.QueryParam("date_from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			from = &t
		}
	}
	if s := ctx.QueryParam("date_to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			to = &t
		}
	}
	return from, to
}

func (c *LedgerController) GetEntries(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	params := utils.ParseQuery(ctx.Request().URL.Query())
	from, to := parsePeriod(ctx)

	filter := types.LedgerFilter{
		City:   params.Filters["city"],
		From:   from,
		To:     to,
		Cities: utils.GetCitiesFromCtx(reqCtx),
	}

	entries, total, err := c.ledgerService.GetEntries(reqCtx, filter)
	if err != nil {
		c.logger.Error("ошибка получения записей кассы", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}
	return utils.SuccessResponse(ctx, entries, "Записи кассы успешно получены", http.StatusOK, total)
}
