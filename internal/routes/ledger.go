package routes

import (
	"github.com/labstack/echo/v4"

	"repair-system/internal/controllers"
)

func runLedgerRouter(secureGroup *echo.Group, ledgerCtrl *controllers.LedgerController) {
	{
		secureGroup.GET("/ledger", ledgerCtrl.GetEntries)
	}
}
