package routes

import (
	"github.com/labstack/echo/v4"

	"repair-system/internal/controllers"
)

func runMasterRouter(secureGroup *echo.Group, masterCtrl *controllers.MasterController) {
	{
		secureGroup.GET("/masters", masterCtrl.GetMasters)
	}
}
