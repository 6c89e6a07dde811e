package routes

import (
	"github.com/labstack/echo/v4"

	"repair-system/internal/controllers"
)

func runOrderRouter(secureGroup *echo.Group, orderCtrl *controllers.OrderController) {
	{
		secureGroup.GET("/orders", orderCtrl.GetOrders)
		secureGroup.POST("/orders", orderCtrl.CreateOrder)
		secureGroup.GET("/orders/:id", orderCtrl.FindOrder)
		secureGroup.PUT("/orders/:id", orderCtrl.UpdateOrder)
		secureGroup.PUT("/orders/:id/master", orderCtrl.AssignMaster)
		secureGroup.PUT("/orders/:id/close", orderCtrl.CloseOrder)
	}
}
