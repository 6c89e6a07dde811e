package routes

import (
	"github.com/labstack/echo/v4"

	"repair-system/internal/controllers"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	{
		secureGroup.GET("/reports/masters", reportCtrl.GetMasterReport)
		secureGroup.GET("/reports/masters/export", reportCtrl.ExportMasterReport)
		secureGroup.GET("/reports/cities", reportCtrl.GetCityReport)
	}
}
