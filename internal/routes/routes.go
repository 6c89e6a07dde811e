package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-system/internal/controllers"
	"repair-system/internal/repositories"
	"repair-system/internal/services"
	"repair-system/pkg/config"
	"repair-system/pkg/middleware"
	"repair-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	secureGroup := api.Group("", authMW.Auth)

	// --- РЕПОЗИТОРИИ ---
	orderRepo := repositories.NewOrderRepository(dbConn)
	ledgerRepo := repositories.NewLedgerRepository(dbConn)
	masterRepo := repositories.NewMasterRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	masterService := services.NewMasterService(masterRepo, cacheRepo, logger, cfg.Cache.MasterNameTTL)
	orderService := services.NewOrderService(orderRepo, ledgerRepo, masterService, logger)
	ledgerService := services.NewLedgerService(ledgerRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- КОНТРОЛЛЕРЫ ---
	orderCtrl := controllers.NewOrderController(orderService, logger)
	ledgerCtrl := controllers.NewLedgerController(ledgerService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	masterCtrl := controllers.NewMasterController(masterService, logger)

	runOrderRouter(secureGroup, orderCtrl)
	runLedgerRouter(secureGroup, ledgerCtrl)
	runReportRouter(secureGroup, reportCtrl)
	runMasterRouter(secureGroup, masterCtrl)
}
