package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hifi-imports/import-cost-api/internal/config"
	"github.com/hifi-imports/import-cost-api/internal/database"
	"github.com/hifi-imports/import-cost-api/internal/handler"
	"github.com/hifi-imports/import-cost-api/internal/middleware"
	"github.com/hifi-imports/import-cost-api/internal/repository"
	"github.com/hifi-imports/import-cost-api/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}
	if cfg.SeedDemo {
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	setupAPIRoutes(router, pool)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool) {
	supplierRepo := repository.NewSupplierRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	shipmentRepo := repository.NewShipmentRepository(pool)

	catalogService := service.NewCatalogService(supplierRepo, productRepo)
	shipmentService := service.NewShipmentService(shipmentRepo, supplierRepo, productRepo)
	costingService := service.NewCostingService(shipmentService, shipmentRepo)
	simulationService := service.NewSimulationService()
	dashboardService := service.NewDashboardService(shipmentRepo, supplierRepo, costingService)
	reportService := service.NewReportService(shipmentRepo, supplierRepo, costingService)

	supplierHandler := handler.NewSupplierHandler(catalogService)
	productHandler := handler.NewProductHandler(catalogService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	costingHandler := handler.NewCostingHandler(costingService)
	simulationHandler := handler.NewSimulationHandler(simulationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	reportHandler := handler.NewReportHandler(reportService)

	api := router.Group("/api/v1")
	{
		api.POST("/suppliers", supplierHandler.Create)
		api.GET("/suppliers", supplierHandler.List)
		api.GET("/suppliers/:id", supplierHandler.Get)
		api.PUT("/suppliers/:id", supplierHandler.Update)
		api.DELETE("/suppliers/:id", supplierHandler.Delete)

		api.POST("/products", productHandler.Create)
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.POST("/shipments", shipmentHandler.Create)
		api.GET("/shipments", shipmentHandler.List)
		api.GET("/shipments/:id", shipmentHandler.Get)
		api.DELETE("/shipments/:id", shipmentHandler.Delete)
		api.POST("/shipments/:id/items", shipmentHandler.AddItem)
		api.POST("/shipments/:id/items/import", shipmentHandler.ImportItems)
		api.DELETE("/shipments/:id/items/:itemID", shipmentHandler.RemoveItem)
		api.POST("/shipments/:id/cost-lines", shipmentHandler.AddCostLine)
		api.DELETE("/shipments/:id/cost-lines/:lineID", shipmentHandler.RemoveCostLine)
		api.PUT("/shipments/:id/rates", shipmentHandler.UpdateRates)
		api.PUT("/shipments/:id/certificate", shipmentHandler.UpdateCertificate)
		api.PUT("/shipments/:id/status", shipmentHandler.UpdateStatus)
		api.PUT("/shipments/:id/logistics", shipmentHandler.UpdateLogistics)
		api.GET("/shipments/:id/costing", costingHandler.GetCosting)
		api.POST("/shipments/:id/costing/save", costingHandler.SaveCosting)

		api.POST("/simulations", simulationHandler.Run)
		api.GET("/dashboard", dashboardHandler.GetStats)
		api.GET("/reports/shipments", reportHandler.GetShipmentReport)
	}
}
