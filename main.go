package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mechcorp/maintenance-api/config"
	"github.com/mechcorp/maintenance-api/controllers"
	"github.com/mechcorp/maintenance-api/middleware"
	"github.com/mechcorp/maintenance-api/models"
	"github.com/mechcorp/maintenance-api/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting maintenance API server", zap.String("env", cfg.GoEnv))

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	db := config.GetDB()
	if err := db.AutoMigrate(&models.User{}, &models.Equipment{}, &models.WorkOrder{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	services.InitTokenService(cfg)
	services.InitPDFRenderer(cfg)
	if _, err := services.InitReportArchive(); err != nil {
		logger.Fatal("failed to initialize report archive", zap.Error(err))
	}
	if cfg.ArchiveEnabled() {
		logger.Info("report archive enabled", zap.String("bucket", cfg.ReportS3Bucket))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// setupRouter wires middleware, routes and role requirements together.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)
		api.GET("/database/status", databaseStatus)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.RequireAuth(), controllers.Me)
	}

	equipment := api.Group("/equipment", middleware.RequireAuth())
	{
		equipment.GET("", controllers.ListEquipment)
		equipment.GET("/:id", controllers.GetEquipment)
		equipment.POST("", middleware.RequireRoles(models.RoleSupervisor, models.RoleManager), controllers.CreateEquipment)
		equipment.PUT("/:id", middleware.RequireRoles(models.RoleSupervisor, models.RoleManager), controllers.UpdateEquipment)
		equipment.DELETE("/:id", middleware.RequireRoles(models.RoleManager), controllers.DeleteEquipment)
	}

	workOrders := api.Group("/work-orders", middleware.RequireAuth())
	{
		workOrders.GET("", controllers.ListWorkOrders)
		workOrders.GET("/:id", controllers.GetWorkOrder)
		workOrders.POST("", middleware.RequireRoles(models.RoleSupervisor, models.RoleManager), controllers.CreateWorkOrder)
		// Updates are open to any authenticated caller so technicians can
		// progress their assigned work orders.
		workOrders.PUT("/:id", controllers.UpdateWorkOrder)
		workOrders.DELETE("/:id", middleware.RequireRoles(models.RoleManager), controllers.DeleteWorkOrder)
	}

	reports := api.Group("/reports", middleware.RequireAuth())
	{
		reports.GET("/equipment-status", controllers.EquipmentStatusReport)
		reports.GET("/work-order-summary", controllers.WorkOrderSummaryReport)
		reports.GET("/technician-workload", controllers.TechnicianWorkloadReport)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Maintenance API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get database instance"})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database connection failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
