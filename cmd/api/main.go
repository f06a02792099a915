package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentbook/internal/config"
	"rentbook/internal/database"
	"rentbook/internal/handlers"
	"rentbook/internal/logger"
	"rentbook/internal/middleware"
	"rentbook/internal/services"
	"rentbook/internal/throttle"
	"rentbook/internal/validator"

	_ "rentbook/internal/docs" // Import swagger docs
)

// @title           Rentbook API
// @version         1.0
// @description     Rentbook is a rental property management service for landlords to track houses, renters, and monthly bills, with a read-only portal for renters.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	adminService := services.NewAdminService(db)
	houseService := services.NewHouseService(db)
	renterService := services.NewRenterService(db)
	billService := services.NewBillService(db, renterService)

	// Login throttle shared by both auth flows
	limiter := throttle.NewMemoryLimiter(appConfig.LoginMaxAttempts, appConfig.LoginWindow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(adminService, renterService, limiter, appConfig.LoginFailDelay)
	houseHandler := handlers.NewHouseHandler(houseService)
	renterHandler := handlers.NewRenterHandler(renterService)
	billHandler := handlers.NewBillHandler(billService)
	portalHandler := handlers.NewPortalHandler(houseService, billService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/admin/login", authHandler.AdminLogin)
	v1.POST("/renter/auth", authHandler.RenterAuth)
	v1.GET("/renter/auth/resource", portalHandler.Resources)

	// Admin routes
	admin := v1.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))

	houses := admin.Group("/houses")
	houses.GET("", houseHandler.List)
	houses.POST("", houseHandler.Create)
	houses.PUT("/:id", houseHandler.Update)
	houses.DELETE("/:id", houseHandler.Delete)

	renters := admin.Group("/renters")
	renters.GET("", renterHandler.List)
	renters.POST("", renterHandler.Create)
	renters.PUT("/:id", renterHandler.Update)
	renters.DELETE("/:id", renterHandler.Delete)

	bills := admin.Group("/bills")
	bills.GET("", billHandler.List)
	bills.GET("/defaults", billHandler.Defaults)
	bills.POST("", billHandler.Create)
	bills.PUT("/:id", billHandler.Update)
	bills.DELETE("/:id", billHandler.Delete)

	// Renter portal routes
	portal := v1.Group("/renter")
	portal.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleRenter))
	portal.GET("/bills", portalHandler.Bills)
	portal.GET("/usage", portalHandler.Usage)

	log.Infof("Starting Rentbook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
