package main

import (
	"net/http"

	"sku-service/internal/handler"
	mid "sku-service/internal/middleware"
	"sku-service/pkg/config"
	"sku-service/pkg/database"
	"sku-service/pkg/jwtutil"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load("sku-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting sku-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth and bootstrap routes
	e.POST("/api/auth/login", handler.Login)
	e.POST("/api/auth/register", handler.RegisterUser)
	e.GET("/api/auth/me", handler.Me, mid.AuthMiddleware)
	e.POST("/api/tenants", handler.CreateTenant)
	e.GET("/api/tenants", handler.ListTenants)

	// Reference data lookups backing the SKU form
	e.GET("/api/products/category-map", handler.GetCategoryMap)
	e.GET("/api/products/vendor-map", handler.GetVendorMap)
	e.GET("/api/products/quantity-map", handler.GetQuantityMap)

	// Product API routes - auth middleware validates JWT and extracts tenant ID
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.POST("", handler.CreateProduct)
	productAPI.GET("/export", handler.ExportProducts)
	productAPI.POST("/import", handler.ImportProducts)
	productAPI.GET("/:id", handler.GetProduct)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server error", zap.Error(err))
	}
}
