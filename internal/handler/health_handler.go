package handler

import (
	"net/http"

	"sku-service/pkg/database"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	status := "healthy"
	code := http.StatusOK

	if db := database.GetDB(); db != nil {
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	return c.JSON(code, echo.Map{
		"status":  status,
		"service": "sku-service",
	})
}
