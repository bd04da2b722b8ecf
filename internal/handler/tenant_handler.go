package handler

import (
	"net/http"
	"time"

	"sku-service/internal/model"
	"sku-service/pkg/database"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CreateTenant handles tenant creation
func CreateTenant(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse tenant creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	tenant := model.Tenant{
		ID:     uuid.New(),
		Name:   req.Name,
		Active: true,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&tenant); result.Error != nil {
		log.Error("Failed to create tenant", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create tenant"})
	}

	log.Info("Tenant created",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("name", tenant.Name))
	return c.JSON(http.StatusCreated, tenant)
}

// ListTenants returns all tenants
func ListTenants(c echo.Context) error {
	log := logger.FromContext(c)

	var tenants []model.Tenant
	defer prometheus.TrackDBOperation("query")(time.Now())
	if result := database.GetDB().Find(&tenants); result.Error != nil {
		log.Error("Failed to list tenants", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve tenants"})
	}

	return c.JSON(http.StatusOK, tenants)
}
