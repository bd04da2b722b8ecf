package handler

import (
	"errors"
	"net/http"
	"time"

	"sku-service/internal/middleware"
	"sku-service/internal/model"
	"sku-service/internal/sku"
	"sku-service/pkg/database"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts returns the authenticated tenant's products
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("list")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}

	var products []model.Product
	defer prometheus.TrackDBOperation("query")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Order("created_at").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	log.Info("Products retrieved",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id, scoped to the tenant
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("get")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var product model.Product
	result := database.GetDB().Where("tenant_id = ?", tenantID).First(&product, "id = ?", id)
	if result.Error != nil {
		log.Warn("Product not found",
			zap.String("product_id", id.String()),
			zap.String("tenant_id", tenantID.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct registers a new product: codes are normalized, a
// sequence number is allocated and both SKU forms composed, all inside
// one transaction.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("create")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}

	var req sku.CreateProductInput
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	product, err := sku.RegisterProduct(c.Request().Context(), database.GetDB(), tenantID, req)
	if err != nil {
		return writeRegisterError(c, log, err)
	}

	prometheus.RecordSkuAllocation("success")
	log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("tenant_id", tenantID.String()),
		zap.String("human_sku", product.HumanSKU),
		zap.String("numeric_sku", product.NumericSKU))
	return c.JSON(http.StatusCreated, product)
}

func writeRegisterError(c echo.Context, log *zap.Logger, err error) error {
	var vErr *sku.ValidationError
	var cErr *sku.ConflictError

	switch {
	case errors.As(err, &vErr):
		prometheus.RecordSkuAllocation("validation_error")
		log.Warn("Product rejected", zap.String("field", vErr.Field), zap.String("reason", vErr.Reason))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": vErr.Error()})
	case errors.As(err, &cErr):
		// Should be unreachable under correct allocator serialization;
		// logged loudly and never retried here.
		prometheus.RecordSkuAllocation("conflict")
		log.Error("SKU uniqueness violation despite allocator serialization",
			zap.String("human_sku", cErr.HumanSKU),
			zap.String("tenant_id", cErr.TenantID.String()))
		return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate SKU detected, inconsistent counter state"})
	default:
		prometheus.RecordSkuAllocation("storage_error")
		log.Error("Product creation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}
}
