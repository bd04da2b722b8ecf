package handler

import (
	"net/http"
	"time"

	"sku-service/internal/middleware"
	"sku-service/internal/sku"
	"sku-service/pkg/database"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ImportProducts ingests pre-numbered rows (e.g. a legacy skus.db
// export) for the authenticated tenant. Counters are raised to the
// imported sequences so live allocation continues past them.
func ImportProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("import")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}

	var req struct {
		Rows []sku.ImportRow `json:"rows"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid import payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Rows) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows must not be empty"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	count, err := sku.ImportProducts(c.Request().Context(), database.GetDB(), tenantID, req.Rows)
	if err != nil {
		return writeRegisterError(c, log, err)
	}

	prometheus.ImportedProductsCounter.Add(float64(count))
	log.Info("Products imported",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("count", count))
	return c.JSON(http.StatusCreated, echo.Map{"imported": count})
}
