package handler

import (
	"encoding/csv"
	"net/http"
	"time"

	"sku-service/internal/middleware"
	"sku-service/internal/model"
	"sku-service/pkg/database"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// utf8BOM helps Excel detect the encoding of the exported file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{
	"ID", "Human SKU", "Numeric SKU", "Brand Code", "Category Code",
	"Subcategory Code", "Quantity Code", "Product Seq", "Slug Name",
	"Product Name", "Country Code", "Note", "Barcode", "Created At",
}

// ExportProducts streams the tenant's catalog as CSV with the legacy
// tool's column layout.
func ExportProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("export")

	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		prometheus.TenantContextMissingCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}

	var products []model.Product
	defer prometheus.TrackDBOperation("query")(time.Now())
	result := database.GetDB().Where("tenant_id = ?", tenantID).Order("created_at").Find(&products)
	if result.Error != nil {
		log.Error("Failed to load products for export", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to export products"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="skus.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := c.Response().Write(utf8BOM); err != nil {
		return err
	}
	w := csv.NewWriter(c.Response())
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.ID.String(),
			p.HumanSKU,
			p.NumericSKU,
			p.BrandCode,
			p.CategoryCode,
			p.SubcategoryCode,
			p.QuantityCode,
			p.ProductSeq,
			p.ProductSlug,
			p.FullProductName,
			deref(p.CountryCode),
			deref(p.Note),
			deref(p.Barcode),
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	log.Info("Products exported",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("count", len(products)))
	return w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
