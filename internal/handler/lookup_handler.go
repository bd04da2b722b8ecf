package handler

import (
	"net/http"

	"sku-service/internal/sku"

	"github.com/labstack/echo/v4"
)

// Reference-data lookups backing the SKU form: plain static maps, no
// tenant scoping.

// GetCategoryMap returns category layout (code -> name + subcategories)
func GetCategoryMap(c echo.Context) error {
	return c.JSON(http.StatusOK, sku.CategoryMap)
}

// GetVendorMap returns vendor (brand) layout (code -> name)
func GetVendorMap(c echo.Context) error {
	return c.JSON(http.StatusOK, sku.VendorMap)
}

// GetQuantityMap returns quantity layout (code -> label e.g. 250g/ml)
func GetQuantityMap(c echo.Context) error {
	return c.JSON(http.StatusOK, sku.QuantityMap)
}
