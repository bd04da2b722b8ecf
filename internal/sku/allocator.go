package sku

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Key identifies one sequence counter. All code fields must already be
// normalized (NormalizeBrand/NormalizeCategory/NormalizeSingle) so that
// requests differing only in padding collide on the same counter row.
type Key struct {
	TenantID        uuid.UUID
	BrandCode       string
	CategoryCode    string
	SubcategoryCode string
	QuantityCode    string
}

// NewKey normalizes raw code fields into an allocation key.
func NewKey(tenantID uuid.UUID, brandCode, categoryCode, subcategoryCode, quantityCode string) Key {
	return Key{
		TenantID:        tenantID,
		BrandCode:       NormalizeBrand(brandCode),
		CategoryCode:    NormalizeCategory(categoryCode),
		SubcategoryCode: NormalizeSingle(subcategoryCode),
		QuantityCode:    NormalizeSingle(quantityCode),
	}
}

// AllocateNext returns the next sequence number for the key, creating
// the counter row at 1 on first use. The increment-and-fetch runs as a
// single upsert so Postgres serializes concurrent callers on exactly
// the composite-key row; counters for other keys are never touched.
// Callers must pass the transaction the product insert will run in, so
// an aborted insert rolls the increment back with it.
func AllocateNext(tx *gorm.DB, key Key) (int, error) {
	var seq int
	err := tx.Raw(`
		INSERT INTO product_counters (tenant_id, brand_code, category_code, subcategory_code, quantity_code, counter)
		VALUES (?, ?, ?, ?, ?, 1)
		ON CONFLICT (tenant_id, brand_code, category_code, subcategory_code, quantity_code)
		DO UPDATE SET counter = product_counters.counter + 1
		RETURNING counter`,
		key.TenantID, key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode,
	).Scan(&seq).Error
	if err != nil {
		return 0, &StorageError{Op: "sequence allocation", Err: err}
	}
	return seq, nil
}

// EnsureAtLeast raises the stored counter to max(current, atLeast)
// without issuing a sequence number. Bulk import calls this per
// imported row so live allocation never re-issues an imported
// sequence. Idempotent.
func EnsureAtLeast(tx *gorm.DB, key Key, atLeast int) error {
	err := tx.Exec(`
		INSERT INTO product_counters (tenant_id, brand_code, category_code, subcategory_code, quantity_code, counter)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, brand_code, category_code, subcategory_code, quantity_code)
		DO UPDATE SET counter = GREATEST(product_counters.counter, EXCLUDED.counter)`,
		key.TenantID, key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode, atLeast,
	).Error
	if err != nil {
		return &StorageError{Op: "counter reconciliation", Err: err}
	}
	return nil
}
