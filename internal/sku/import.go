package sku

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sku-service/internal/model"
)

// ImportRow is one externally numbered record, typically exported from
// the legacy skus.db tool. Codes are normalized and SKUs recomposed on
// the way in, so derived identifiers stay recomputable from the code
// fields regardless of what the export contained.
type ImportRow struct {
	BrandCode       string           `json:"brand_code"`
	CategoryCode    string           `json:"category_code"`
	SubcategoryCode string           `json:"subcategory_code"`
	QuantityCode    string           `json:"quantity_code"`
	ProductSeq      string           `json:"product_seq"`
	FullProductName string           `json:"full_product_name"`
	CountryCode     *string          `json:"country_code,omitempty"`
	Note            *string          `json:"note,omitempty"`
	Barcode         *string          `json:"barcode,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`

	// Parsed form of ProductSeq, populated by validate.
	seq int
}

// ImportProducts inserts pre-numbered rows for a tenant in a single
// transaction, raising each row's counter to at least its sequence so
// subsequent live allocation never collides with an imported number.
func ImportProducts(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, rows []ImportRow) (int, error) {
	for i := range rows {
		if err := rows[i].validate(); err != nil {
			return 0, err
		}
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			key := NewKey(tenantID, r.BrandCode, r.CategoryCode, r.SubcategoryCode, r.QuantityCode)
			if err := EnsureAtLeast(tx, key, r.seq); err != nil {
				return err
			}

			productSeq := FormatSeq(r.seq)
			product := model.Product{
				ID:              uuid.New(),
				TenantID:        tenantID,
				HumanSKU:        ComposeHuman(key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode, productSeq),
				NumericSKU:      ComposeNumeric(key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode, productSeq),
				BrandCode:       key.BrandCode,
				CategoryCode:    key.CategoryCode,
				SubcategoryCode: key.SubcategoryCode,
				QuantityCode:    key.QuantityCode,
				ProductSeq:      productSeq,
				ProductSlug:     Slugify(r.FullProductName),
				FullProductName: r.FullProductName,
				CountryCode:     r.CountryCode,
				Note:            r.Note,
				Barcode:         r.Barcode,
				UnitPrice:       r.UnitPrice,
			}
			if err := tx.Create(&product).Error; err != nil {
				if isUniqueViolation(err) {
					return &ConflictError{TenantID: tenantID, HumanSKU: product.HumanSKU}
				}
				return &StorageError{Op: "product import", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *ImportRow) validate() error {
	in := CreateProductInput{
		BrandCode:       r.BrandCode,
		CategoryCode:    r.CategoryCode,
		SubcategoryCode: r.SubcategoryCode,
		QuantityCode:    r.QuantityCode,
		FullProductName: r.FullProductName,
		UnitPrice:       r.UnitPrice,
	}
	if err := in.Validate(); err != nil {
		return err
	}
	seq, err := strconv.Atoi(r.ProductSeq)
	if err != nil || seq < 1 {
		return &ValidationError{Field: "product_seq", Reason: "must be a positive integer"}
	}
	r.seq = seq
	return nil
}
