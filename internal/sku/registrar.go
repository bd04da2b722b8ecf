package sku

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sku-service/internal/model"
)

const pgUniqueViolation = "23505"

// CreateProductInput carries the caller-supplied fields of a product
// creation request. The tenant id is deliberately absent: it comes
// from the authenticated context only.
type CreateProductInput struct {
	BrandCode       string           `json:"brand_code"`
	CategoryCode    string           `json:"category_code"`
	SubcategoryCode string           `json:"subcategory_code"`
	QuantityCode    string           `json:"quantity_code"`
	FullProductName string           `json:"full_product_name"`
	CountryCode     *string          `json:"country_code,omitempty"`
	Note            *string          `json:"note,omitempty"`
	Barcode         *string          `json:"barcode,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
}

// Validate rejects malformed input before any sequence number is
// consumed. Brand and category must fit their padded widths: anything
// longer would survive zero-padding unchanged and silently alias a
// differently-shaped key.
func (in *CreateProductInput) Validate() error {
	if strings.TrimSpace(in.FullProductName) == "" {
		return &ValidationError{Field: "full_product_name", Reason: "must not be empty"}
	}
	if err := validateCode("brand_code", in.BrandCode, 3); err != nil {
		return err
	}
	if err := validateCode("category_code", in.CategoryCode, 2); err != nil {
		return err
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return &ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}
	return nil
}

func validateCode(field, code string, maxLen int) error {
	if code == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(code) > maxLen {
		return &ValidationError{Field: field, Reason: "too long"}
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return &ValidationError{Field: field, Reason: "must be numeric"}
		}
	}
	return nil
}

// RegisterProduct turns a creation request plus the authenticated
// tenant into a persisted product. Counter increment and product
// insert share one transaction: either both commit or both roll back.
func RegisterProduct(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, in CreateProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key := NewKey(tenantID, in.BrandCode, in.CategoryCode, in.SubcategoryCode, in.QuantityCode)

	var product model.Product
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := AllocateNext(tx, key)
		if err != nil {
			return err
		}
		productSeq := FormatSeq(seq)

		product = model.Product{
			ID:              uuid.New(),
			TenantID:        tenantID,
			HumanSKU:        ComposeHuman(key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode, productSeq),
			NumericSKU:      ComposeNumeric(key.BrandCode, key.CategoryCode, key.SubcategoryCode, key.QuantityCode, productSeq),
			BrandCode:       key.BrandCode,
			CategoryCode:    key.CategoryCode,
			SubcategoryCode: key.SubcategoryCode,
			QuantityCode:    key.QuantityCode,
			ProductSeq:      productSeq,
			ProductSlug:     Slugify(in.FullProductName),
			FullProductName: in.FullProductName,
			CountryCode:     in.CountryCode,
			Note:            in.Note,
			Barcode:         in.Barcode,
			UnitPrice:       in.UnitPrice,
		}
		if err := tx.Create(&product).Error; err != nil {
			if isUniqueViolation(err) {
				return &ConflictError{TenantID: tenantID, HumanSKU: product.HumanSKU}
			}
			return &StorageError{Op: "product insert", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
