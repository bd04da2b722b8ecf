package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents one tenant-scoped catalog entry. The five code
// fields plus ProductSeq are the allocation key and issued sequence;
// HumanSKU and NumericSKU are derived from them and never set directly.
type Product struct {
	ID              uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID        uuid.UUID        `json:"tenant_id" gorm:"type:uuid;index;not null;uniqueIndex:uq_products_tenant_human_sku"`
	HumanSKU        string           `json:"human_sku" gorm:"column:human_sku;type:varchar(64);not null;index;uniqueIndex:uq_products_tenant_human_sku"`
	NumericSKU      string           `json:"numeric_sku" gorm:"column:numeric_sku;type:varchar(32);not null;index"`
	BrandCode       string           `json:"brand_code" gorm:"type:varchar(8);not null"`
	CategoryCode    string           `json:"category_code" gorm:"type:varchar(8);not null"`
	SubcategoryCode string           `json:"subcategory_code" gorm:"type:varchar(8);not null"`
	QuantityCode    string           `json:"quantity_code" gorm:"type:varchar(8);not null"`
	ProductSeq      string           `json:"product_seq" gorm:"type:varchar(8);not null"`
	ProductSlug     string           `json:"product_slug" gorm:"type:varchar(255)"`
	FullProductName string           `json:"full_product_name" gorm:"type:varchar(255);not null"`
	CountryCode     *string          `json:"country_code,omitempty" gorm:"type:varchar(16)"`
	Note            *string          `json:"note,omitempty" gorm:"type:varchar(512)"`
	Barcode         *string          `json:"barcode,omitempty" gorm:"type:varchar(64)"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty" gorm:"type:numeric(12,2)"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ProductCounter stores the last issued sequence number for one
// allocation key. Rows are created at 1 on first allocation and only
// ever written by the allocator.
type ProductCounter struct {
	TenantID        uuid.UUID `json:"tenant_id" gorm:"type:uuid;primaryKey"`
	BrandCode       string    `json:"brand_code" gorm:"type:varchar(8);primaryKey"`
	CategoryCode    string    `json:"category_code" gorm:"type:varchar(8);primaryKey"`
	SubcategoryCode string    `json:"subcategory_code" gorm:"type:varchar(8);primaryKey"`
	QuantityCode    string    `json:"quantity_code" gorm:"type:varchar(8);primaryKey"`
	Counter         int       `json:"counter" gorm:"not null;default:0"`
}

func (ProductCounter) TableName() string { return "product_counters" }
