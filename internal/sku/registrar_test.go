package sku

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sku-service/internal/model"
)

func productInput(name string) CreateProductInput {
	return CreateProductInput{
		BrandCode:       "1",
		CategoryCode:    "1",
		SubcategoryCode: "1",
		QuantityCode:    "1",
		FullProductName: name,
	}
}

func TestRegisterProduct(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	ctx := context.Background()

	first, err := RegisterProduct(ctx, db, tenantID, productInput("Product A1"))
	require.NoError(t, err)
	assert.Equal(t, "001-01-1-1-01", first.HumanSKU)
	assert.Equal(t, "001011101", first.NumericSKU)
	assert.Equal(t, "001", first.BrandCode)
	assert.Equal(t, "01", first.CategoryCode)
	assert.Equal(t, "01", first.ProductSeq)
	assert.Equal(t, "product-a1", first.ProductSlug)
	assert.Equal(t, tenantID, first.TenantID)
	assert.NotEqual(t, uuid.Nil, first.ID)

	second, err := RegisterProduct(ctx, db, tenantID, productInput("Product A2"))
	require.NoError(t, err)
	assert.Equal(t, "001-01-1-1-02", second.HumanSKU)
	assert.Equal(t, "001011102", second.NumericSKU)
}

func TestRegisterProductValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateProductInput
		field string
	}{
		{
			name: "empty name",
			input: CreateProductInput{
				BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
			},
			field: "full_product_name",
		},
		{
			name: "whitespace name",
			input: CreateProductInput{
				BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
				FullProductName: "   ",
			},
			field: "full_product_name",
		},
		{
			name: "brand too long",
			input: CreateProductInput{
				BrandCode: "1234", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
				FullProductName: "Product",
			},
			field: "brand_code",
		},
		{
			name: "brand not numeric",
			input: CreateProductInput{
				BrandCode: "1a", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
				FullProductName: "Product",
			},
			field: "brand_code",
		},
		{
			name: "category too long",
			input: CreateProductInput{
				BrandCode: "1", CategoryCode: "123", SubcategoryCode: "1", QuantityCode: "1",
				FullProductName: "Product",
			},
			field: "category_code",
		},
		{
			name: "negative price",
			input: func() CreateProductInput {
				in := productInput("Product")
				price := decimal.NewFromFloat(-1.50)
				in.UnitPrice = &price
				return in
			}(),
			field: "unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestRejectedRequestConsumesNoSequence(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	ctx := context.Background()

	_, err := RegisterProduct(ctx, db, tenantID, productInput(""))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// The counter for that key must be untouched: the next successful
	// registration gets sequence 1, not 2.
	p, err := RegisterProduct(ctx, db, tenantID, productInput("Product A1"))
	require.NoError(t, err)
	assert.Equal(t, "01", p.ProductSeq)
}

func TestRegisterProductTenantIsolation(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	a, err := RegisterProduct(ctx, db, uuid.New(), productInput("Product A"))
	require.NoError(t, err)
	b, err := RegisterProduct(ctx, db, uuid.New(), productInput("Product B"))
	require.NoError(t, err)

	// Same codes, different tenants: both start at sequence 01.
	assert.Equal(t, "01", a.ProductSeq)
	assert.Equal(t, "01", b.ProductSeq)
	assert.Equal(t, a.HumanSKU, b.HumanSKU)
	assert.NotEqual(t, a.TenantID, b.TenantID)
}

func TestRegisterProductNormalizesKeyBeforeAllocation(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	ctx := context.Background()

	in1 := productInput("Product A")
	in1.SubcategoryCode = "12"
	first, err := RegisterProduct(ctx, db, tenantID, in1)
	require.NoError(t, err)

	in2 := productInput("Product B")
	in2.SubcategoryCode = "2"
	second, err := RegisterProduct(ctx, db, tenantID, in2)
	require.NoError(t, err)

	// "12" and "2" share a counter, so the second request continues the
	// first one's sequence.
	assert.Equal(t, "2", first.SubcategoryCode)
	assert.Equal(t, "2", second.SubcategoryCode)
	assert.Equal(t, "01", first.ProductSeq)
	assert.Equal(t, "02", second.ProductSeq)
}

func TestRegisterProductOptionalFields(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	ctx := context.Background()

	country := "KR"
	note := "spicy instant ramen"
	barcode := "8801073113336"
	price := decimal.NewFromFloat(1.49)

	in := productInput("Shin Ramyun 120g")
	in.CountryCode = &country
	in.Note = &note
	in.Barcode = &barcode
	in.UnitPrice = &price

	p, err := RegisterProduct(ctx, db, tenantID, in)
	require.NoError(t, err)

	var stored model.Product
	require.NoError(t, db.First(&stored, "id = ?", p.ID).Error)
	assert.Equal(t, "shin-ramyun-120g", stored.ProductSlug)
	require.NotNil(t, stored.CountryCode)
	assert.Equal(t, "KR", *stored.CountryCode)
	require.NotNil(t, stored.UnitPrice)
	assert.True(t, price.Equal(*stored.UnitPrice))
}

func TestImportProductsThenAllocate(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	ctx := context.Background()

	rows := []ImportRow{
		{BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
			ProductSeq: "3", FullProductName: "Imported Three"},
		{BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
			ProductSeq: "7", FullProductName: "Imported Seven"},
	}
	count, err := ImportProducts(ctx, db, tenantID, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Imported rows carry recomposed SKUs.
	var imported model.Product
	require.NoError(t, db.Where("tenant_id = ? AND product_seq = ?", tenantID, "07").Take(&imported).Error)
	assert.Equal(t, "001-01-1-1-07", imported.HumanSKU)

	// Live allocation continues past the highest imported sequence.
	p, err := RegisterProduct(ctx, db, tenantID, productInput("Fresh Product"))
	require.NoError(t, err)
	assert.Equal(t, "08", p.ProductSeq)
}

func TestImportProductsRejectsBadSeq(t *testing.T) {
	rows := []ImportRow{
		{BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
			ProductSeq: "abc", FullProductName: "Broken"},
	}
	_, err := ImportProducts(context.Background(), testDB(t), uuid.New(), rows)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "product_seq", vErr.Field)
}

func TestImportRowValidateParsesSeq(t *testing.T) {
	// validate is the single place the sequence string is parsed; the
	// insert path reads the parsed value and never re-parses.
	row := ImportRow{BrandCode: "1", CategoryCode: "1", SubcategoryCode: "1", QuantityCode: "1",
		ProductSeq: "12", FullProductName: "Parsed"}
	require.NoError(t, row.validate())
	assert.Equal(t, 12, row.seq)
}
