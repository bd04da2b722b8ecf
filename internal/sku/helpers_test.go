package sku

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sku-service/internal/model"
)

var testTenantID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// testDB opens the test database named by TEST_DATABASE_DSN, skipping
// the test when it is unset. Tests allocate under freshly generated
// tenant ids, so runs never interfere with each other and no cleanup
// between tests is needed.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping database-backed test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.ProductCounter{}))
	return db
}

func testKey(tenantID uuid.UUID) Key {
	return NewKey(tenantID, "1", "1", "1", "1")
}
