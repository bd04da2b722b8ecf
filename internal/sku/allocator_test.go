package sku

import (
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sku-service/internal/model"
)

func TestAllocateNextSequential(t *testing.T) {
	db := testDB(t)
	key := testKey(uuid.New())

	// Sequential allocations for one key return exactly 1..N.
	for want := 1; want <= 5; want++ {
		seq, err := AllocateNext(db, key)
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}

	var counter model.ProductCounter
	require.NoError(t, db.Where(&model.ProductCounter{
		TenantID:        key.TenantID,
		BrandCode:       key.BrandCode,
		CategoryCode:    key.CategoryCode,
		SubcategoryCode: key.SubcategoryCode,
		QuantityCode:    key.QuantityCode,
	}).Take(&counter).Error)
	assert.Equal(t, 5, counter.Counter)
}

func TestAllocateNextKeyIsolation(t *testing.T) {
	db := testDB(t)
	tenantID := uuid.New()
	keyA := NewKey(tenantID, "1", "1", "1", "1")
	keyB := NewKey(tenantID, "2", "1", "1", "1")

	// Interleaved allocations for two keys never perturb each other.
	seqs := make(map[string][]int)
	for i := 0; i < 3; i++ {
		a, err := AllocateNext(db, keyA)
		require.NoError(t, err)
		b, err := AllocateNext(db, keyB)
		require.NoError(t, err)
		seqs["a"] = append(seqs["a"], a)
		seqs["b"] = append(seqs["b"], b)
	}
	assert.Equal(t, []int{1, 2, 3}, seqs["a"])
	assert.Equal(t, []int{1, 2, 3}, seqs["b"])
}

func TestAllocateNextTenantIsolation(t *testing.T) {
	db := testDB(t)

	// Identical codes under different tenants get independent sequences.
	keyA := testKey(uuid.New())
	keyB := testKey(uuid.New())

	a, err := AllocateNext(db, keyA)
	require.NoError(t, err)
	b, err := AllocateNext(db, keyB)
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestAllocateNextConcurrent(t *testing.T) {
	db := testDB(t)
	key := testKey(uuid.New())

	const workers = 50
	results := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = AllocateNext(db, key)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	// The returned set must be exactly {1..workers}: no duplicates, no
	// gaps, regardless of interleaving.
	sort.Ints(results)
	for i, got := range results {
		assert.Equal(t, i+1, got)
	}
}

func TestEnsureAtLeast(t *testing.T) {
	db := testDB(t)
	key := testKey(uuid.New())

	// Creates the row when missing.
	require.NoError(t, EnsureAtLeast(db, key, 7))
	seq, err := AllocateNext(db, key)
	require.NoError(t, err)
	assert.Equal(t, 8, seq)

	// Never lowers an existing counter.
	require.NoError(t, EnsureAtLeast(db, key, 3))
	seq, err = AllocateNext(db, key)
	require.NoError(t, err)
	assert.Equal(t, 9, seq)

	// Idempotent.
	require.NoError(t, EnsureAtLeast(db, key, 20))
	require.NoError(t, EnsureAtLeast(db, key, 20))
	seq, err = AllocateNext(db, key)
	require.NoError(t, err)
	assert.Equal(t, 21, seq)
}

func TestAllocationRollsBackWithTransaction(t *testing.T) {
	db := testDB(t)
	key := testKey(uuid.New())

	// An aborted transaction surrenders its increment entirely.
	tx := db.Begin()
	require.NoError(t, tx.Error)
	seq, err := AllocateNext(tx, key)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
	require.NoError(t, tx.Rollback().Error)

	seq, err = AllocateNext(db, key)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
}
