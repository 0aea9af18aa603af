package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/inventorypro/internal/domain"
	bolt "go.etcd.io/bbolt"
)

func newBoltRepo(t *testing.T) *BoltRepository {
	t.Helper()
	repo, err := NewBoltRepository(filepath.Join(t.TempDir(), "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestBoltLoadAbsent(t *testing.T) {
	repo := newBoltRepo(t)

	products, present, err := repo.Load()
	require.NoError(t, err)
	assert.False(t, present)
	assert.Nil(t, products)
}

func TestBoltRoundTrip(t *testing.T) {
	repo := newBoltRepo(t)

	products := []domain.Product{
		{
			ID:                "a1",
			Name:              "Wireless Noise Cancelling Headphones",
			SKU:               "AUDIO-WH1000",
			Stock:             12,
			BuyPrice:          15000,
			SellPrice:         22500,
			LowStockThreshold: 5,
			Images:            []string{"data:image/png;base64,iVBORw0KGgo="},
			Description:       "Premium over-ear headphones.",
			ExpiryDate:        "2025-12-31",
			CreatedAt:         1700000000000,
		},
		{
			// All optional fields absent.
			ID:        "a2",
			Name:      "Vitamin C Serum 30ml",
			Stock:     0,
			CreatedAt: 1700000000001,
		},
	}
	require.NoError(t, repo.Save(products))

	loaded, present, err := repo.Load()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, products, loaded)
}

func TestBoltRoundTripEmptyCollection(t *testing.T) {
	repo := newBoltRepo(t)

	require.NoError(t, repo.Save([]domain.Product{}))

	loaded, present, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, present, "a persisted empty collection is present, not absent")
	assert.Empty(t, loaded)
}

func TestBoltSaveOverwrites(t *testing.T) {
	repo := newBoltRepo(t)

	require.NoError(t, repo.Save([]domain.Product{{ID: "a1", Name: "first", CreatedAt: 1}}))
	require.NoError(t, repo.Save([]domain.Product{{ID: "a2", Name: "second", CreatedAt: 2}}))

	loaded, present, err := repo.Load()
	require.NoError(t, err)
	require.True(t, present)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a2", loaded[0].ID)
}

func TestBoltCorruptSlotIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	repo, err := NewBoltRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save([]domain.Product{{ID: "a1", Name: "x", CreatedAt: 1}}))
	require.NoError(t, repo.Close())

	// Scribble over the slot directly.
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(productsKey), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	repo, err = NewBoltRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	products, present, err := repo.Load()
	assert.Error(t, err)
	assert.False(t, present, "an undecodable slot signals absent so the caller reseeds")
	assert.Nil(t, products)
}
