package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/inventorypro/internal/domain"
	"github.com/talkincode/inventorypro/internal/storage"
)

func newTestStore(t *testing.T) (*InventoryStore, *storage.MemoryRepository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	s := NewInventoryStore(repo)
	require.NoError(t, s.Initialize())
	return s, repo
}

func sampleForm() domain.ProductFormData {
	return domain.ProductFormData{
		Name:              "USB-C Charging Cable 2m",
		SKU:               "CABLE-USBC-2M",
		Stock:             40,
		BuyPrice:          120,
		SellPrice:         250,
		LowStockThreshold: 8,
	}
}

func TestInitializeSeedsDemoData(t *testing.T) {
	s, _ := newTestStore(t)

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Wireless Noise Cancelling Headphones", products[0].Name)
	assert.Equal(t, "Vitamin C Serum 30ml", products[1].Name)
}

func TestInitializeDoesNotReseed(t *testing.T) {
	s, repo := newTestStore(t)
	s.Remove(s.Products()[0].ID)
	s.Remove(s.Products()[0].ID)

	// A persisted empty collection must survive a restart without reseeding.
	s2 := NewInventoryStore(repo)
	require.NoError(t, s2.Initialize())
	assert.Empty(t, s2.Products())
}

func TestInitializeReseedsOnCorruptData(t *testing.T) {
	_, repo := newTestStore(t)
	repo.Corrupt()

	s2 := NewInventoryStore(repo)
	require.NoError(t, s2.Initialize())
	assert.Len(t, s2.Products(), 2)
}

func TestAddPrependsAndAssignsIdentity(t *testing.T) {
	s, repo := newTestStore(t)
	before := len(s.Products())
	saves := repo.SaveCount()

	p := s.Add(sampleForm())

	assert.NotEmpty(t, p.ID)
	assert.NotZero(t, p.CreatedAt)
	assert.Equal(t, "USB-C Charging Cable 2m", p.Name)

	products := s.Products()
	require.Len(t, products, before+1)
	assert.Equal(t, p.ID, products[0].ID, "new products go to the front")
	assert.Equal(t, saves+1, repo.SaveCount(), "every mutation persists")

	p2 := s.Add(sampleForm())
	assert.NotEqual(t, p.ID, p2.ID)
}

func TestUpdateReplacesAllButIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	p := s.Add(sampleForm())

	form := sampleForm()
	form.Name = "USB-C Charging Cable 3m"
	form.Stock = 15
	updated, found := s.Update(p.ID, form)

	require.True(t, found)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "USB-C Charging Cable 3m", updated.Name)
	assert.Equal(t, 15, updated.Stock)
}

func TestUpdateUnknownIdIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Products()

	_, found := s.Update("no-such-id", sampleForm())

	assert.False(t, found)
	assert.Equal(t, before, s.Products())
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	s, _ := newTestStore(t)
	p := s.Add(sampleForm())

	adjusted, found := s.AdjustStock(p.ID, -5)
	require.True(t, found)
	assert.Equal(t, 0, adjusted.Stock)

	// Repeated decrements below zero stay at zero.
	adjusted, _ = s.AdjustStock(p.ID, adjusted.Stock-1)
	assert.Equal(t, 0, adjusted.Stock)

	adjusted, _ = s.AdjustStock(p.ID, 7)
	assert.Equal(t, 7, adjusted.Stock)
}

func TestAdjustStockUnknownIdIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Products()

	_, found := s.AdjustStock("no-such-id", 5)

	assert.False(t, found)
	assert.Equal(t, before, s.Products())
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	p := s.Add(sampleForm())
	before := len(s.Products())

	assert.True(t, s.Remove(p.ID))
	assert.Len(t, s.Products(), before-1)

	_, found := s.Get(p.ID)
	assert.False(t, found)

	// Removing a nonexistent id leaves the collection unchanged.
	after := s.Products()
	assert.False(t, s.Remove(p.ID))
	assert.Equal(t, after, s.Products())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t)

	snapshot := s.Products()
	snapshot[0].Name = "mutated"
	snapshot[0].Stock = 9999

	fresh := s.Products()
	assert.NotEqual(t, "mutated", fresh[0].Name)
	assert.NotEqual(t, 9999, fresh[0].Stock)
}

func TestPersistedStateMatchesMemory(t *testing.T) {
	s, repo := newTestStore(t)
	p := s.Add(sampleForm())
	s.AdjustStock(p.ID, 3)

	stored, present, err := repo.Load()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, s.Products(), stored)
}

func TestReseed(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add(sampleForm())

	s.Reseed()

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Wireless Noise Cancelling Headphones", products[0].Name)
}
