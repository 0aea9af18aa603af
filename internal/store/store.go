// Package store owns the authoritative in-memory product collection and
// synchronizes every mutation to the persistence repository.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/talkincode/inventorypro/internal/domain"
	"github.com/talkincode/inventorypro/internal/storage"
	"go.uber.org/zap"
)

// InventoryStore is the sole writer of the product collection. Newly created
// products are prepended, so insertion order is display order, newest first.
type InventoryStore struct {
	mu       sync.Mutex
	repo     storage.Repository
	products []domain.Product
}

func NewInventoryStore(repo storage.Repository) *InventoryStore {
	return &InventoryStore{repo: repo}
}

// Initialize loads the collection from the repository. When no usable
// persisted data exists it seeds the demonstration set once and persists it.
// An already-persisted empty collection is left as is.
func (s *InventoryStore) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, present, err := s.repo.Load()
	if err != nil {
		zap.L().Warn("stored inventory unreadable, reseeding", zap.Error(err))
	}
	if !present {
		s.products = demoProducts()
		s.persistLocked()
		zap.L().Info("inventory seeded with demonstration products",
			zap.Int("count", len(s.products)))
		return nil
	}
	s.products = products
	zap.L().Info("inventory loaded", zap.Int("count", len(s.products)))
	return nil
}

// Products returns a snapshot copy of the collection in display order.
func (s *InventoryStore) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Get returns a copy of the product with the given id.
func (s *InventoryStore) Get(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Product{}, false
}

// Add creates a product from caller-validated form data, assigns a fresh id
// and creation timestamp, prepends it to the collection and persists.
func (s *InventoryStore) Add(form domain.ProductFormData) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:                uuid.NewString(),
		Name:              form.Name,
		SKU:               form.SKU,
		Stock:             form.Stock,
		BuyPrice:          form.BuyPrice,
		SellPrice:         form.SellPrice,
		LowStockThreshold: form.LowStockThreshold,
		Images:            form.Images,
		Description:       form.Description,
		ExpiryDate:        form.ExpiryDate,
		CreatedAt:         time.Now().UnixMilli(),
	}
	s.products = append([]domain.Product{p}, s.products...)
	s.persistLocked()
	return p.Clone()
}

// Update replaces every field except id and createdAt. An unknown id leaves
// the collection unchanged; the boolean reports whether the product existed.
func (s *InventoryStore) Update(id string, form domain.ProductFormData) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Name = form.Name
		p.SKU = form.SKU
		p.Stock = form.Stock
		p.BuyPrice = form.BuyPrice
		p.SellPrice = form.SellPrice
		p.LowStockThreshold = form.LowStockThreshold
		p.Images = form.Images
		p.Description = form.Description
		p.ExpiryDate = form.ExpiryDate
		s.persistLocked()
		return p.Clone(), true
	}
	return domain.Product{}, false
}

// AdjustStock sets stock to max(0, newStock). An unknown id leaves the
// collection unchanged.
func (s *InventoryStore) AdjustStock(id string, newStock int) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if newStock < 0 {
			newStock = 0
		}
		s.products[i].Stock = newStock
		s.persistLocked()
		return s.products[i].Clone(), true
	}
	return domain.Product{}, false
}

// Remove deletes the product with the given id if present. The caller is
// responsible for any user confirmation; the store performs none.
func (s *InventoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	s.persistLocked()
	return false
}

// Reseed replaces the collection with the demonstration set and persists.
// Used by the explicit reset command only, never on normal startup.
func (s *InventoryStore) Reseed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = demoProducts()
	s.persistLocked()
}

// persistLocked writes the full collection to the repository. Persistence is
// best effort: a failed save is logged and never propagated to the caller.
func (s *InventoryStore) persistLocked() {
	if err := s.repo.Save(s.products); err != nil {
		zap.L().Error("inventory persist failed", zap.Error(err))
	}
}
