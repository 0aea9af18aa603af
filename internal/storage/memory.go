package storage

import (
	"encoding/json"
	"sync"

	"github.com/talkincode/inventorypro/internal/domain"
)

// MemoryRepository keeps the serialized collection in process memory. It
// round-trips through JSON exactly like BoltRepository so tests exercise the
// same serialization path.
type MemoryRepository struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	r.saves++
	return nil
}

func (r *MemoryRepository) Load() ([]domain.Product, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, false, nil
	}
	var products []domain.Product
	if err := json.Unmarshal(r.data, &products); err != nil {
		return nil, false, err
	}
	return products, true, nil
}

func (r *MemoryRepository) Close() error { return nil }

// SaveCount reports how many times Save has been called.
func (r *MemoryRepository) SaveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// Corrupt overwrites the stored payload with undecodable bytes.
func (r *MemoryRepository) Corrupt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = []byte("{not json")
}
