// Package storage persists the serialized product collection under a fixed
// slot in an embedded key-value store.
package storage

import (
	"github.com/talkincode/inventorypro/internal/domain"
)

// Repository handles durable storage of the full product collection.
//
// The collection is always written and read as one unit; there is no
// partial or incremental persistence.
type Repository interface {
	// Save serializes the full collection and writes it to the fixed slot.
	Save(products []domain.Product) error

	// Load reads and deserializes the stored collection. The second return
	// value is false when no entry exists or the payload cannot be decoded,
	// signaling the caller to seed demonstration data. A decode failure is
	// additionally reported through the error for logging.
	Load() ([]domain.Product, bool, error)

	// Close releases the underlying store.
	Close() error
}
