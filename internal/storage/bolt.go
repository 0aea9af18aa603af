package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/talkincode/inventorypro/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketName  = "inventory"
	productsKey = "inventory_products"
)

// BoltRepository is the bbolt implementation of Repository. One bucket, one
// fixed key, value = JSON array of products.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository opens (or creates) the database file and ensures the
// inventory bucket exists.
func NewBoltRepository(filename string) (*BoltRepository, error) {
	db, err := bolt.Open(filename, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open inventory store %s: %w", filename, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create inventory bucket: %w", err)
	}
	return &BoltRepository{db: db}, nil
}

func (r *BoltRepository) Save(products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("serialize products: %w", err)
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(productsKey), data)
	})
}

func (r *BoltRepository) Load() ([]domain.Product, bool, error) {
	var data []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(productsKey)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// A corrupt slot is treated the same as an absent one.
		return nil, false, fmt.Errorf("deserialize products: %w", err)
	}
	return products, true, nil
}

func (r *BoltRepository) Close() error {
	return r.db.Close()
}
