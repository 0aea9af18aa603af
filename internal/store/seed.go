package store

import (
	"time"

	"github.com/talkincode/inventorypro/internal/domain"
)

// demoProducts is the one-time bootstrap set used when no persisted
// collection exists.
func demoProducts() []domain.Product {
	now := time.Now().UnixMilli()
	return []domain.Product{
		{
			ID:                "1",
			Name:              "Wireless Noise Cancelling Headphones",
			SKU:               "AUDIO-WH1000",
			Stock:             12,
			BuyPrice:          15000,
			SellPrice:         22500,
			LowStockThreshold: 5,
			Images:            []string{},
			Description:       "Premium over-ear headphones with industry-leading noise cancellation and 30-hour battery life.",
			CreatedAt:         now,
		},
		{
			ID:                "2",
			Name:              "Vitamin C Serum 30ml",
			SKU:               "SKIN-VITC-30",
			Stock:             3,
			BuyPrice:          850,
			SellPrice:         1200,
			LowStockThreshold: 10,
			Images:            []string{},
			Description:       "Brightening serum for all skin types.",
			ExpiryDate:        "2025-12-31",
			CreatedAt:         now,
		},
	}
}
