package domain

// Product is the unit of inventory. JSON field names match the persisted
// layout, so a collection serialized by an older deployment loads unchanged.
type Product struct {
	ID                string   `json:"id" form:"id"`
	Name              string   `json:"name" form:"name"`
	SKU               string   `json:"sku,omitempty" form:"sku"`
	Stock             int      `json:"stock" form:"stock"`
	BuyPrice          float64  `json:"buyPrice" form:"buyPrice"`
	SellPrice         float64  `json:"sellPrice" form:"sellPrice"`
	LowStockThreshold int      `json:"lowStockThreshold" form:"lowStockThreshold"`
	Images            []string `json:"images"`
	Description       string   `json:"description,omitempty" form:"description"`
	ExpiryDate        string   `json:"expiryDate,omitempty" form:"expiryDate"`
	CreatedAt         int64    `json:"createdAt"`
}

// LowStock reports whether the product is at or below its threshold.
// The comparison is inclusive: stock == threshold counts as low.
func (p Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// Clone returns a deep copy so readers can never mutate store-owned state.
func (p Product) Clone() Product {
	c := p
	if p.Images != nil {
		c.Images = make([]string, len(p.Images))
		copy(c.Images, p.Images)
	}
	return c
}

// ProductFormData carries every caller-editable field of a product.
// ID and CreatedAt are assigned by the store and never accepted from callers.
type ProductFormData struct {
	Name              string   `json:"name" validate:"required,min=1,max=200"`
	SKU               string   `json:"sku"`
	Stock             int      `json:"stock"`
	BuyPrice          float64  `json:"buyPrice"`
	SellPrice         float64  `json:"sellPrice"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Images            []string `json:"images"`
	Description       string   `json:"description"`
	ExpiryDate        string   `json:"expiryDate"`
}

// FilterSpec controls which products a derived view includes.
//
// MinStock/MaxStock exist in the wire shape for forward compatibility but
// are not read by the filtering predicate; range filtering is out of scope.
type FilterSpec struct {
	Search       string `json:"search" query:"q"`
	MinStock     *int   `json:"minStock,omitempty"`
	MaxStock     *int   `json:"maxStock,omitempty"`
	OnlyLowStock bool   `json:"onlyLowStock" query:"low_stock"`
}

// DerivedStats are aggregate counts and monetary totals computed from the
// collection on demand. They are never stored.
//
// The stock-state counts are overlapping views: a product with
// 0 < stock <= threshold counts as both InStock and LowStock.
type DerivedStats struct {
	Total          int     `json:"total"`
	InStock        int     `json:"inStock"`
	OutOfStock     int     `json:"outOfStock"`
	LowStock       int     `json:"lowStock"`
	HealthyStock   int     `json:"healthyStock"`
	TotalBuyValue  float64 `json:"totalBuyValue"`
	TotalSellValue float64 `json:"totalSellValue"`
}
