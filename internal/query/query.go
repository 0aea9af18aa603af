// Package query derives filtered views and aggregate statistics from a
// product collection snapshot. All functions are pure: no side effects,
// no mutation of the input.
package query

import (
	"strings"

	"github.com/talkincode/inventorypro/internal/domain"
)

// Filter returns the products matching spec, preserving input order.
//
// A product is included iff the search term is empty or contained
// case-insensitively in its name or SKU, and, when OnlyLowStock is set,
// its stock is at or below its threshold. The MinStock/MaxStock fields of
// the spec are intentionally not applied.
func Filter(products []domain.Product, spec domain.FilterSpec) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if spec.OnlyLowStock && !p.LowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ComputeStats produces the aggregate counts and monetary totals for the
// collection in a single pass. An empty collection yields all zeros.
func ComputeStats(products []domain.Product) domain.DerivedStats {
	var stats domain.DerivedStats
	stats.Total = len(products)
	for _, p := range products {
		switch {
		case p.Stock == 0:
			stats.OutOfStock++
		default:
			stats.InStock++
		}
		if p.Stock > 0 && p.LowStock() {
			stats.LowStock++
		}
		if !p.LowStock() {
			stats.HealthyStock++
		}
		stats.TotalBuyValue += p.BuyPrice * float64(p.Stock)
		stats.TotalSellValue += p.SellPrice * float64(p.Stock)
	}
	return stats
}
