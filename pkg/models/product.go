package models

import "github.com/shopspring/decimal"

// Product is a sellable inventory SKU. StockQty is mutated only through
// stock movements, never directly by a sale.
type Product struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	StockQty          int             `json:"stockQty"`
	MinStockThreshold int             `json:"minStockThreshold"`
	Unit              string          `json:"unit"`
	CoverPhotoURL     string          `json:"coverPhotoUrl,omitempty"`
}

// LowStock reports whether the on-hand quantity reached the reorder line.
func (p Product) LowStock() bool {
	return p.StockQty <= p.MinStockThreshold
}
