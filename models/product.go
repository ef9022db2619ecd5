package models

import "time"

type ProductCategory string

const (
	CategoryLingerie    ProductCategory = "lingerie"
	CategoryPajamas     ProductCategory = "pajamas"
	CategorySets        ProductCategory = "sets"
	CategoryAccessories ProductCategory = "accessories"
)

// Categories lists every product category in display order.
var Categories = []ProductCategory{CategoryLingerie, CategoryPajamas, CategorySets, CategoryAccessories}

// LowStockThreshold is the stock level at or below which a product shows up
// on the restock list.
const LowStockThreshold = 10

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	SKU          string          `json:"sku"`
	Stock        int             `json:"stock"`
	CostPrice    float64         `json:"costPrice"`
	SellingPrice float64         `json:"sellingPrice"`
	Image        string          `json:"image"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// UnitProfit is selling price minus cost price. Selling below cost is
// allowed, so the result may be negative.
func (p Product) UnitProfit() float64 {
	return p.SellingPrice - p.CostPrice
}

// LowStock reports whether the product needs restocking.
func (p Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}
