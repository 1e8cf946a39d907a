// internal/models/product.go
package models

import "time"

// Product is a catalog entry. IDs are plain integers (they travel through
// route params and client-side storage, so they stay small and stable).
// JSON tags follow the wire contract consumed by the storefront client.
type Product struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	OldPrice  float64   `json:"oldPrice" gorm:"column:old_price;type:decimal(10,2)"`
	Discount  int       `json:"discount" gorm:"default:0"`
	IsNew     bool      `json:"isNew" gorm:"column:is_new;default:false"`
	WasBought bool      `json:"wasBought" gorm:"column:was_bought;default:false"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
