// internal/models/category.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// CategoryRule is one row of the classifier rule table. Rules are data,
// not logic: the storefront client fetches them and matches keyword
// substrings against lower-cased product titles in Position order.
// Position is part of the contract: the first matching rule wins.
type CategoryRule struct {
	ID        uint           `json:"-" gorm:"primaryKey"`
	Position  int            `json:"position" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Keywords  pq.StringArray `json:"keywords" gorm:"type:text[];not null"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

func (CategoryRule) TableName() string {
	return "category_rules"
}
