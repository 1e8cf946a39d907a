// internal/storefront/catalog/product.go

// Package catalog holds the product list as last fetched from the
// catalog service and the client that fetches it.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductID is the canonical identifier type. Ids arrive as numbers in
// stored JSON, as strings in route parameters and as either in component
// props; everything is normalized to a ProductID at the boundary so
// lookups never compare mixed types.
type ProductID int64

// ParseID normalizes a string identifier (route parameter, form value).
func ParseID(raw string) (ProductID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", raw, err)
	}
	return ProductID(n), nil
}

func (id ProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Product mirrors one item of the catalog service response. Immutable
// for the lifetime of a catalog load; the whole list is replaced on
// refetch.
type Product struct {
	ID        ProductID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	OldPrice  float64   `json:"oldPrice"`
	Discount  int       `json:"discount"`
	IsNew     bool      `json:"isNew"`
	WasBought bool      `json:"wasBought"`
}

// UnmarshalJSON defaults a missing or null oldPrice to the current
// price, so discount badges degrade to "no savings" instead of a bogus
// negative delta.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		OldPrice *float64 `json:"oldPrice"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.OldPrice != nil {
		p.OldPrice = *aux.OldPrice
	} else {
		p.OldPrice = p.Price
	}
	return nil
}
