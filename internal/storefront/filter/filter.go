// internal/storefront/filter/filter.go

// Package filter applies price-range filtering and show-more pagination
// to a category's product subset. The pager keeps two criteria sets: the
// draft being edited and the applied set actually affecting results.
package filter

import (
	"sync"

	"github.com/severyanochka/storefront-backend/internal/storefront/category"
)

// Page size and increment of the "show more" pagination.
const DefaultPageSize = 6

// Criteria is a price-range predicate. Nil bounds mean unbounded.
// InStock is collected by the filter form but never applied: the catalog
// carries no stock attribute, and inventing one here would be worse than
// ignoring the checkbox.
type Criteria struct {
	PriceMin *float64
	PriceMax *float64
	InStock  bool
}

// Matches tests a price against the range, inclusive on both ends.
func (c Criteria) Matches(price float64) bool {
	if c.PriceMin != nil && price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && price > *c.PriceMax {
		return false
	}
	return true
}

// Bounds is the (min, max) price of an unfiltered category subset, used
// as placeholder hints in the filter form.
type Bounds struct {
	Min float64
	Max float64
}

// PriceBounds computes the bounds once per category view. An empty
// subset yields the degenerate (0, 0).
func PriceBounds(products []category.CategorizedProduct) Bounds {
	if len(products) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < b.Min {
			b.Min = p.Price
		}
		if p.Price > b.Max {
			b.Max = p.Price
		}
	}
	return b
}

// Pager holds the draft and applied criteria plus the growing visible
// count. Applying or resetting filters restarts pagination from the top,
// so a result page never mixes pre- and post-filter entries.
type Pager struct {
	mu       sync.Mutex
	draft    Criteria
	applied  Criteria
	visible  int
	pageSize int
}

func NewPager() *Pager {
	return &Pager{visible: DefaultPageSize, pageSize: DefaultPageSize}
}

// SetDraft stages criteria without affecting results.
func (p *Pager) SetDraft(c Criteria) {
	p.mu.Lock()
	p.draft = c
	p.mu.Unlock()
}

func (p *Pager) Draft() Criteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft
}

func (p *Pager) Applied() Criteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.applied
}

// Apply commits the draft and resets the visible count.
func (p *Pager) Apply() {
	p.mu.Lock()
	p.applied = p.draft
	p.visible = p.pageSize
	p.mu.Unlock()
}

// Reset clears both criteria sets to unbounded and resets the visible
// count.
func (p *Pager) Reset() {
	p.mu.Lock()
	p.draft = Criteria{}
	p.applied = Criteria{}
	p.visible = p.pageSize
	p.mu.Unlock()
}

// ShowMore grows the visible count by one page. It never shrinks.
func (p *Pager) ShowMore() {
	p.mu.Lock()
	p.visible += p.pageSize
	p.mu.Unlock()
}

func (p *Pager) Visible() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Page filters the subset by the applied criteria and returns the first
// visible entries plus whether more remain beyond them.
func (p *Pager) Page(products []category.CategorizedProduct) ([]category.CategorizedProduct, bool) {
	p.mu.Lock()
	applied := p.applied
	visible := p.visible
	p.mu.Unlock()

	filtered := make([]category.CategorizedProduct, 0, len(products))
	for _, prod := range products {
		if applied.Matches(prod.Price) {
			filtered = append(filtered, prod)
		}
	}

	more := len(filtered) > visible
	if len(filtered) > visible {
		filtered = filtered[:visible]
	}
	return filtered, more
}
