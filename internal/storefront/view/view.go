// internal/storefront/view/view.go

// Package view derives read-only aggregates from the catalog and the
// current selections. Nothing here is stored: a View is a pure function
// of its two inputs, memoized on their versions.
package view

import (
	"fmt"
	"sync"

	"github.com/severyanochka/storefront-backend/internal/storefront/catalog"
	"github.com/severyanochka/storefront-backend/internal/storefront/selection"
)

// DetailedCartLine joins a cart line with its catalog product at
// computation time. When the product is missing from the current catalog
// the line keeps its quantity behind a zero-priced placeholder, so a
// previously purchased item still renders if the catalog fails to load.
type DetailedCartLine struct {
	ID          catalog.ProductID
	Title       string
	Price       float64
	OldPrice    float64
	Discount    int
	Qty         int
	Placeholder bool
}

// LineTotal is the line's contribution to the cart total.
func (l DetailedCartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}

// View is one consistent snapshot of every derived aggregate.
type View struct {
	favorites     map[catalog.ProductID]bool
	cartQty       map[catalog.ProductID]int
	cartLineCount int
	cartLines     []DetailedCartLine
}

// IsFavorite is an O(1) membership test.
func (v *View) IsFavorite(id catalog.ProductID) bool {
	return v.favorites[id]
}

// CartQuantity returns the quantity for id, 0 when absent.
func (v *View) CartQuantity(id catalog.ProductID) int {
	return v.cartQty[id]
}

// CartLineCount is the sum of all quantities, the cart badge number,
// not the number of distinct lines.
func (v *View) CartLineCount() int {
	return v.cartLineCount
}

// DetailedCartLines returns the joined cart in storage order.
func (v *View) DetailedCartLines() []DetailedCartLine {
	out := make([]DetailedCartLine, len(v.cartLines))
	copy(out, v.cartLines)
	return out
}

// CartTotal sums every line total.
func (v *View) CartTotal() float64 {
	var total float64
	for _, line := range v.cartLines {
		total += line.LineTotal()
	}
	return total
}

// Engine recomputes a View whenever the catalog or the selections
// change, and reuses the previous one while both stand still.
type Engine struct {
	catalog   *catalog.Store
	selection *selection.State

	mu           sync.Mutex
	cached       *View
	catalogVer   uint64
	selectionVer uint64
}

func NewEngine(cat *catalog.Store, sel *selection.State) *Engine {
	return &Engine{catalog: cat, selection: sel}
}

// Snapshot returns the current view. Unchanged inputs yield the exact
// same snapshot; any Replace or selection mutation forces a rebuild, so
// stale output is impossible.
func (e *Engine) Snapshot() *View {
	e.mu.Lock()
	defer e.mu.Unlock()

	catVer := e.catalog.Version()
	selVer := e.selection.Version()
	if e.cached != nil && e.catalogVer == catVer && e.selectionVer == selVer {
		return e.cached
	}

	v := e.build()
	e.cached = v
	e.catalogVer = catVer
	e.selectionVer = selVer
	return v
}

func (e *Engine) build() *View {
	favoriteIDs := e.selection.FavoriteIDs()
	cartLines := e.selection.CartLines()

	favorites := make(map[catalog.ProductID]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = true
	}

	cartQty := make(map[catalog.ProductID]int, len(cartLines))
	count := 0
	detailed := make([]DetailedCartLine, 0, len(cartLines))

	for _, line := range cartLines {
		cartQty[line.ID] = line.Qty
		count += line.Qty
		detailed = append(detailed, e.join(line))
	}

	return &View{
		favorites:     favorites,
		cartQty:       cartQty,
		cartLineCount: count,
		cartLines:     detailed,
	}
}

func (e *Engine) join(line selection.CartLine) DetailedCartLine {
	if p, ok := e.catalog.FindByID(line.ID); ok {
		return DetailedCartLine{
			ID:       line.ID,
			Title:    p.Title,
			Price:    p.Price,
			OldPrice: p.OldPrice,
			Discount: p.Discount,
			Qty:      line.Qty,
		}
	}

	return DetailedCartLine{
		ID:          line.ID,
		Title:       fmt.Sprintf("Товар #%s", line.ID),
		Qty:         line.Qty,
		Placeholder: true,
	}
}
