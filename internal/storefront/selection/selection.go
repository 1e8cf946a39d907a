// internal/storefront/selection/selection.go

// Package selection owns the user's cart and favorites. Every mutation
// builds fresh slices (callers never alias internal state), writes
// through to durable storage, bumps a version and notifies subscribers.
// State is explicit: it is constructed once and passed to whatever
// needs it, never reached through ambient globals.
package selection

import (
	"sync"

	"github.com/severyanochka/storefront-backend/internal/storefront/catalog"
	"github.com/severyanochka/storefront-backend/internal/storefront/storage"
)

// Storage keys, shared with the original browser client so existing
// saved selections survive.
const (
	FavoritesKey = "sev-favorites"
	CartKey      = "sev-cart"
)

// CartLine is one cart entry. Qty is always >= 1: the line is removed
// outright before it could reach zero.
type CartLine struct {
	ID  catalog.ProductID `json:"id"`
	Qty int               `json:"qty"`
}

type State struct {
	store storage.Store

	mu        sync.Mutex
	cart      []CartLine
	favorites []catalog.ProductID
	version   uint64
	subs      []func()
}

// NewState loads persisted selections, falling back to empty on missing
// or corrupt data.
func NewState(store storage.Store) *State {
	s := &State{store: store}

	var favorites []catalog.ProductID
	store.Load(FavoritesKey, &favorites)
	s.favorites = dedupeIDs(favorites)

	var cart []CartLine
	store.Load(CartKey, &cart)
	s.cart = sanitizeCart(cart)

	return s
}

// dedupeIDs keeps first occurrences, preserving insertion order.
func dedupeIDs(ids []catalog.ProductID) []catalog.ProductID {
	seen := make(map[catalog.ProductID]bool, len(ids))
	out := make([]catalog.ProductID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// sanitizeCart drops non-positive quantities and duplicate ids that a
// hand-edited or stale payload might carry.
func sanitizeCart(cart []CartLine) []CartLine {
	seen := make(map[catalog.ProductID]bool, len(cart))
	out := make([]CartLine, 0, len(cart))
	for _, line := range cart {
		if line.Qty < 1 || seen[line.ID] {
			continue
		}
		seen[line.ID] = true
		out = append(out, line)
	}
	return out
}

// Subscribe registers a callback invoked after every mutation.
func (s *State) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// ToggleFavorite adds the id to favorites, or removes it when present.
// Applying it twice restores the original set.
func (s *State) ToggleFavorite(id catalog.ProductID) {
	s.mu.Lock()
	next := make([]catalog.ProductID, 0, len(s.favorites)+1)
	removed := false
	for _, fav := range s.favorites {
		if fav == id {
			removed = true
			continue
		}
		next = append(next, fav)
	}
	if !removed {
		next = append(next, id)
	}
	s.favorites = next
	s.persistFavoritesLocked()
	s.bumpLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs)
}

// AddToCart increments the line for id, inserting it at quantity 1 when
// absent.
func (s *State) AddToCart(id catalog.ProductID) {
	s.mutateCart(func(cart []CartLine) []CartLine {
		for i, line := range cart {
			if line.ID == id {
				cart[i].Qty++
				return cart
			}
		}
		return append(cart, CartLine{ID: id, Qty: 1})
	})
}

// IncreaseQuantity increments an existing line. Missing lines are left
// alone; the UI only offers the control for lines that exist.
func (s *State) IncreaseQuantity(id catalog.ProductID) {
	s.mutateCart(func(cart []CartLine) []CartLine {
		for i, line := range cart {
			if line.ID == id {
				cart[i].Qty++
				break
			}
		}
		return cart
	})
}

// DecreaseQuantity decrements an existing line and removes it when the
// quantity would drop below 1. Storage never holds a zero-quantity line.
func (s *State) DecreaseQuantity(id catalog.ProductID) {
	s.mutateCart(func(cart []CartLine) []CartLine {
		out := cart[:0]
		for _, line := range cart {
			if line.ID == id {
				line.Qty--
			}
			if line.Qty > 0 {
				out = append(out, line)
			}
		}
		return out
	})
}

// RemoveFromCart drops the line regardless of quantity.
func (s *State) RemoveFromCart(id catalog.ProductID) {
	s.mutateCart(func(cart []CartLine) []CartLine {
		out := cart[:0]
		for _, line := range cart {
			if line.ID != id {
				out = append(out, line)
			}
		}
		return out
	})
}

func (s *State) mutateCart(fn func([]CartLine) []CartLine) {
	s.mu.Lock()
	next := make([]CartLine, len(s.cart))
	copy(next, s.cart)
	s.cart = fn(next)
	s.persistCartLocked()
	s.bumpLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs)
}

// CartLines returns a copy of the cart in storage order.
func (s *State) CartLines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// FavoriteIDs returns a copy of the favorites in insertion order.
func (s *State) FavoriteIDs() []catalog.ProductID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.ProductID, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// Version increases on every mutation.
func (s *State) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *State) persistCartLocked() {
	s.store.Save(CartKey, s.cart)
}

func (s *State) persistFavoritesLocked() {
	s.store.Save(FavoritesKey, s.favorites)
}

func (s *State) bumpLocked() {
	s.version++
}

func (s *State) subsLocked() []func() {
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
