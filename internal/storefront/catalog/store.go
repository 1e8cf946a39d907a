// internal/storefront/catalog/store.go
package catalog

import "sync"

// Store holds the current catalog. Replace swaps the whole list
// atomically, so readers never observe a partial catalog, and bumps a
// version counter that derived views key their memoization on.
type Store struct {
	mu       sync.RWMutex
	products []Product
	byID     map[ProductID]Product
	version  uint64
}

func NewStore() *Store {
	return &Store{byID: make(map[ProductID]Product)}
}

// Replace installs a new catalog. Response order is preserved as given;
// the store imposes no ordering of its own.
func (s *Store) Replace(products []Product) {
	byID := make(map[ProductID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	list := make([]Product, len(products))
	copy(list, products)

	s.mu.Lock()
	s.products = list
	s.byID = byID
	s.version++
	s.mu.Unlock()
}

func (s *Store) FindByID(id ProductID) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Products returns a copy of the current list.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Version increases on every Replace. Two equal versions guarantee the
// same catalog contents.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
