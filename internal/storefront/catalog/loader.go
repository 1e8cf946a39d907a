// internal/storefront/catalog/loader.go
package catalog

import (
	"context"
	"sync"
)

// Fetcher is what Loader needs from a Client. Narrowed for tests.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Loader drives catalog refreshes. While a fetch is pending it exposes a
// loading flag so an empty store can be told apart from a confirmed
// empty catalog. A failed refresh records the error and leaves the
// previous catalog in place, so joins against products from the last
// good load keep working through an outage.
//
// In-flight fetches are not cancelled by newer ones; whichever response
// arrives last wins unconditionally. Callers that need strict request
// ordering must sequence their own Refresh calls.
type Loader struct {
	fetcher Fetcher
	store   *Store

	mu      sync.Mutex
	loading int
	err     error
}

func NewLoader(fetcher Fetcher, store *Store) *Loader {
	return &Loader{fetcher: fetcher, store: store}
}

// Refresh fetches the catalog and swaps it into the store on success.
func (l *Loader) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading++
	l.err = nil
	l.mu.Unlock()

	products, err := l.fetcher.FetchProducts(ctx)

	l.mu.Lock()
	l.loading--
	if err != nil {
		l.err = err
		l.mu.Unlock()
		return err
	}
	l.err = nil
	l.mu.Unlock()

	l.store.Replace(products)
	return nil
}

// Loading reports whether at least one fetch is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading > 0
}

// Err returns the error of the most recent failed refresh, or nil.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loader) Store() *Store {
	return l.store
}
