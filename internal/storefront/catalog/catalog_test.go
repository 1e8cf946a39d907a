// internal/storefront/catalog/catalog_test.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, ProductID(42), id)
	assert.Equal(t, "42", id.String())

	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestProductUnmarshalDefaultsOldPrice(t *testing.T) {
	var missing Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"Молоко","price":50}`), &missing))
	assert.Equal(t, 50.0, missing.OldPrice)

	var null Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"title":"Сыр","price":120,"oldPrice":null}`), &null))
	assert.Equal(t, 120.0, null.OldPrice)

	var explicit Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"title":"Чай","price":80,"oldPrice":100}`), &explicit))
	assert.Equal(t, 100.0, explicit.OldPrice)
}

func TestStoreReplaceIsAtomicAndVersioned(t *testing.T) {
	store := NewStore()
	assert.Equal(t, uint64(0), store.Version())
	assert.Equal(t, 0, store.Len())

	store.Replace([]Product{{ID: 1, Title: "Хлеб", Price: 30}, {ID: 2, Title: "Молоко", Price: 50}})
	assert.Equal(t, uint64(1), store.Version())
	assert.Equal(t, 2, store.Len())

	p, ok := store.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "Молоко", p.Title)

	store.Replace([]Product{{ID: 3, Title: "Чай", Price: 80}})
	assert.Equal(t, uint64(2), store.Version())

	_, ok = store.FindByID(1)
	assert.False(t, ok, "old products must not survive a replace")
	assert.Len(t, store.Products(), 1)
}

func TestStoreProductsReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Replace([]Product{{ID: 1, Title: "Хлеб"}})

	list := store.Products()
	list[0].Title = "mutated"

	p, _ := store.FindByID(1)
	assert.Equal(t, "Хлеб", p.Title)
}

func TestClientFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":1,"title":"Молоко","price":50,"oldPrice":69,"discount":25}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, ProductID(1), products[0].ID)
	assert.Equal(t, 69.0, products[0].OldPrice)
}

func TestClientFetchCategoryRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		w.Write([]byte(`{"items":[{"name":"Чай, кофе","keywords":["чай","кофе"]}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	rules, err := client.FetchCategoryRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Чай, кофе", rules[0].Name)
	assert.Equal(t, []string{"чай", "кофе"}, rules[0].Keywords)
}

func TestClientServiceErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"Не удалось получить товары"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Не удалось получить товары", err.Error())
}

func TestClientServiceErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

type stubFetcher struct {
	products []Product
	err      error
}

func (f *stubFetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	return f.products, f.err
}

func TestLoaderRefreshSuccess(t *testing.T) {
	store := NewStore()
	fetcher := &stubFetcher{products: []Product{{ID: 1, Title: "Хлеб"}}}
	loader := NewLoader(fetcher, store)

	require.NoError(t, loader.Refresh(context.Background()))
	assert.Equal(t, 1, store.Len())
	assert.NoError(t, loader.Err())
	assert.False(t, loader.Loading())
}

func TestLoaderKeepsCatalogOnFailure(t *testing.T) {
	store := NewStore()
	fetcher := &stubFetcher{products: []Product{{ID: 1, Title: "Хлеб"}}}
	loader := NewLoader(fetcher, store)
	require.NoError(t, loader.Refresh(context.Background()))

	fetcher.err = errors.New("Не удалось получить товары")
	fetcher.products = nil
	err := loader.Refresh(context.Background())
	require.Error(t, err)

	// The last good catalog stays joinable through the outage.
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, err, loader.Err())
}

type gatedFetcher struct {
	mu      sync.Mutex
	pending []chan []Product
}

func (f *gatedFetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	ch := make(chan []Product)
	f.mu.Lock()
	f.pending = append(f.pending, ch)
	f.mu.Unlock()
	return <-ch, nil
}

func (f *gatedFetcher) release(i int, products []Product) {
	f.mu.Lock()
	ch := f.pending[i]
	f.mu.Unlock()
	ch <- products
}

func (f *gatedFetcher) started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

func TestLoaderLastResponseWins(t *testing.T) {
	store := NewStore()
	fetcher := &gatedFetcher{}
	loader := NewLoader(fetcher, store)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loader.Refresh(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return fetcher.started() == 2 }, time.Second, time.Millisecond)
	assert.True(t, loader.Loading())

	// The second request's response arrives first; the first request's
	// response arrives last and wins.
	fetcher.release(1, []Product{{ID: 2, Title: "B"}})
	require.Eventually(t, func() bool {
		_, ok := store.FindByID(2)
		return ok
	}, time.Second, time.Millisecond)

	fetcher.release(0, []Product{{ID: 1, Title: "A"}})
	wg.Wait()

	assert.False(t, loader.Loading())
	require.Equal(t, 1, store.Len())
	_, ok := store.FindByID(1)
	assert.True(t, ok)
}

func TestLoaderErrClearsOnNextSuccess(t *testing.T) {
	store := NewStore()
	fetcher := &stubFetcher{err: errors.New("boom")}
	loader := NewLoader(fetcher, store)
	require.Error(t, loader.Refresh(context.Background()))

	fetcher.err = nil
	fetcher.products = []Product{{ID: 2}}
	require.NoError(t, loader.Refresh(context.Background()))
	assert.NoError(t, loader.Err())
	assert.Equal(t, 1, store.Len())
}
