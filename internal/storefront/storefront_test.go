// internal/storefront/storefront_test.go
package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/severyanochka/storefront-backend/internal/storefront/category"
	"github.com/severyanochka/storefront-backend/internal/storefront/filter"
	"github.com/severyanochka/storefront-backend/internal/storefront/storage"
)

func catalogServer(t *testing.T, withRules bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":1,"title":"Молоко","price":50},
			{"id":2,"title":"Чай зелёный","price":80},
			{"id":3,"title":"Кефир","price":45}
		]}`))
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if !withRules {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"Не удалось получить список категорий"}`))
			return
		}
		w.Write([]byte(`{"items":[{"name":"Только чай","keywords":["чай"]}]}`))
	})
	return httptest.NewServer(mux)
}

func newTestApp(t *testing.T, srv *httptest.Server) *App {
	t.Helper()
	cfg := Config{BaseURL: srv.URL, RequestTimeout: 5 * time.Second}
	return NewWithStore(cfg, storage.NewMemStore())
}

func TestRefreshLoadsCatalogAndRules(t *testing.T) {
	srv := catalogServer(t, true)
	defer srv.Close()

	app := newTestApp(t, srv)
	require.NoError(t, app.Refresh(context.Background()))

	assert.Equal(t, 3, app.Catalog.Len())
	assert.Equal(t, "Только чай", app.Classifier().Classify("Чай зелёный"))
	assert.Equal(t, category.AllProducts, app.Classifier().Classify("Молоко"))
}

func TestRefreshKeepsDefaultRulesOnRuleFailure(t *testing.T) {
	srv := catalogServer(t, false)
	defer srv.Close()

	app := newTestApp(t, srv)
	require.NoError(t, app.Refresh(context.Background()))

	assert.Equal(t, 3, app.Catalog.Len())
	assert.Equal(t, "Молоко, сыр, яйцо", app.Classifier().Classify("Молоко"))
}

func TestCategoryViewRestrictsAndBounds(t *testing.T) {
	srv := catalogServer(t, true)
	defer srv.Close()

	app := newTestApp(t, srv)
	require.NoError(t, app.Refresh(context.Background()))

	tea := app.CategoryView("Только чай")
	page, more := tea.Page()
	require.Len(t, page, 1)
	assert.Equal(t, "Чай зелёный", page[0].Title)
	assert.False(t, more)
	assert.Equal(t, filter.Bounds{Min: 80, Max: 80}, tea.Bounds())

	all := app.CategoryView("")
	assert.Equal(t, category.AllProducts, all.Name)
	page, _ = all.Page()
	assert.Len(t, page, 3)
	assert.Equal(t, filter.Bounds{Min: 45, Max: 80}, all.Bounds())
}

func TestSelectionFlowsIntoViews(t *testing.T) {
	srv := catalogServer(t, true)
	defer srv.Close()

	app := newTestApp(t, srv)
	require.NoError(t, app.Refresh(context.Background()))

	app.Selection.AddToCart(1)
	app.Selection.AddToCart(1)
	app.Selection.ToggleFavorite(2)

	v := app.Views.Snapshot()
	assert.Equal(t, 2, v.CartLineCount())
	assert.True(t, v.IsFavorite(2))
	assert.Equal(t, 100.0, v.CartTotal())
}
