// internal/storefront/storefront.go

// Package storefront wires the commerce state engine together: durable
// selection state, the fetched catalog, derived views and per-category
// filtering. A presentation layer talks to an App and renders whatever
// it derives.
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/severyanochka/storefront-backend/internal/storefront/catalog"
	"github.com/severyanochka/storefront-backend/internal/storefront/category"
	"github.com/severyanochka/storefront-backend/internal/storefront/filter"
	"github.com/severyanochka/storefront-backend/internal/storefront/selection"
	"github.com/severyanochka/storefront-backend/internal/storefront/storage"
	"github.com/severyanochka/storefront-backend/internal/storefront/view"
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StateDir       string
}

type App struct {
	Catalog   *catalog.Store
	Loader    *catalog.Loader
	Selection *selection.State
	Views     *view.Engine

	client *catalog.Client

	mu         sync.RWMutex
	classifier *category.Classifier
}

// New builds an App backed by a file store under cfg.StateDir.
func New(cfg Config) *App {
	return NewWithStore(cfg, storage.NewFileStore(cfg.StateDir))
}

// NewWithStore builds an App over an explicit persistence store.
func NewWithStore(cfg Config, store storage.Store) *App {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := catalog.NewClient(cfg.BaseURL, timeout)
	catalogStore := catalog.NewStore()
	sel := selection.NewState(store)

	return &App{
		Catalog:    catalogStore,
		Loader:     catalog.NewLoader(client, catalogStore),
		Selection:  sel,
		Views:      view.NewEngine(catalogStore, sel),
		client:     client,
		classifier: category.NewClassifier(nil),
	}
}

// Refresh reloads the catalog and the classifier rule table. A rule
// fetch failure is not fatal; the built-in rules keep classifying.
func (a *App) Refresh(ctx context.Context) error {
	if rules, err := a.client.FetchCategoryRules(ctx); err != nil {
		logrus.WithError(err).Warn("category rules fetch failed, keeping current rules")
	} else if len(rules) > 0 {
		a.mu.Lock()
		a.classifier = category.NewClassifier(category.RulesFromService(rules))
		a.mu.Unlock()
	}

	return a.Loader.Refresh(ctx)
}

func (a *App) Classifier() *category.Classifier {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.classifier
}

// CategoryView is one browsing screen: a category restriction plus its
// own filter/pagination state.
type CategoryView struct {
	app   *App
	Name  string
	Pager *filter.Pager
}

func (a *App) CategoryView(name string) *CategoryView {
	if name == "" {
		name = category.AllProducts
	}
	return &CategoryView{app: a, Name: name, Pager: filter.NewPager()}
}

// products is the classified, category-restricted subset in catalog
// order, recomputed from the current catalog.
func (v *CategoryView) products() []category.CategorizedProduct {
	categorized := v.app.Classifier().Categorize(v.app.Catalog.Products())
	return category.OfCategory(categorized, v.Name)
}

// Bounds returns the price range of the unfiltered subset, for filter
// form placeholders.
func (v *CategoryView) Bounds() filter.Bounds {
	return filter.PriceBounds(v.products())
}

// Page returns the currently visible products and whether a "show more"
// control should render.
func (v *CategoryView) Page() ([]category.CategorizedProduct, bool) {
	return v.Pager.Page(v.products())
}
