// internal/storefront/selection/selection_test.go
package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/severyanochka/storefront-backend/internal/storefront/catalog"
	"github.com/severyanochka/storefront-backend/internal/storefront/storage"
)

func newTestState() (*State, *storage.MemStore) {
	store := storage.NewMemStore()
	return NewState(store), store
}

func TestNewStateStartsEmpty(t *testing.T) {
	s, _ := newTestState()
	assert.Empty(t, s.CartLines())
	assert.Empty(t, s.FavoriteIDs())
	assert.Equal(t, uint64(0), s.Version())
}

func TestNewStateLoadsPersistedSelections(t *testing.T) {
	store := storage.NewMemStore()
	store.Save(FavoritesKey, []catalog.ProductID{3, 1})
	store.Save(CartKey, []CartLine{{ID: 2, Qty: 4}})

	s := NewState(store)
	assert.Equal(t, []catalog.ProductID{3, 1}, s.FavoriteIDs())
	assert.Equal(t, []CartLine{{ID: 2, Qty: 4}}, s.CartLines())
}

func TestNewStateCorruptDataFallsBackToEmpty(t *testing.T) {
	store := storage.NewMemStore()
	store.Put(FavoritesKey, []byte(`{"broken":`))
	store.Put(CartKey, []byte(`"nope"`))

	s := NewState(store)
	assert.Empty(t, s.FavoriteIDs())
	assert.Empty(t, s.CartLines())
}

func TestNewStateSanitizesStaleCart(t *testing.T) {
	store := storage.NewMemStore()
	store.Save(CartKey, []CartLine{{ID: 1, Qty: 0}, {ID: 2, Qty: 3}, {ID: 2, Qty: 1}, {ID: 3, Qty: -5}})
	store.Save(FavoritesKey, []catalog.ProductID{5, 5, 7})

	s := NewState(store)
	assert.Equal(t, []CartLine{{ID: 2, Qty: 3}}, s.CartLines())
	assert.Equal(t, []catalog.ProductID{5, 7}, s.FavoriteIDs())
}

func TestToggleFavoriteIsSelfInverse(t *testing.T) {
	s, _ := newTestState()

	s.ToggleFavorite(9)
	assert.Equal(t, []catalog.ProductID{9}, s.FavoriteIDs())

	s.ToggleFavorite(9)
	assert.Empty(t, s.FavoriteIDs())
}

func TestToggleFavoritePreservesInsertionOrder(t *testing.T) {
	s, _ := newTestState()
	s.ToggleFavorite(3)
	s.ToggleFavorite(1)
	s.ToggleFavorite(2)
	s.ToggleFavorite(1)
	assert.Equal(t, []catalog.ProductID{3, 2}, s.FavoriteIDs())
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	s, _ := newTestState()

	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(2)
	assert.Equal(t, []CartLine{{ID: 1, Qty: 2}, {ID: 2, Qty: 1}}, s.CartLines())
}

func TestDecreaseQuantityRemovesLineAtZero(t *testing.T) {
	s, _ := newTestState()
	s.AddToCart(1)
	s.AddToCart(1)

	s.DecreaseQuantity(1)
	assert.Equal(t, []CartLine{{ID: 1, Qty: 1}}, s.CartLines())

	s.DecreaseQuantity(1)
	assert.Empty(t, s.CartLines(), "a line never survives at quantity zero")
}

func TestQuantityNeverBelowOne(t *testing.T) {
	s, _ := newTestState()
	s.AddToCart(1)
	s.DecreaseQuantity(1)
	s.DecreaseQuantity(1)
	s.DecreaseQuantity(1)

	for _, line := range s.CartLines() {
		assert.GreaterOrEqual(t, line.Qty, 1)
	}
	assert.Empty(t, s.CartLines())
}

func TestIncreaseQuantityIgnoresMissingLine(t *testing.T) {
	s, _ := newTestState()
	s.IncreaseQuantity(99)
	assert.Empty(t, s.CartLines())
}

func TestRemoveFromCartDropsWholeLine(t *testing.T) {
	s, _ := newTestState()
	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(2)

	s.RemoveFromCart(1)
	assert.Equal(t, []CartLine{{ID: 2, Qty: 1}}, s.CartLines())
}

func TestEveryMutationPersists(t *testing.T) {
	s, store := newTestState()

	s.AddToCart(1)
	var cart []CartLine
	store.Load(CartKey, &cart)
	assert.Equal(t, []CartLine{{ID: 1, Qty: 1}}, cart)

	s.ToggleFavorite(5)
	var favs []catalog.ProductID
	store.Load(FavoritesKey, &favs)
	assert.Equal(t, []catalog.ProductID{5}, favs)

	// A restart over the same store sees the selections.
	restarted := NewState(store)
	assert.Equal(t, s.CartLines(), restarted.CartLines())
	assert.Equal(t, s.FavoriteIDs(), restarted.FavoriteIDs())
}

func TestVersionBumpsAndSubscribersFire(t *testing.T) {
	s, _ := newTestState()

	notified := 0
	s.Subscribe(func() { notified++ })

	s.AddToCart(1)
	s.ToggleFavorite(2)
	s.IncreaseQuantity(1)

	assert.Equal(t, 3, notified)
	assert.Equal(t, uint64(3), s.Version())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	s, _ := newTestState()
	s.AddToCart(1)

	lines := s.CartLines()
	require.Len(t, lines, 1)
	lines[0].Qty = 99

	assert.Equal(t, 1, s.CartLines()[0].Qty)
}
