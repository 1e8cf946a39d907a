// internal/storefront/storage/storage_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := []int64{3, 1, 4}
	store.Save("sev-favorites", saved)

	var loaded []int64
	store.Load("sev-favorites", &loaded)
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingFileKeepsFallback(t *testing.T) {
	store := NewFileStore(t.TempDir())

	loaded := []int64{7}
	store.Load("sev-cart", &loaded)
	assert.Equal(t, []int64{7}, loaded)
}

func TestFileStoreCorruptFileKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	err := os.WriteFile(filepath.Join(dir, "sev-cart.json"), []byte("{not json"), 0o644)
	require.NoError(t, err)

	loaded := []int64{7}
	store.Load("sev-cart", &loaded)
	assert.Equal(t, []int64{7}, loaded)
}

func TestFileStoreCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewFileStore(dir)

	store.Save("sev-favorites", []int64{1})

	_, err := os.Stat(filepath.Join(dir, "sev-favorites.json"))
	assert.NoError(t, err)
}

func TestDecodeNeverPartiallyFills(t *testing.T) {
	type pair struct {
		A int `json:"a"`
		B int `json:"b"`
	}

	store := NewMemStore()
	// The first field parses, the second does not. The fallback must
	// survive intact rather than ending up half overwritten.
	store.Put("k", []byte(`{"a": 9, "b": "oops"}`))

	loaded := pair{A: 1, B: 2}
	store.Load("k", &loaded)
	assert.Equal(t, pair{A: 1, B: 2}, loaded)
}

func TestMemStoreTypeMismatchKeepsFallback(t *testing.T) {
	store := NewMemStore()
	store.Put("sev-favorites", []byte(`"not-an-array"`))

	loaded := []int64{42}
	store.Load("sev-favorites", &loaded)
	assert.Equal(t, []int64{42}, loaded)
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	store.Save("sev-cart", map[string]int{"qty": 3})

	var loaded map[string]int
	store.Load("sev-cart", &loaded)
	assert.Equal(t, map[string]int{"qty": 3}, loaded)
}
