package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

func TestFileCartStoreRoundTrip(t *testing.T) {
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)

	items := []domain.CartItem{
		{ID: "1", Name: "Urban Street Sneakers", Price: 200, Image: "/images/products/6.jpg", SelectedColor: "Black", SelectedSize: "42", Quantity: 2, ProductID: "1"},
		{ID: "2", Name: "Premium Leather Loafers", Price: 300, Image: "/images/products/10.jpg", SelectedColor: "Blue", SelectedSize: "40", Quantity: 1, ProductID: "2"},
		{ID: "4", Name: "Slim Fit Denim", Price: 149.99, Image: "/images/products/3.jpg", SelectedColor: "Dark Blue", SelectedSize: "XL", Quantity: 3, ProductID: "4"},
	}

	require.NoError(t, store.Save("sess", items))

	got, found, err := store.Load("sess")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, items, got, "deserialized collection must be element-wise equal, same order")
}

func TestFileCartStoreMissingKey(t *testing.T) {
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)

	got, found, err := store.Load("never-saved")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestFileCartStoreSaveEmpty(t *testing.T) {
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("sess", nil))
	got, found, err := store.Load("sess")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestFileCartStoreDelete(t *testing.T) {
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("sess", []domain.CartItem{{ID: "1", ProductID: "1", Quantity: 1}}))
	require.NoError(t, store.Delete("sess"))

	_, found, err := store.Load("sess")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is fine.
	assert.NoError(t, store.Delete("sess"))
}

func TestFileCartStoreRejectsNonPlainKeys(t *testing.T) {
	parent := t.TempDir()
	store, err := NewFileCartStore(filepath.Join(parent, "carts"))
	require.NoError(t, err)

	keys := []string{"", ".", "..", "../../escaped", "a/b", "../sibling"}
	for _, key := range keys {
		assert.ErrorIs(t, store.Save(key, []domain.CartItem{{ProductID: "1", Quantity: 1}}), ErrInvalidCartKey, "Save(%q)", key)

		_, _, err := store.Load(key)
		assert.ErrorIs(t, err, ErrInvalidCartKey, "Load(%q)", key)

		assert.ErrorIs(t, store.Delete(key), ErrInvalidCartKey, "Delete(%q)", key)
	}

	// Nothing was written outside the store directory.
	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "carts", entries[0].Name())
}

func TestFileCartStoreOverwrite(t *testing.T) {
	store, err := NewFileCartStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("sess", []domain.CartItem{{ID: "1", ProductID: "1", Quantity: 1}}))
	require.NoError(t, store.Save("sess", []domain.CartItem{{ID: "2", ProductID: "2", Quantity: 5}}))

	got, found, err := store.Load("sess")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ProductID)
}
