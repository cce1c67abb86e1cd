package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCart(t *testing.T) (*CartStore, StateStore, *Catalog) {
	t.Helper()
	store := NewMemoryStore()
	catalog := NewCatalog(seedProducts)
	return NewCartStore(store, "cart:test", catalog, zap.NewNop()), store, catalog
}

func TestAddItemMergesByProductID(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 2)
	assert.Equal(t, 2, cart.TotalItems())
	assert.Equal(t, 2*p.Price, cart.TotalPrice())

	cart.AddItem(p, 1)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddItemQuantityFloor(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 0)
	cart.AddItem(p, -5)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 2)
	cart.UpdateQuantity(p.ID, 0)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Empty(t, cart.Lines())
}

func TestUpdateQuantitySetsAbsolute(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 2)
	cart.UpdateQuantity(p.ID, 7)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateAndRemoveAbsentAreNoOps(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)
	cart.AddItem(p, 1)

	cart.UpdateQuantity(999, 5)
	cart.RemoveItem(999)
	assert.Equal(t, 1, cart.TotalItems())
}

func TestRemoveItem(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p1, _ := catalog.ProductByID(1)
	p2, _ := catalog.ProductByID(2)

	cart.AddItem(p1, 1)
	cart.AddItem(p2, 3)
	cart.RemoveItem(p1.ID)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, p2.ID, lines[0].Product.ID)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestClearCartEmptiesPersistedState(t *testing.T) {
	cart, store, catalog := newTestCart(t)
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 2)
	cart.Clear()
	assert.Equal(t, 0, cart.TotalItems())

	blob, err := store.Load(context.Background(), "cart:test")
	require.NoError(t, err)
	var state cartState
	require.NoError(t, json.Unmarshal(blob, &state))
	assert.Equal(t, cartSchemaVersion, state.Version)
	assert.Empty(t, state.Items)
}

func TestTotalPriceMatchesIndependentSum(t *testing.T) {
	cart, _, catalog := newTestCart(t)
	p1, _ := catalog.ProductByID(1)
	p2, _ := catalog.ProductByID(4)
	p3, _ := catalog.ProductByID(7)

	cart.AddItem(p1, 2)
	cart.AddItem(p2, 1)
	cart.AddItem(p3, 3)
	cart.UpdateQuantity(p2.ID, 4)

	want := 0
	for _, l := range cart.Lines() {
		want += l.Product.Price * l.Quantity
	}
	assert.Equal(t, want, cart.TotalPrice())
}

func TestCartRehydrateRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	catalog := NewCatalog(seedProducts)
	log := zap.NewNop()

	cart := NewCartStore(store, "cart:rt", catalog, log)
	p1, _ := catalog.ProductByID(1)
	p2, _ := catalog.ProductByID(3)
	cart.AddItem(p1, 2)
	cart.AddItem(p2, 5)

	reloaded := NewCartStore(store, "cart:rt", catalog, log)
	want := map[int]int{p1.ID: 2, p2.ID: 5}
	got := map[int]int{}
	for _, l := range reloaded.Lines() {
		got[l.Product.ID] = l.Quantity
	}
	assert.Equal(t, want, got)
	assert.Equal(t, cart.TotalPrice(), reloaded.TotalPrice())
}

func TestCartRehydrateSkipsUnknownProducts(t *testing.T) {
	store := NewMemoryStore()
	catalog := NewCatalog(seedProducts)
	state := cartState{Version: cartSchemaVersion, Items: []cartStateItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 999, Quantity: 4},
	}}
	blob, _ := json.Marshal(state)
	require.NoError(t, store.Save(context.Background(), "cart:stale", blob))

	cart := NewCartStore(store, "cart:stale", catalog, zap.NewNop())
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Product.ID)
}

func TestCartRehydrateDiscardsUnknownVersion(t *testing.T) {
	store := NewMemoryStore()
	catalog := NewCatalog(seedProducts)
	blob, _ := json.Marshal(cartState{Version: 99, Items: []cartStateItem{{ProductID: 1, Quantity: 2}}})
	require.NoError(t, store.Save(context.Background(), "cart:v99", blob))

	cart := NewCartStore(store, "cart:v99", catalog, zap.NewNop())
	assert.Empty(t, cart.Lines())
}

func TestCartRehydrateDiscardsCorruptBlob(t *testing.T) {
	store := NewMemoryStore()
	catalog := NewCatalog(seedProducts)
	require.NoError(t, store.Save(context.Background(), "cart:bad", []byte("{not json")))

	cart := NewCartStore(store, "cart:bad", catalog, zap.NewNop())
	assert.Empty(t, cart.Lines())
}

// failingStore rejects every save so the dirty flag can be observed.
type failingStore struct{ StateStore }

func (f failingStore) Save(context.Context, string, []byte) error {
	return assert.AnError
}

func TestCartDirtyFlagOnPersistFailure(t *testing.T) {
	catalog := NewCatalog(seedProducts)
	cart := NewCartStore(failingStore{NewMemoryStore()}, "cart:fail", catalog, zap.NewNop())
	p, _ := catalog.ProductByID(1)

	cart.AddItem(p, 1)
	// The mutation still applies; only durability is lost.
	assert.Equal(t, 1, cart.TotalItems())
	assert.True(t, cart.Dirty())
}
