// wishlist.go

package main

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const wishlistSchemaVersion = 1

type wishlistState struct {
	Version    int   `json:"version"`
	ProductIDs []int `json:"productIds"`
}

// WishlistStore is a persisted set of saved products: no duplicates, no
// quantities. Same persistence contract as CartStore, separate namespace.
type WishlistStore struct {
	mu      sync.Mutex
	items   []Product
	index   map[int]struct{}
	store   StateStore
	key     string
	catalog *Catalog
	log     *zap.Logger
	dirty   bool
}

func NewWishlistStore(store StateStore, key string, catalog *Catalog, log *zap.Logger) *WishlistStore {
	w := &WishlistStore{
		index:   make(map[int]struct{}),
		store:   store,
		key:     key,
		catalog: catalog,
		log:     log,
	}
	w.rehydrate()
	return w
}

func (w *WishlistStore) rehydrate() {
	blob, err := w.store.Load(context.Background(), w.key)
	if err == ErrStateNotFound {
		return
	}
	if err != nil {
		w.log.Warn("wishlist load failed, starting empty", zap.String("key", w.key), zap.Error(err))
		return
	}
	var state wishlistState
	if err := json.Unmarshal(blob, &state); err != nil || state.Version != wishlistSchemaVersion {
		w.log.Warn("discarding unreadable wishlist state", zap.String("key", w.key))
		return
	}
	for _, id := range state.ProductIDs {
		p, ok := w.catalog.ProductByID(id)
		if !ok {
			continue
		}
		if _, dup := w.index[id]; dup {
			continue
		}
		w.items = append(w.items, p)
		w.index[id] = struct{}{}
	}
}

func (w *WishlistStore) persist() {
	state := wishlistState{Version: wishlistSchemaVersion, ProductIDs: make([]int, 0, len(w.items))}
	for _, p := range w.items {
		state.ProductIDs = append(state.ProductIDs, p.ID)
	}
	blob, err := json.Marshal(state)
	if err == nil {
		err = w.store.Save(context.Background(), w.key, blob)
	}
	if err != nil {
		w.dirty = true
		w.log.Warn("wishlist persist failed", zap.String("key", w.key), zap.Error(err))
		return
	}
	w.dirty = false
}

// AddItem appends the product unless it is already saved.
func (w *WishlistStore) AddItem(p Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.index[p.ID]; ok {
		return
	}
	w.items = append(w.items, p)
	w.index[p.ID] = struct{}{}
	w.persist()
}

// RemoveItem deletes unconditionally; no-op if absent.
func (w *WishlistStore) RemoveItem(productID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.index[productID]; !ok {
		return
	}
	delete(w.index, productID)
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	w.persist()
}

func (w *WishlistStore) IsInWishlist(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.index[productID]
	return ok
}

func (w *WishlistStore) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
	w.index = make(map[int]struct{})
	w.persist()
}

// Items returns a copy of the saved products in insertion order.
func (w *WishlistStore) Items() []Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Product, len(w.items))
	copy(out, w.items)
	return out
}

func (w *WishlistStore) TotalItems() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

func (w *WishlistStore) Dirty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dirty
}
