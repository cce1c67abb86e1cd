// cart.go

package main

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

const cartSchemaVersion = 1

// cartState is the persisted shape: product ids and quantities only. The
// full lines are rebuilt by re-joining against the live catalog on
// rehydration, so a catalog price change reprices a saved cart.
type cartState struct {
	Version int             `json:"version"`
	Items   []cartStateItem `json:"items"`
}

type cartStateItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CartStore holds the line items of one session's cart. Every mutation
// persists the full snapshot synchronously; persistence failures never fail
// the mutation, they set the dirty flag instead.
type CartStore struct {
	mu      sync.Mutex
	lines   []CartLine
	store   StateStore
	key     string
	catalog *Catalog
	log     *zap.Logger
	dirty   bool
}

func NewCartStore(store StateStore, key string, catalog *Catalog, log *zap.Logger) *CartStore {
	c := &CartStore{store: store, key: key, catalog: catalog, log: log}
	c.rehydrate()
	return c
}

func (c *CartStore) rehydrate() {
	blob, err := c.store.Load(context.Background(), c.key)
	if err == ErrStateNotFound {
		return
	}
	if err != nil {
		c.log.Warn("cart load failed, starting empty", zap.String("key", c.key), zap.Error(err))
		return
	}
	var state cartState
	if err := json.Unmarshal(blob, &state); err != nil || state.Version != cartSchemaVersion {
		c.log.Warn("discarding unreadable cart state", zap.String("key", c.key))
		return
	}
	for _, it := range state.Items {
		p, ok := c.catalog.ProductByID(it.ProductID)
		if !ok || it.Quantity < 1 {
			// Product dropped from the catalog since the cart was saved.
			continue
		}
		c.lines = append(c.lines, CartLine{Product: p, Quantity: it.Quantity})
	}
}

// persist is called with the mutex held.
func (c *CartStore) persist() {
	state := cartState{Version: cartSchemaVersion, Items: make([]cartStateItem, 0, len(c.lines))}
	for _, l := range c.lines {
		state.Items = append(state.Items, cartStateItem{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	blob, err := json.Marshal(state)
	if err == nil {
		err = c.store.Save(context.Background(), c.key, blob)
	}
	if err != nil {
		c.dirty = true
		c.log.Warn("cart persist failed", zap.String("key", c.key), zap.Error(err))
		return
	}
	c.dirty = false
}

// AddItem merges by product id: an existing line's quantity is incremented,
// otherwise a new line is appended. Quantities below 1 count as 1. Stock is
// not checked here.
func (c *CartStore) AddItem(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: quantity})
	c.persist()
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
// No-op if the product is not in the cart.
func (c *CartStore) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity > 0 {
			c.lines[i].Quantity = quantity
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		c.persist()
		return
	}
}

// RemoveItem deletes the line unconditionally; no-op if absent.
func (c *CartStore) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the current line items in insertion order.
func (c *CartStore) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of quantities across all lines.
func (c *CartStore) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity at current catalog prices.
func (c *CartStore) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		price := l.Product.Price
		if p, ok := c.catalog.ProductByID(l.Product.ID); ok {
			price = p.Price
		}
		total += price * l.Quantity
	}
	return total
}

// Dirty reports whether the last persist attempt failed, meaning the
// in-memory state may not survive a restart. Surfaced to the client as a
// non-fatal "changes may not be saved" notice.
func (c *CartStore) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}
