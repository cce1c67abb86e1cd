// session.go

package main

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionHeader = "X-Session-ID"

// SessionRegistry hands out the per-session cart and wishlist stores. Stores
// are built lazily on first use and cached for the life of the process;
// their state lives in the StateStore under "cart:<sid>" / "wishlist:<sid>".
// Two processes sharing a backend reconcile only at store construction,
// last write wins.
type SessionRegistry struct {
	mu        sync.Mutex
	carts     map[string]*CartStore
	wishlists map[string]*WishlistStore
	store     StateStore
	catalog   *Catalog
	log       *zap.Logger
}

func NewSessionRegistry(store StateStore, catalog *Catalog, log *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		carts:     make(map[string]*CartStore),
		wishlists: make(map[string]*WishlistStore),
		store:     store,
		catalog:   catalog,
		log:       log,
	}
}

func (r *SessionRegistry) Cart(sessionID string) *CartStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		cart = NewCartStore(r.store, "cart:"+sessionID, r.catalog, r.log)
		r.carts[sessionID] = cart
	}
	return cart
}

func (r *SessionRegistry) Wishlist(sessionID string) *WishlistStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	wl, ok := r.wishlists[sessionID]
	if !ok {
		wl = NewWishlistStore(r.store, "wishlist:"+sessionID, r.catalog, r.log)
		r.wishlists[sessionID] = wl
	}
	return wl
}

// SessionMiddleware reads the session id header, minting a fresh id when the
// client has none, and echoes it back so the browser can hold on to it.
func SessionMiddleware(c *gin.Context) {
	sid := c.GetHeader(sessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Set("sessionId", sid)
	c.Header(sessionHeader, sid)
	c.Next()
}
