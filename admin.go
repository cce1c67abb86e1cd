// admin.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminSchemaVersion = 1
const adminStateKey = "admin"

// ErrUnknownID is returned by admin updates that target an id not present in
// the collection.
var ErrUnknownID = errors.New("unknown id")

type adminState struct {
	Version  int           `json:"version"`
	Products []Product     `json:"products"`
	Orders   []Order       `json:"orders"`
	Users    []StoreUser   `json:"users"`
	Sections []PageSection `json:"sections"`
	Settings SiteSettings  `json:"settings"`
}

// AdminConfig carries the single back-office credential pair and the token
// signing secret. The credential check is a literal equality check and is
// not a security boundary; the back office sits behind the deployment's own
// access controls.
type AdminConfig struct {
	Email     string
	Password  string
	JWTSecret []byte
}

// AdminStore is the back-office aggregate: product, order, user and page
// content collections with simulated CRUD and recomputed analytics. All
// collections persist as one snapshot under the "admin" namespace;
// analytics are derived and never persisted.
type AdminStore struct {
	mu        sync.Mutex
	products  []Product
	orders    []Order
	users     []StoreUser
	sections  []PageSection
	settings  SiteSettings
	analytics Analytics

	store     StateStore
	log       *zap.Logger
	dirty     bool
	email     string
	passHash  []byte
	jwtSecret []byte
}

func NewAdminStore(store StateStore, cfg AdminConfig, log *zap.Logger) *AdminStore {
	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	a := &AdminStore{
		store:     store,
		log:       log,
		email:     cfg.Email,
		passHash:  hash,
		jwtSecret: cfg.JWTSecret,
	}
	a.seed()
	a.rehydrate()
	a.recomputeLocked()
	return a
}

func (a *AdminStore) seed() {
	a.products = append([]Product(nil), seedProducts...)
	a.orders = append([]Order(nil), seedOrders...)
	a.users = append([]StoreUser(nil), seedUsers...)
	a.sections = append([]PageSection(nil), seedSections...)
	a.settings = seedSettings
	a.analytics = seedAnalytics
}

func (a *AdminStore) rehydrate() {
	blob, err := a.store.Load(context.Background(), adminStateKey)
	if err == ErrStateNotFound {
		return
	}
	if err != nil {
		a.log.Warn("admin state load failed, using seed data", zap.Error(err))
		return
	}
	var state adminState
	if err := json.Unmarshal(blob, &state); err != nil || state.Version != adminSchemaVersion {
		a.log.Warn("discarding unreadable admin state")
		return
	}
	a.products = state.Products
	a.orders = state.Orders
	a.users = state.Users
	a.sections = state.Sections
	a.settings = state.Settings
}

func (a *AdminStore) persist() {
	state := adminState{
		Version:  adminSchemaVersion,
		Products: a.products,
		Orders:   a.orders,
		Users:    a.users,
		Sections: a.sections,
		Settings: a.settings,
	}
	blob, err := json.Marshal(state)
	if err == nil {
		err = a.store.Save(context.Background(), adminStateKey, blob)
	}
	if err != nil {
		a.dirty = true
		a.log.Warn("admin persist failed", zap.Error(err))
		return
	}
	a.dirty = false
}

// Reset discards all in-memory and persisted changes and restores the seed
// collections.
func (a *AdminStore) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seed()
	a.persist()
	a.recomputeLocked()
}

func (a *AdminStore) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

// ----- Auth -----

type adminClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Login checks the credential pair and issues a 24h session token.
func (a *AdminStore) Login(email, password string) (string, AdminUser, bool) {
	if email != a.email || bcrypt.CompareHashAndPassword(a.passHash, []byte(password)) != nil {
		return "", AdminUser{}, false
	}
	claims := adminClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(a.jwtSecret)
	if err != nil {
		a.log.Error("token signing failed", zap.Error(err))
		return "", AdminUser{}, false
	}
	user := AdminUser{
		ID:        "1",
		Name:      "Admin User",
		Email:     email,
		Role:      "super_admin",
		LastLogin: time.Now(),
	}
	return tokenStr, user, true
}

// VerifyToken parses a session token and returns the admin email.
func (a *AdminStore) VerifyToken(tokenStr string) (string, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", false
	}
	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return "", false
	}
	return claims.Email, true
}

// ----- Products -----

func (a *AdminStore) Products() []Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Product(nil), a.products...)
}

// AddProduct assigns the next id above the current maximum and appends.
func (a *AdminStore) AddProduct(p Product) Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	maxID := 0
	for _, existing := range a.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	a.products = append(a.products, p)
	a.persist()
	return p
}

// ProductUpdate is an explicit field-update command; nil fields are left
// untouched. Setting Stock updates StockCount and derives InStock from it,
// so the two stay in sync from then on.
type ProductUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Price         *int     `json:"price,omitempty"`
	OriginalPrice *int     `json:"originalPrice,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Brand         *string  `json:"brand,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
	OnSale        *bool    `json:"isOnSale,omitempty"`
	New           *bool    `json:"isNew,omitempty"`
	Trending      *bool    `json:"isTrending,omitempty"`
	Badge         *string  `json:"badge,omitempty"`
}

func (a *AdminStore) UpdateProduct(id int, upd ProductUpdate) (Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID != id {
			continue
		}
		p := &a.products[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.OriginalPrice != nil {
			p.OriginalPrice = *upd.OriginalPrice
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Brand != nil {
			p.Brand = *upd.Brand
		}
		if upd.Rating != nil {
			p.Rating = *upd.Rating
		}
		if upd.Stock != nil {
			p.StockCount = *upd.Stock
			p.InStock = *upd.Stock > 0
		}
		if upd.OnSale != nil {
			p.IsOnSale = *upd.OnSale
		}
		if upd.New != nil {
			p.IsNew = *upd.New
		}
		if upd.Trending != nil {
			p.IsTrending = *upd.Trending
		}
		if upd.Badge != nil {
			p.Badge = *upd.Badge
		}
		a.persist()
		return *p, nil
	}
	return Product{}, ErrUnknownID
}

// DeleteProduct is a no-op when the id is absent.
func (a *AdminStore) DeleteProduct(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID == id {
			a.products = append(a.products[:i], a.products[i+1:]...)
			a.persist()
			return
		}
	}
}

// ----- Orders -----

func (a *AdminStore) Orders() []Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Order(nil), a.orders...)
}

// UpdateOrderStatus sets any status value; there is no transition table.
func (a *AdminStore) UpdateOrderStatus(id string, status OrderStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == id {
			a.orders[i].Status = status
			a.orders[i].UpdatedAt = time.Now()
			a.persist()
			return nil
		}
	}
	return ErrUnknownID
}

func (a *AdminStore) UpdatePaymentStatus(id string, status PaymentStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == id {
			a.orders[i].PaymentStatus = status
			a.orders[i].UpdatedAt = time.Now()
			a.persist()
			return nil
		}
	}
	return ErrUnknownID
}

func (a *AdminStore) AddOrderNote(id, note string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == id {
			a.orders[i].Notes = note
			a.orders[i].UpdatedAt = time.Now()
			a.persist()
			return nil
		}
	}
	return ErrUnknownID
}

// ----- Users -----

func (a *AdminStore) Users() []StoreUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]StoreUser(nil), a.users...)
}

func (a *AdminStore) UpdateUserStatus(id string, status UserStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.users {
		if a.users[i].ID == id {
			a.users[i].Status = status
			a.persist()
			return nil
		}
	}
	return ErrUnknownID
}

// ----- Page content -----

// SectionsForPage returns the page's sections sorted by their order field.
func (a *AdminStore) SectionsForPage(page string) []PageSection {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []PageSection
	for _, s := range a.sections {
		if s.Page == page {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (a *AdminStore) Sections() []PageSection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]PageSection(nil), a.sections...)
}

func (a *AdminStore) AddSection(page string, s PageSection) PageSection {
	a.mu.Lock()
	defer a.mu.Unlock()
	s.ID = page + "-" + uuid.NewString()
	s.Page = page
	a.sections = append(a.sections, s)
	a.persist()
	return s
}

func (a *AdminStore) UpdateSectionContent(id string, content map[string]any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.sections {
		if a.sections[i].ID == id {
			a.sections[i].Content = content
			a.persist()
			return nil
		}
	}
	return ErrUnknownID
}

// DeleteSection is a no-op when the id is absent.
func (a *AdminStore) DeleteSection(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.sections {
		if a.sections[i].ID == id {
			a.sections = append(a.sections[:i], a.sections[i+1:]...)
			a.persist()
			return
		}
	}
}

// ReorderSections replaces the page's sections wholesale with the given
// sequence, renumbering the order field to match; sections of other pages
// are untouched.
func (a *AdminStore) ReorderSections(page string, ordered []PageSection) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.sections[:0]
	for _, s := range a.sections {
		if s.Page != page {
			kept = append(kept, s)
		}
	}
	a.sections = kept
	for i, s := range ordered {
		s.Page = page
		s.Order = i + 1
		a.sections = append(a.sections, s)
	}
	a.persist()
}

// ----- Settings -----

func (a *AdminStore) Settings() SiteSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// SettingsUpdate mirrors ProductUpdate: explicit optional fields instead of
// an untyped partial merge.
type SettingsUpdate struct {
	SiteName        *string      `json:"siteName,omitempty"`
	SiteDescription *string      `json:"siteDescription,omitempty"`
	Currency        *string      `json:"currency,omitempty"`
	ContactEmail    *string      `json:"contactEmail,omitempty"`
	ContactPhone    *string      `json:"contactPhone,omitempty"`
	WhatsAppNumber  *string      `json:"whatsappNumber,omitempty"`
	SocialMedia     *SocialMedia `json:"socialMedia,omitempty"`
}

func (a *AdminStore) UpdateSettings(upd SettingsUpdate) SiteSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	if upd.SiteName != nil {
		a.settings.SiteName = *upd.SiteName
	}
	if upd.SiteDescription != nil {
		a.settings.SiteDescription = *upd.SiteDescription
	}
	if upd.Currency != nil {
		a.settings.Currency = *upd.Currency
	}
	if upd.ContactEmail != nil {
		a.settings.ContactEmail = *upd.ContactEmail
	}
	if upd.ContactPhone != nil {
		a.settings.ContactPhone = *upd.ContactPhone
	}
	if upd.WhatsAppNumber != nil {
		a.settings.WhatsAppNumber = *upd.WhatsAppNumber
	}
	if upd.SocialMedia != nil {
		a.settings.SocialMedia = *upd.SocialMedia
	}
	a.persist()
	return a.settings
}

// ----- Analytics -----

func (a *AdminStore) Analytics() Analytics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analytics
}

// RecomputeAnalytics re-derives the summation fields from the current
// collections. Full summation every time, not incremental; the seeded
// breakdown slices are carried through unchanged.
func (a *AdminStore) RecomputeAnalytics() Analytics {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recomputeLocked()
	return a.analytics
}

func (a *AdminStore) recomputeLocked() {
	revenue := 0
	counts := make(map[OrderStatus]int)
	for _, o := range a.orders {
		revenue += o.Total
		counts[o.Status]++
	}
	a.analytics.TotalRevenue = revenue
	a.analytics.TotalOrders = len(a.orders)
	a.analytics.TotalUsers = len(a.users)
	a.analytics.StatusCounts = counts
	if len(a.orders) > 0 {
		a.analytics.AverageOrderValue = revenue / len(a.orders)
	} else {
		a.analytics.AverageOrderValue = 0
	}
}
