package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAdminConfig() AdminConfig {
	return AdminConfig{
		Email:     "admin@nuclearvision.com",
		Password:  "admin123",
		JWTSecret: []byte("test-secret"),
	}
}

func newTestAdmin(t *testing.T) (*AdminStore, StateStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewAdminStore(store, testAdminConfig(), zap.NewNop()), store
}

func TestAdminLogin(t *testing.T) {
	admin, _ := newTestAdmin(t)

	token, user, ok := admin.Login("admin@nuclearvision.com", "admin123")
	require.True(t, ok)
	assert.Equal(t, "super_admin", user.Role)

	email, valid := admin.VerifyToken(token)
	require.True(t, valid)
	assert.Equal(t, "admin@nuclearvision.com", email)

	_, _, ok = admin.Login("admin@nuclearvision.com", "wrong")
	assert.False(t, ok)
	_, _, ok = admin.Login("someone@else.com", "admin123")
	assert.False(t, ok)

	_, valid = admin.VerifyToken("not-a-token")
	assert.False(t, valid)
}

func TestAdminAddProductAssignsNextID(t *testing.T) {
	admin, _ := newTestAdmin(t)

	before := admin.Products()
	maxID := 0
	for _, p := range before {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	added := admin.AddProduct(Product{Name: "New Gadget", Price: 100000, Category: "Audio", Brand: "Sony"})
	assert.Equal(t, maxID+1, added.ID)
	assert.Len(t, admin.Products(), len(before)+1)
}

func TestAdminUpdateProductTypedFields(t *testing.T) {
	admin, _ := newTestAdmin(t)

	price := 999999
	stock := 0
	name := "Renamed"
	p, err := admin.UpdateProduct(1, ProductUpdate{Name: &name, Price: &price, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)
	assert.Equal(t, 999999, p.Price)
	assert.Equal(t, 0, p.StockCount)
	// Stock updates keep the flag in sync.
	assert.False(t, p.InStock)

	// Untouched fields survive.
	assert.Equal(t, "Samsung", p.Brand)

	_, err = admin.UpdateProduct(999, ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestAdminDeleteProduct(t *testing.T) {
	admin, _ := newTestAdmin(t)
	before := len(admin.Products())

	admin.DeleteProduct(1)
	assert.Len(t, admin.Products(), before-1)

	// Absent id is a no-op.
	admin.DeleteProduct(999)
	assert.Len(t, admin.Products(), before-1)
}

func TestAdminOrderStatusUpdates(t *testing.T) {
	admin, _ := newTestAdmin(t)
	orders := admin.Orders()
	require.NotEmpty(t, orders)
	id := orders[0].ID
	prevUpdated := orders[0].UpdatedAt

	require.NoError(t, admin.UpdateOrderStatus(id, OrderCancelled))
	require.NoError(t, admin.UpdatePaymentStatus(id, PaymentRefunded))
	require.NoError(t, admin.AddOrderNote(id, "customer requested refund"))

	var got Order
	for _, o := range admin.Orders() {
		if o.ID == id {
			got = o
		}
	}
	assert.Equal(t, OrderCancelled, got.Status)
	assert.Equal(t, PaymentRefunded, got.PaymentStatus)
	assert.Equal(t, "customer requested refund", got.Notes)
	assert.True(t, got.UpdatedAt.After(prevUpdated))

	assert.ErrorIs(t, admin.UpdateOrderStatus("ORD-NOPE", OrderPending), ErrUnknownID)
}

func TestAdminUpdateUserStatus(t *testing.T) {
	admin, _ := newTestAdmin(t)

	require.NoError(t, admin.UpdateUserStatus("USR-001", UserBlocked))
	for _, u := range admin.Users() {
		if u.ID == "USR-001" {
			assert.Equal(t, UserBlocked, u.Status)
		}
	}
	assert.ErrorIs(t, admin.UpdateUserStatus("USR-NOPE", UserActive), ErrUnknownID)
}

func TestAdminRecomputeAnalytics(t *testing.T) {
	admin, _ := newTestAdmin(t)

	got := admin.RecomputeAnalytics()

	wantRevenue := 0
	wantCounts := map[OrderStatus]int{}
	orders := admin.Orders()
	for _, o := range orders {
		wantRevenue += o.Total
		wantCounts[o.Status]++
	}
	assert.Equal(t, wantRevenue, got.TotalRevenue)
	assert.Equal(t, len(orders), got.TotalOrders)
	assert.Equal(t, len(admin.Users()), got.TotalUsers)
	assert.Equal(t, wantCounts, got.StatusCounts)
	assert.Equal(t, wantRevenue/len(orders), got.AverageOrderValue)

	// A status change shows up on the next recompute, not before.
	require.NoError(t, admin.UpdateOrderStatus(orders[0].ID, OrderDelivered))
	got = admin.RecomputeAnalytics()
	assert.Equal(t, 1, got.StatusCounts[OrderDelivered])
}

func TestAdminReorderSectionsFullReplace(t *testing.T) {
	admin, _ := newTestAdmin(t)

	a := admin.AddSection("about", PageSection{Section: "intro", Type: SectionText, Order: 1, IsActive: true})
	b := admin.AddSection("home", PageSection{Section: "deals", Type: SectionProductGrid, Order: 2, IsActive: true})
	home := admin.SectionsForPage("home")
	require.Len(t, home, 2)

	// Reverse the home page; drop nothing.
	admin.ReorderSections("home", []PageSection{home[1], home[0]})
	got := admin.SectionsForPage("home")
	require.Len(t, got, 2)
	assert.Equal(t, home[1].ID, got[0].ID)
	assert.Equal(t, home[0].ID, got[1].ID)
	assert.Equal(t, 1, got[0].Order)
	assert.Equal(t, 2, got[1].Order)

	// Full-replace: reordering with a subset drops the omitted section.
	admin.ReorderSections("home", []PageSection{b})
	assert.Len(t, admin.SectionsForPage("home"), 1)

	// Other pages untouched throughout.
	about := admin.SectionsForPage("about")
	require.Len(t, about, 1)
	assert.Equal(t, a.ID, about[0].ID)
}

func TestAdminSectionContentUpdateAndDelete(t *testing.T) {
	admin, _ := newTestAdmin(t)

	s := admin.AddSection("home", PageSection{Section: "promo", Type: SectionCTA, Order: 5, IsActive: true})
	require.NoError(t, admin.UpdateSectionContent(s.ID, map[string]any{"title": "Sale"}))

	var got PageSection
	for _, sec := range admin.Sections() {
		if sec.ID == s.ID {
			got = sec
		}
	}
	assert.Equal(t, "Sale", got.Content["title"])

	admin.DeleteSection(s.ID)
	for _, sec := range admin.Sections() {
		assert.NotEqual(t, s.ID, sec.ID)
	}
	assert.ErrorIs(t, admin.UpdateSectionContent(s.ID, nil), ErrUnknownID)
}

func TestAdminUpdateSettings(t *testing.T) {
	admin, _ := newTestAdmin(t)

	name := "New Store Name"
	wa := "2349998887777"
	got := admin.UpdateSettings(SettingsUpdate{SiteName: &name, WhatsAppNumber: &wa})
	assert.Equal(t, "New Store Name", got.SiteName)
	assert.Equal(t, "2349998887777", got.WhatsAppNumber)
	// Unset fields keep their seed values.
	assert.Equal(t, "NGN", got.Currency)
}

func TestAdminStatePersistsAcrossRestart(t *testing.T) {
	store := NewMemoryStore()
	log := zap.NewNop()
	admin := NewAdminStore(store, testAdminConfig(), log)

	name := "Persisted Rename"
	_, err := admin.UpdateProduct(2, ProductUpdate{Name: &name})
	require.NoError(t, err)

	reloaded := NewAdminStore(store, testAdminConfig(), log)
	var found bool
	for _, p := range reloaded.Products() {
		if p.ID == 2 {
			found = true
			assert.Equal(t, "Persisted Rename", p.Name)
		}
	}
	assert.True(t, found)
}

func TestAdminResetRestoresSeedData(t *testing.T) {
	admin, _ := newTestAdmin(t)

	admin.DeleteProduct(1)
	admin.DeleteProduct(2)
	require.Len(t, admin.Products(), len(seedProducts)-2)

	admin.Reset()
	assert.Len(t, admin.Products(), len(seedProducts))
	assert.Len(t, admin.Orders(), len(seedOrders))
}

func TestSeedOrderTimestampsParse(t *testing.T) {
	for _, o := range seedOrders {
		assert.False(t, o.CreatedAt.IsZero())
		assert.True(t, o.UpdatedAt.Equal(o.CreatedAt) || o.UpdatedAt.After(o.CreatedAt))
		assert.True(t, o.CreatedAt.Before(time.Now()))
	}
}
