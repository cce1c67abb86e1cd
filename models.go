// models.go

package main

import "time"

// Product is a catalog entry. Both InStock and StockCount are stored as-is
// from the seed data and may disagree there; InStock is the display source of
// truth, and admin stock updates keep the two in sync going forward.
type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Price          int             `json:"price"`
	OriginalPrice  int             `json:"originalPrice,omitempty"`
	Image          string          `json:"image"`
	Images         []string        `json:"images"`
	Rating         float64         `json:"rating"`
	Reviews        int             `json:"reviews"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	Description    string          `json:"description"`
	Features       []string        `json:"features"`
	Specifications []Specification `json:"specifications"`
	IsOnSale       bool            `json:"isOnSale,omitempty"`
	Badge          string          `json:"badge,omitempty"`
	InStock        bool            `json:"inStock"`
	StockCount     int             `json:"stockCount"`
	IsNew          bool            `json:"isNew,omitempty"`
	IsTrending     bool            `json:"isTrending,omitempty"`
	FreeShipping   bool            `json:"freeShipping,omitempty"`
	FastDelivery   bool            `json:"fastDelivery,omitempty"`
	Warranty       string          `json:"warranty"`
	ReturnPolicy   string          `json:"returnPolicy"`
}

// Specification is one label/value row of the spec table. A slice keeps the
// display order, which a map would lose.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PrimaryImage returns Image, falling back to the first of Images.
func (p Product) PrimaryImage() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// CartLine is one (product, quantity) pairing; at most one per product id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
}

// Order is back-office data. Total is stored, not derived from Items, and the
// two are not reconciled on mutation.
type Order struct {
	ID             string        `json:"id"`
	Customer       Customer      `json:"customer"`
	Items          []OrderItem   `json:"items"`
	Total          int           `json:"total"`
	Status         OrderStatus   `json:"status"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	TrackingNumber string        `json:"trackingNumber,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBlocked  UserStatus = "blocked"
)

type StoreUser struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Status        UserStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	TotalOrders   int        `json:"totalOrders"`
	TotalSpent    int        `json:"totalSpent"`
	LastOrderDate time.Time  `json:"lastOrderDate,omitzero"`
}

type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionText         SectionType = "text"
	SectionImage        SectionType = "image"
	SectionProductGrid  SectionType = "product_grid"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionCustom       SectionType = "custom"
)

// PageSection is one content block of a storefront page. Content is opaque to
// the store; the renderer interprets it by Type.
type PageSection struct {
	ID       string         `json:"id"`
	Page     string         `json:"page"`
	Section  string         `json:"section"`
	Content  map[string]any `json:"content"`
	Type     SectionType    `json:"type"`
	Order    int            `json:"order"`
	IsActive bool           `json:"isActive"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type SiteSettings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	Currency        string      `json:"currency"`
	ContactEmail    string      `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
	WhatsAppNumber  string      `json:"whatsappNumber"`
	SocialMedia     SocialMedia `json:"socialMedia"`
}

type AdminUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LastLogin time.Time `json:"lastLogin"`
}

type ProductSales struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue int    `json:"revenue"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}

type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Analytics is a derived view over the admin collections. The summation
// fields are recomputed in full by RecomputeAnalytics; the breakdown slices
// are seeded reporting data carried alongside.
type Analytics struct {
	TotalRevenue      int                 `json:"totalRevenue"`
	TotalOrders       int                 `json:"totalOrders"`
	TotalUsers        int                 `json:"totalUsers"`
	ConversionRate    float64             `json:"conversionRate"`
	AverageOrderValue int                 `json:"averageOrderValue"`
	StatusCounts      map[OrderStatus]int `json:"statusCounts"`
	TopProducts       []ProductSales      `json:"topProducts"`
	RevenueByMonth    []MonthlyRevenue    `json:"revenueByMonth"`
	CategoryShare     []CategoryShare     `json:"categoryShare"`
}
