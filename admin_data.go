// admin_data.go
//
// Seed back-office data. Orders, users and page content start from these
// records; admin edits persist through the state store and a Reset restores
// them.

package main

import "time"

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

var seedOrders = []Order{
	{
		ID: "ORD-2024-001",
		Customer: Customer{
			Name:    "John Doe",
			Email:   "john@example.com",
			Phone:   "+234 801 234 5678",
			Address: "Lagos, Nigeria",
		},
		Items: []OrderItem{
			{ID: 1, Name: "Samsung Galaxy S24 Ultra", Quantity: 1, Price: 1850000, Image: "/images/samsung-s24-ultra.jpg"},
		},
		Total:          1850000,
		Status:         OrderProcessing,
		PaymentStatus:  PaymentPaid,
		CreatedAt:      mustTime("2024-01-15T10:30:00Z"),
		UpdatedAt:      mustTime("2024-01-15T10:30:00Z"),
		TrackingNumber: "TRK123456789",
	},
	{
		ID: "ORD-2024-002",
		Customer: Customer{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Phone:   "+234 802 345 6789",
			Address: "Abuja, Nigeria",
		},
		Items: []OrderItem{
			{ID: 2, Name: "iPhone 15 Pro Max", Quantity: 1, Price: 2200000, Image: "/images/iphone-15-pro-max.jpg"},
		},
		Total:          2200000,
		Status:         OrderShipped,
		PaymentStatus:  PaymentPaid,
		CreatedAt:      mustTime("2024-01-14T15:45:00Z"),
		UpdatedAt:      mustTime("2024-01-15T09:20:00Z"),
		TrackingNumber: "TRK987654321",
	},
}

var seedUsers = []StoreUser{
	{
		ID:            "USR-001",
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "+234 801 234 5678",
		Address:       "Lagos, Nigeria",
		Status:        UserActive,
		CreatedAt:     mustTime("2023-12-15T00:00:00Z"),
		TotalOrders:   5,
		TotalSpent:    4500000,
		LastOrderDate: mustTime("2024-01-15T00:00:00Z"),
	},
	{
		ID:            "USR-002",
		Name:          "Jane Smith",
		Email:         "jane@example.com",
		Phone:         "+234 802 345 6789",
		Address:       "Abuja, Nigeria",
		Status:        UserActive,
		CreatedAt:     mustTime("2023-11-20T00:00:00Z"),
		TotalOrders:   3,
		TotalSpent:    3200000,
		LastOrderDate: mustTime("2024-01-14T00:00:00Z"),
	},
}

var seedSections = []PageSection{
	{
		ID:      "hero-1",
		Page:    "home",
		Section: "hero",
		Content: map[string]any{
			"title":           "Premium Electronics Store",
			"subtitle":        "Discover the latest technology at unbeatable prices",
			"buttonText":      "Shop Now",
			"buttonLink":      "/shop",
			"backgroundImage": "/images/hero-laptop.jpg",
		},
		Type:     SectionHero,
		Order:    1,
		IsActive: true,
	},
}

var seedSettings = SiteSettings{
	SiteName:        "Nuclear Vision Global Limited",
	SiteDescription: "Premium electronics store in Nigeria",
	Currency:        "NGN",
	ContactEmail:    "info@nuclearvision.com",
	ContactPhone:    "+234 800 123 4567",
	WhatsAppNumber:  "2348001234567",
	SocialMedia: SocialMedia{
		Facebook:  "https://facebook.com/nuclearvision",
		Twitter:   "https://twitter.com/nuclearvision",
		Instagram: "https://instagram.com/nuclearvision",
	},
}

// The breakdown slices are reporting seed data; the summation fields get
// overwritten by the first RecomputeAnalytics.
var seedAnalytics = Analytics{
	ConversionRate: 3.2,
	TopProducts: []ProductSales{
		{ID: 1, Name: "Samsung Galaxy S24 Ultra", Sales: 45, Revenue: 83250000},
		{ID: 2, Name: "iPhone 15 Pro Max", Sales: 32, Revenue: 70400000},
	},
	RevenueByMonth: []MonthlyRevenue{
		{Month: "Jan", Revenue: 2400000, Orders: 45},
		{Month: "Feb", Revenue: 1800000, Orders: 32},
		{Month: "Mar", Revenue: 3200000, Orders: 58},
		{Month: "Apr", Revenue: 2800000, Orders: 49},
		{Month: "May", Revenue: 3600000, Orders: 67},
		{Month: "Jun", Revenue: 4200000, Orders: 78},
	},
	CategoryShare: []CategoryShare{
		{Name: "Smartphones", Value: 45, Color: "#0ea5e9"},
		{Name: "Laptops", Value: 25, Color: "#8b5cf6"},
		{Name: "Audio", Value: 20, Color: "#10b981"},
		{Name: "Others", Value: 10, Color: "#f59e0b"},
	},
}
