// catalog.go

package main

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the read-only product source. It is built once at startup and
// never mutated on the storefront path; catalog changes ship as new seed data.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	return c
}

// Products returns the full catalog in seed order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// ProductByID reports absence through the bool; an unknown id is an expected
// outcome (the storefront renders a not-found page), not an error.
func (c *Catalog) ProductByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ProductsByCategory matches the category label exactly, case-insensitively.
func (c *Catalog) ProductsByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts does a case-insensitive substring match over name, brand,
// category and description. An empty or whitespace query matches everything
// and returns the full catalog.
func (c *Catalog) SearchProducts(query string) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return c.Products()
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// Brands returns the distinct brand names in the catalog, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out
}

const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Filter is the parameter set of the shop/category grids. A nil PriceRange
// and an empty Brands list are pass-throughs; SortBy defaults to featured.
type Filter struct {
	PriceRange *PriceRange
	Brands     []string
	MinRating  float64
	SortBy     string
}

// FilterAndSort applies the price-range, brand and rating filters in that
// order, then sorts. The input slice is not modified.
func FilterAndSort(products []Product, f Filter) []Product {
	brandSet := make(map[string]struct{}, len(f.Brands))
	for _, b := range f.Brands {
		brandSet[b] = struct{}{}
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
			continue
		}
		if len(brandSet) > 0 {
			if _, ok := brandSet[p.Brand]; !ok {
				continue
			}
		}
		if p.Rating < f.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortNewest:
		// Partition new before not-new, original order within each half.
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].IsNew && !filtered[j].IsNew })
	case SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Reviews > filtered[j].Reviews })
	default:
		// Featured: trending first, then on-sale within each group. Stable,
		// so ties keep catalog order.
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].IsTrending != filtered[j].IsTrending {
				return filtered[i].IsTrending
			}
			return filtered[i].IsOnSale && !filtered[j].IsOnSale
		})
	}
	return filtered
}

// FormatPrice renders a minor-unit-free naira amount with digit grouping,
// e.g. 1850000 -> "₦1,850,000".
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	prefix := "₦"
	if neg {
		prefix = "-₦"
	}
	return prefix + b.String()
}
