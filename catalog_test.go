package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagProduct(id int, trending, onSale, isNew bool) Product {
	return Product{ID: id, Name: "P", Price: 100, IsTrending: trending, IsOnSale: onSale, IsNew: isNew}
}

func TestProductByID(t *testing.T) {
	c := NewCatalog(seedProducts)

	p, ok := c.ProductByID(2)
	require.True(t, ok)
	assert.Equal(t, "iPhone 15 Pro Max 256GB", p.Name)

	_, ok = c.ProductByID(999)
	assert.False(t, ok)
}

func TestProductsByCategoryCaseInsensitive(t *testing.T) {
	c := NewCatalog(seedProducts)

	lower := c.ProductsByCategory("smartphones")
	upper := c.ProductsByCategory("Smartphones")
	require.Len(t, lower, 2)
	assert.Equal(t, upper, lower)

	assert.Empty(t, c.ProductsByCategory("no-such-category"))
}

func TestSearchProducts(t *testing.T) {
	c := NewCatalog(seedProducts)

	hits := c.SearchProducts("iphone")
	require.Len(t, hits, 1)
	assert.Equal(t, "Apple", hits[0].Brand)

	// Brand and description are searched too.
	assert.NotEmpty(t, c.SearchProducts("apple"))
	assert.NotEmpty(t, c.SearchProducts("noise canceling"))

	assert.Empty(t, c.SearchProducts("zzz-no-match"))
}

func TestSearchProductsEmptyQueryReturnsFullCatalog(t *testing.T) {
	c := NewCatalog(seedProducts)

	assert.Len(t, c.SearchProducts(""), c.Len())
	assert.Len(t, c.SearchProducts("   "), c.Len())
}

func TestBrandsSortedDistinct(t *testing.T) {
	c := NewCatalog(seedProducts)

	brands := c.Brands()
	assert.Equal(t, []string{"Apple", "Canon", "Dell", "Samsung", "Sony"}, brands)
}

func TestFilterAndSortPriceLow(t *testing.T) {
	c := NewCatalog(seedProducts)

	out := FilterAndSort(c.Products(), Filter{SortBy: SortPriceLow})
	require.Len(t, out, c.Len())
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Price, out[i].Price)
	}

	out = FilterAndSort(c.Products(), Filter{SortBy: SortPriceHigh})
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Price, out[i].Price)
	}
}

func TestFilterAndSortRatingAndPopular(t *testing.T) {
	c := NewCatalog(seedProducts)

	out := FilterAndSort(c.Products(), Filter{SortBy: SortRating})
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}

	out = FilterAndSort(c.Products(), Filter{SortBy: SortPopular})
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Reviews, out[i].Reviews)
	}
}

func TestFilterAndSortNewestPartitions(t *testing.T) {
	in := []Product{
		flagProduct(1, false, false, false),
		flagProduct(2, false, false, true),
		flagProduct(3, false, false, false),
		flagProduct(4, false, false, true),
	}
	out := FilterAndSort(in, Filter{SortBy: SortNewest})
	ids := []int{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
	// New items first, input order preserved within each half.
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
}

func TestFilterAndSortFeaturedStablePartition(t *testing.T) {
	in := []Product{
		flagProduct(1, false, false, false),
		flagProduct(2, false, true, false),
		flagProduct(3, true, false, false),
		flagProduct(4, true, true, false),
		flagProduct(5, true, true, false),
	}
	out := FilterAndSort(in, Filter{SortBy: SortFeatured})
	ids := make([]int, len(out))
	for i, p := range out {
		ids[i] = p.ID
	}
	// Trending before non-trending, on-sale first within each group, and the
	// 4/5 tie keeps input order.
	assert.Equal(t, []int{4, 5, 3, 2, 1}, ids)
}

func TestFilterPriceRangeAndRating(t *testing.T) {
	c := NewCatalog(seedProducts)

	out := FilterAndSort(c.Products(), Filter{PriceRange: &PriceRange{Min: 400000, Max: 1000000}})
	require.NotEmpty(t, out)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Price, 400000)
		assert.LessOrEqual(t, p.Price, 1000000)
	}

	out = FilterAndSort(c.Products(), Filter{MinRating: 4.8})
	require.NotEmpty(t, out)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Rating, 4.8)
	}
}

func TestFilterBrandsEmptyIsPassThrough(t *testing.T) {
	c := NewCatalog(seedProducts)

	all := FilterAndSort(c.Products(), Filter{})
	assert.Len(t, all, c.Len())

	apple := FilterAndSort(c.Products(), Filter{Brands: []string{"Apple"}})
	require.NotEmpty(t, apple)
	for _, p := range apple {
		assert.Equal(t, "Apple", p.Brand)
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	c := NewCatalog(seedProducts)
	in := c.Products()
	firstID := in[0].ID

	FilterAndSort(in, Filter{SortBy: SortPriceHigh})
	assert.Equal(t, firstID, in[0].ID)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₦0", FormatPrice(0))
	assert.Equal(t, "₦500", FormatPrice(500))
	assert.Equal(t, "₦1,000", FormatPrice(1000))
	assert.Equal(t, "₦1,850,000", FormatPrice(1850000))
	assert.Equal(t, "-₦2,500", FormatPrice(-2500))
}

func TestPrimaryImageFallback(t *testing.T) {
	p := Product{Image: "", Images: []string{"/a.jpg", "/b.jpg"}}
	assert.Equal(t, "/a.jpg", p.PrimaryImage())

	p.Image = "/main.jpg"
	assert.Equal(t, "/main.jpg", p.PrimaryImage())

	assert.Equal(t, "", Product{}.PrimaryImage())
}
