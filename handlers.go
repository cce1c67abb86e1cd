// handlers.go

package main

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	catalog  *Catalog
	sessions *SessionRegistry
	admin    *AdminStore
	log      *zap.Logger
}

func NewServer(catalog *Catalog, sessions *SessionRegistry, admin *AdminStore, log *zap.Logger) *Server {
	return &Server{catalog: catalog, sessions: sessions, admin: admin, log: log}
}

func (s *Server) Routes(r *gin.Engine) {
	// Catalog
	r.GET("/api/products", s.listProducts)
	r.GET("/api/products/:id", s.getProduct)
	r.GET("/api/categories/:category", s.listByCategory)
	r.GET("/api/search", s.search)
	r.GET("/api/shop", s.shop)
	r.GET("/api/brands", s.listBrands)

	// Session-scoped storefront state
	sess := r.Group("/api", SessionMiddleware)
	{
		sess.GET("/cart", s.getCart)
		sess.POST("/cart", s.addToCart)
		sess.PUT("/cart/:productId", s.updateCart)
		sess.DELETE("/cart/:productId", s.removeCartItem)
		sess.POST("/cart/clear", s.clearCart)

		sess.GET("/wishlist", s.getWishlist)
		sess.POST("/wishlist", s.addToWishlist)
		sess.DELETE("/wishlist/:productId", s.removeFromWishlist)
		sess.POST("/wishlist/clear", s.clearWishlist)

		sess.POST("/checkout", s.checkout)
	}

	// Admin
	r.POST("/api/admin/login", s.adminLogin)
	admin := r.Group("/api/admin", s.adminAuth)
	{
		admin.GET("/products", s.adminListProducts)
		admin.POST("/products", s.adminAddProduct)
		admin.PUT("/products/:id", s.adminUpdateProduct)
		admin.DELETE("/products/:id", s.adminDeleteProduct)

		admin.GET("/orders", s.adminListOrders)
		admin.PUT("/orders/:id/status", s.adminUpdateOrderStatus)
		admin.PUT("/orders/:id/payment", s.adminUpdatePaymentStatus)
		admin.POST("/orders/:id/notes", s.adminAddOrderNote)

		admin.GET("/users", s.adminListUsers)
		admin.PUT("/users/:id/status", s.adminUpdateUserStatus)

		admin.GET("/content/:page", s.adminListSections)
		admin.POST("/content/:page", s.adminAddSection)
		admin.PUT("/content/:page/reorder", s.adminReorderSections)
		admin.PUT("/sections/:id", s.adminUpdateSection)
		admin.DELETE("/sections/:id", s.adminDeleteSection)

		admin.GET("/settings", s.adminGetSettings)
		admin.PUT("/settings", s.adminUpdateSettings)

		admin.GET("/analytics", s.adminAnalytics)
		admin.POST("/reset", s.adminReset)
	}
}

func (s *Server) adminAuth(c *gin.Context) {
	tokenStr := c.GetHeader("Authorization")
	if len(tokenStr) < 8 || !strings.HasPrefix(tokenStr, "Bearer ") {
		c.AbortWithStatusJSON(401, gin.H{"error": "missing token"})
		return
	}
	email, ok := s.admin.VerifyToken(tokenStr[7:])
	if !ok {
		c.AbortWithStatusJSON(401, gin.H{"error": "invalid token"})
		return
	}
	c.Set("adminEmail", email)
	c.Next()
}

// ----- Catalog -----

func (s *Server) listProducts(c *gin.Context) {
	c.JSON(200, s.catalog.Products())
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	p, ok := s.catalog.ProductByID(id)
	if !ok {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, p)
}

func (s *Server) listByCategory(c *gin.Context) {
	products := s.catalog.ProductsByCategory(c.Param("category"))
	if products == nil {
		products = []Product{}
	}
	c.JSON(200, products)
}

func (s *Server) search(c *gin.Context) {
	results := s.catalog.SearchProducts(c.Query("q"))
	if results == nil {
		results = []Product{}
	}
	c.JSON(200, results)
}

func (s *Server) listBrands(c *gin.Context) {
	c.JSON(200, s.catalog.Brands())
}

// shop serves the filtered and sorted product grid. Category and q narrow
// the base set; the rest map straight onto Filter.
func (s *Server) shop(c *gin.Context) {
	base := s.catalog.Products()
	if cat := c.Query("category"); cat != "" {
		base = s.catalog.ProductsByCategory(cat)
	} else if q := c.Query("q"); q != "" {
		base = s.catalog.SearchProducts(q)
	}

	var f Filter
	f.SortBy = c.DefaultQuery("sort", SortFeatured)
	if minS, maxS := c.Query("minPrice"), c.Query("maxPrice"); minS != "" || maxS != "" {
		pr := PriceRange{Min: 0, Max: math.MaxInt}
		if v, err := strconv.Atoi(minS); err == nil {
			pr.Min = v
		}
		if v, err := strconv.Atoi(maxS); err == nil {
			pr.Max = v
		}
		f.PriceRange = &pr
	}
	if brands := c.Query("brands"); brands != "" {
		f.Brands = strings.Split(brands, ",")
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		f.MinRating = v
	}

	results := FilterAndSort(base, f)
	if results == nil {
		results = []Product{}
	}
	c.JSON(200, gin.H{"products": results, "total": len(results)})
}

// ----- Cart -----

func (s *Server) cart(c *gin.Context) *CartStore {
	return s.sessions.Cart(c.GetString("sessionId"))
}

func (s *Server) cartJSON(cart *CartStore) gin.H {
	lines := cart.Lines()
	if lines == nil {
		lines = []CartLine{}
	}
	return gin.H{
		"items":      lines,
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
		"dirty":      cart.Dirty(),
	}
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(200, s.cartJSON(s.cart(c)))
}

func (s *Server) addToCart(c *gin.Context) {
	var req struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	p, ok := s.catalog.ProductByID(req.ProductID)
	if !ok {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	cart := s.cart(c)
	cart.AddItem(p, req.Quantity)
	c.JSON(200, s.cartJSON(cart))
}

func (s *Server) updateCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	cart := s.cart(c)
	cart.UpdateQuantity(productID, req.Quantity)
	c.JSON(200, s.cartJSON(cart))
}

func (s *Server) removeCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	cart := s.cart(c)
	cart.RemoveItem(productID)
	c.JSON(200, s.cartJSON(cart))
}

func (s *Server) clearCart(c *gin.Context) {
	cart := s.cart(c)
	cart.Clear()
	c.JSON(200, gin.H{"status": "cleared"})
}

// ----- Wishlist -----

func (s *Server) wishlist(c *gin.Context) *WishlistStore {
	return s.sessions.Wishlist(c.GetString("sessionId"))
}

func (s *Server) wishlistJSON(wl *WishlistStore) gin.H {
	items := wl.Items()
	if items == nil {
		items = []Product{}
	}
	return gin.H{
		"items":      items,
		"totalItems": wl.TotalItems(),
		"dirty":      wl.Dirty(),
	}
}

func (s *Server) getWishlist(c *gin.Context) {
	c.JSON(200, s.wishlistJSON(s.wishlist(c)))
}

func (s *Server) addToWishlist(c *gin.Context) {
	var req struct {
		ProductID int `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	p, ok := s.catalog.ProductByID(req.ProductID)
	if !ok {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	wl := s.wishlist(c)
	wl.AddItem(p)
	c.JSON(200, s.wishlistJSON(wl))
}

func (s *Server) removeFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	wl := s.wishlist(c)
	wl.RemoveItem(productID)
	c.JSON(200, s.wishlistJSON(wl))
}

func (s *Server) clearWishlist(c *gin.Context) {
	wl := s.wishlist(c)
	wl.Clear()
	c.JSON(200, gin.H{"status": "cleared"})
}

// ----- Checkout -----

// checkout validates the contact fields, builds the order summary from the
// live cart, clears the cart and hands back the prefilled WhatsApp link the
// storefront opens. Quantities above the stock count are surfaced as
// warnings, not failures.
func (s *Server) checkout(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		c.JSON(400, gin.H{"error": "missing required fields", "fields": missing})
		return
	}

	cart := s.cart(c)
	lines := cart.Lines()
	if len(lines) == 0 {
		c.JSON(400, gin.H{"error": "cart is empty"})
		return
	}

	var warnings []string
	var summary []string
	for _, l := range lines {
		if p, ok := s.catalog.ProductByID(l.Product.ID); ok && l.Quantity > p.StockCount {
			warnings = append(warnings, fmt.Sprintf("%s: requested %d, only %d available", p.Name, l.Quantity, p.StockCount))
		}
		summary = append(summary, fmt.Sprintf("%dx %s — %s", l.Quantity, l.Product.Name, FormatPrice(l.Product.Price*l.Quantity)))
	}
	total := cart.TotalPrice()

	msg := fmt.Sprintf("New order from %s\n\n%s\n\nTotal: %s\nDelivery: %s\nPhone: %s",
		req.Name, strings.Join(summary, "\n"), FormatPrice(total), req.Address, req.Phone)
	waURL := "https://wa.me/" + s.admin.Settings().WhatsAppNumber + "?text=" + url.QueryEscape(msg)

	cart.Clear()

	c.JSON(200, gin.H{
		"success":     true,
		"total":       total,
		"whatsappUrl": waURL,
		"warnings":    warnings,
	})
}

// ----- Admin -----

func (s *Server) adminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	token, user, ok := s.admin.Login(req.Email, req.Password)
	if !ok {
		c.JSON(401, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(200, gin.H{"user": user, "token": token})
}

func (s *Server) adminListProducts(c *gin.Context) {
	c.JSON(200, s.admin.Products())
}

func (s *Server) adminAddProduct(c *gin.Context) {
	var p Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	c.JSON(200, s.admin.AddProduct(p))
}

func (s *Server) adminUpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	var upd ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	p, err := s.admin.UpdateProduct(id, upd)
	if err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, p)
}

func (s *Server) adminDeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid product id"})
		return
	}
	s.admin.DeleteProduct(id)
	c.JSON(200, gin.H{"status": "deleted"})
}

func (s *Server) adminListOrders(c *gin.Context) {
	c.JSON(200, s.admin.Orders())
}

func (s *Server) adminUpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := s.admin.UpdateOrderStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (s *Server) adminUpdatePaymentStatus(c *gin.Context) {
	var req struct {
		Status PaymentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := s.admin.UpdatePaymentStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (s *Server) adminAddOrderNote(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := s.admin.AddOrderNote(c.Param("id"), req.Note); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (s *Server) adminListUsers(c *gin.Context) {
	c.JSON(200, s.admin.Users())
}

func (s *Server) adminUpdateUserStatus(c *gin.Context) {
	var req struct {
		Status UserStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := s.admin.UpdateUserStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (s *Server) adminListSections(c *gin.Context) {
	sections := s.admin.SectionsForPage(c.Param("page"))
	if sections == nil {
		sections = []PageSection{}
	}
	c.JSON(200, sections)
}

func (s *Server) adminAddSection(c *gin.Context) {
	var section PageSection
	if err := c.ShouldBindJSON(&section); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	c.JSON(200, s.admin.AddSection(c.Param("page"), section))
}

func (s *Server) adminReorderSections(c *gin.Context) {
	var ordered []PageSection
	if err := c.ShouldBindJSON(&ordered); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	s.admin.ReorderSections(c.Param("page"), ordered)
	c.JSON(200, s.admin.SectionsForPage(c.Param("page")))
}

func (s *Server) adminUpdateSection(c *gin.Context) {
	var req struct {
		Content map[string]any `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := s.admin.UpdateSectionContent(c.Param("id"), req.Content); err != nil {
		c.JSON(404, gin.H{"error": "not found"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (s *Server) adminDeleteSection(c *gin.Context) {
	s.admin.DeleteSection(c.Param("id"))
	c.JSON(200, gin.H{"status": "deleted"})
}

func (s *Server) adminGetSettings(c *gin.Context) {
	c.JSON(200, s.admin.Settings())
}

func (s *Server) adminUpdateSettings(c *gin.Context) {
	var upd SettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	c.JSON(200, s.admin.UpdateSettings(upd))
}

func (s *Server) adminAnalytics(c *gin.Context) {
	c.JSON(200, s.admin.RecomputeAnalytics())
}

func (s *Server) adminReset(c *gin.Context) {
	s.admin.Reset()
	c.JSON(200, gin.H{"status": "reset"})
}
