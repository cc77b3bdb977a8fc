package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
	"github.com/regarstore/v0-xl-kuota-website/checkout"
	cartControllers "github.com/regarstore/v0-xl-kuota-website/controllers/cart"
	checkoutControllers "github.com/regarstore/v0-xl-kuota-website/controllers/checkout"
	orderControllers "github.com/regarstore/v0-xl-kuota-website/controllers/order"
	productcontroller "github.com/regarstore/v0-xl-kuota-website/controllers/product"
	promoControllers "github.com/regarstore/v0-xl-kuota-website/controllers/promo"
	"github.com/regarstore/v0-xl-kuota-website/events"
	"github.com/regarstore/v0-xl-kuota-website/middleware"
	"github.com/regarstore/v0-xl-kuota-website/orders"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

// Deps carries everything the route handlers need.
type Deps struct {
	Catalog  *catalog.Catalog
	Cart     store.CartStore
	Checkout *checkout.Finalizer
	Orders   *orders.Log
	Hub      *events.Hub
}

// SetupRoutes is the single entry-point that wires up all endpoint groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// ──────────────── Catalog (public, no session needed) ────────────────
	r.GET("/products", productcontroller.GetProducts(d.Catalog))
	r.GET("/products/export", productcontroller.ExportProductsToExcel(d.Catalog))
	r.GET("/products/:id", productcontroller.GetProductByID(d.Catalog))
	r.GET("/promos", promoControllers.GetPromos(d.Catalog))

	// ──────────────── Shopping Cart (session-scoped) ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Session)
	{
		cartGroup.GET("", cartControllers.GetCart(d.Cart))                       // GET /cart
		cartGroup.GET("/count", cartControllers.GetCartCount(d.Cart))            // GET /cart/count
		cartGroup.POST("", cartControllers.AddToCart(d.Cart, d.Catalog))         // POST /cart
		cartGroup.POST("/promo", promoControllers.ApplyPromo(d.Catalog))         // POST /cart/promo
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(d.Cart))    // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(d.Cart)) // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(d.Cart))                  // DELETE /cart
	}

	// ──────────────── Checkout ────────────────
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.Session)
	{
		checkoutGroup.GET("", checkoutControllers.GetCheckout(d.Checkout))
		checkoutGroup.POST("", checkoutControllers.SubmitCheckout(d.Checkout))
	}

	// ──────────────── Orders ────────────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.Session)
	{
		orderGroup.GET("", orderControllers.GetOrders(d.Orders))
	}

	// ──────────────── Cart change notifications ────────────────
	r.GET("/ws/cart", cartControllers.CartWebSocketHandler(d.Hub))
}
