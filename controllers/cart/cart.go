package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
	"github.com/regarstore/v0-xl-kuota-website/middleware"
	"github.com/regarstore/v0-xl-kuota-website/models"
	"github.com/regarstore/v0-xl-kuota-website/store"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityInput deliberately has no minimum binding: a quantity below
// 1 is a valid request that the store rejects as a no-op, not a bad request.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func cartResponse(items models.CartItems) gin.H {
	subtotal := items.Subtotal()
	discount := 0
	return gin.H{
		"items":    items,
		"count":    items.Count(),
		"subtotal": subtotal,
		"discount": discount,
		"total":    subtotal - discount,
	}
}

// GET /cart
func GetCart(cartStore store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := cartStore.Load(c.Request.Context(), middleware.SessionID(c))
		c.JSON(http.StatusOK, cartResponse(items))
	}
}

// GET /cart/count
// The header badge count. Unlike the cart view, an absent or unreadable cart
// counts as zero here, not as the demo cart.
func GetCartCount(cartStore store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, found, err := cartStore.Peek(c.Request.Context(), middleware.SessionID(c))
		if err != nil || !found {
			c.JSON(http.StatusOK, gin.H{"count": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": items.Count()})
	}
}

// POST /cart
func AddToCart(cartStore store.CartStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.Lookup(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		id, err := strconv.Atoi(product.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan ke keranjang"})
			return
		}

		// Display fields are copied from the product here, at add time.
		line := models.CartItem{
			ID:       id,
			Name:     product.Name,
			Data:     product.Data,
			Validity: product.Validity,
			Price:    product.Price,
		}

		items, existed, err := cartStore.AddOrIncrement(c.Request.Context(), middleware.SessionID(c), line)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan ke keranjang"})
			return
		}

		message := "Ditambahkan ke keranjang"
		if existed {
			message = "Jumlah diperbarui"
		}
		resp := cartResponse(items)
		resp["message"] = message
		c.JSON(http.StatusOK, resp)
	}
}

// PUT /cart/:product_id
// A requested quantity below 1 is rejected and leaves the line unchanged;
// the response reports updated=false instead of an error.
func UpdateCartItem(cartStore store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sessionID := middleware.SessionID(c)
		items := cartStore.Load(c.Request.Context(), sessionID)

		updated := items.SetQuantity(id, input.Quantity)
		if updated {
			if err := cartStore.Save(c.Request.Context(), sessionID, items); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui keranjang"})
				return
			}
		}

		resp := cartResponse(items)
		resp["updated"] = updated
		if updated {
			resp["message"] = "Jumlah item telah diperbarui"
		}
		c.JSON(http.StatusOK, resp)
	}
}

// DELETE /cart/:product_id
// Removing an absent id is a no-op, not an error.
func RemoveCartItem(cartStore store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		sessionID := middleware.SessionID(c)
		items := cartStore.Load(c.Request.Context(), sessionID).Remove(id)
		if err := cartStore.Save(c.Request.Context(), sessionID, items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus item"})
			return
		}

		resp := cartResponse(items)
		resp["message"] = "Item telah dihapus dari keranjang"
		c.JSON(http.StatusOK, resp)
	}
}

// DELETE /cart
func ClearCart(cartStore store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cartStore.Clear(c.Request.Context(), middleware.SessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengosongkan keranjang"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Keranjang dikosongkan"})
	}
}
