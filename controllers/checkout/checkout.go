package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/checkout"
	"github.com/regarstore/v0-xl-kuota-website/middleware"
	"github.com/regarstore/v0-xl-kuota-website/models"
)

type SubmitCheckoutInput struct {
	Customer models.CustomerInfo     `json:"customer"`
	Payment  models.PaymentSelection `json:"payment"`
}

func redirectingResponse(ck *checkout.Checkout) gin.H {
	resp := gin.H{
		"state":       ck.State().String(),
		"redirect_to": ck.RedirectTo(),
	}
	if ck.LoadFailed() {
		resp["error"] = "Terjadi kesalahan saat memuat keranjang belanja"
	}
	return resp
}

// GET /checkout
// The entry state of the checkout flow: the order summary when the cart has
// lines, or a redirect back to the cart view when it is empty or unreadable.
func GetCheckout(fin *checkout.Finalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck := fin.Begin(c.Request.Context(), middleware.SessionID(c))
		if ck.State() == checkout.StateRedirecting {
			c.JSON(http.StatusOK, redirectingResponse(ck))
			return
		}

		items := ck.Items()
		subtotal := items.Subtotal()
		discount := 0
		c.JSON(http.StatusOK, gin.H{
			"state":    ck.State().String(),
			"items":    items,
			"subtotal": subtotal,
			"discount": discount,
			"total":    subtotal - discount,
		})
	}
}

// POST /checkout
func SubmitCheckout(fin *checkout.Finalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubmitCheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ck := fin.Begin(c.Request.Context(), middleware.SessionID(c))
		if ck.State() == checkout.StateRedirecting {
			c.JSON(http.StatusConflict, redirectingResponse(ck))
			return
		}

		result, err := ck.Submit(c.Request.Context(), input.Customer, input.Payment)
		if err != nil {
			if errors.Is(err, checkout.ErrIncompleteForm) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":       "Form tidak lengkap",
					"description": "Silakan lengkapi semua informasi pelanggan",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses pesanan"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"state":             ck.State().String(),
			"message":           "Pesanan berhasil",
			"description":       "Terima kasih telah berbelanja di XL Paket Data",
			"reference":         result.Reference,
			"redirect_to":       result.RedirectTo,
			"redirect_after_ms": result.Delay.Milliseconds(),
		})
	}
}
