package promoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
)

type ApplyPromoInput struct {
	Code string `json:"code" binding:"required"`
}

// GET /promos
func GetPromos(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Promos())
	}
}

// POST /cart/promo
// Applying a code is cosmetic: it is acknowledged whether or not it is a
// known code, and the discount stays zero. There is no discount engine.
func ApplyPromo(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ApplyPromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Kode promo \"" + input.Code + "\" telah diterapkan",
			"known":    cat.HasPromo(input.Code),
			"discount": 0,
		})
	}
}
