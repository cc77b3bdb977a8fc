package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
)

// GetProductByID returns a single package with its related packages. An
// unknown id falls back to the default package instead of a 404, matching
// the storefront's detail page.
// URL param: /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		if idParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product := cat.Get(idParam)
		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"related": cat.Related(product.ID, 4),
		})
	}
}
