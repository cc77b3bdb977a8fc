package productcontroller

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/catalog"
	"github.com/regarstore/v0-xl-kuota-website/models"
)

// GetProducts lists the catalog with optional filtering and sorting applied
// in memory; the catalog is a fixed table, not a database.
// Query params: search, min_price, max_price, sort_by (id|price|name), order
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.ToLower(c.Query("search"))
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "id")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "asc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "asc"
		}

		minPrice := -1
		if minPriceStr != "" {
			mp, err := strconv.Atoi(minPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice = mp
		}
		maxPrice := -1
		if maxPriceStr != "" {
			mp, err := strconv.Atoi(maxPriceStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice = mp
		}

		var products []models.Product
		for _, p := range cat.All() {
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.Description), search) {
				continue
			}
			if minPrice >= 0 && p.Price < minPrice {
				continue
			}
			if maxPrice >= 0 && p.Price > maxPrice {
				continue
			}
			products = append(products, p)
		}

		sort.SliceStable(products, func(i, j int) bool {
			var less bool
			switch sortBy {
			case "price":
				less = products[i].Price < products[j].Price
			case "name":
				less = products[i].Name < products[j].Name
			default:
				a, _ := strconv.Atoi(products[i].ID)
				b, _ := strconv.Atoi(products[j].ID)
				less = a < b
			}
			if sortOrder == "desc" {
				return !less
			}
			return less
		})

		c.JSON(http.StatusOK, products)
	}
}
