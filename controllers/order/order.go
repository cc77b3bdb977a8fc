package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/regarstore/v0-xl-kuota-website/middleware"
	"github.com/regarstore/v0-xl-kuota-website/orders"
)

// GET /orders
// The current session's completed (simulated) orders, newest first.
func GetOrders(log *orders.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := log.Recent(c.Request.Context(), middleware.SessionID(c), 20)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
