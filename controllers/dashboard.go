// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"boutique-backend/services"
	"boutique-backend/store"
)

type DashboardController struct {
	Store *store.Store
}

// GetDashboardOverview returns today's numbers, pending work, the restock
// list and the running sales/profit totals.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	stats := services.ComputeDashboardStats(
		dc.Store.Products(),
		dc.Store.Orders(),
		dc.Store.Expenses(),
		time.Now(),
	)
	c.JSON(http.StatusOK, stats)
}
