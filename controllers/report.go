// controllers/report.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-backend/services"
	"boutique-backend/store"
)

// topProductCount caps the products-by-unit-profit ranking, matching the
// report chart.
const topProductCount = 6

// ReportController handles all reporting functions
type ReportController struct {
	Store *store.Store
}

// GetReportAnalytics returns the complete report summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	summary := services.ComputeReport(
		rc.Store.Products(),
		rc.Store.Customers(),
		rc.Store.Orders(),
		rc.Store.Expenses(),
		topProductCount,
	)
	c.JSON(http.StatusOK, summary)
}
