package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique-backend/models"
)

var statsNow = time.Date(2024, 3, 20, 15, 30, 0, 0, time.UTC)

func statsFixtures() ([]models.Product, []models.Order, []models.Expense) {
	products := []models.Product{
		{ID: "p1", Name: "atThreshold", Category: models.CategoryLingerie, Stock: 10, CostPrice: 150, SellingPrice: 299},
		{ID: "p2", Name: "aboveThreshold", Category: models.CategoryPajamas, Stock: 11, CostPrice: 120, SellingPrice: 249},
	}
	orders := []models.Order{
		{
			// Today, live: sales 598+50-20=628, cost 300, profit 278.
			ID:     "o1",
			Status: models.StatusNew,
			Items: []models.OrderItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: 299, CostPrice: 150},
			},
			OrderDate:    statsNow.Add(-2 * time.Hour),
			ShippingCost: 50,
			Discount:     20,
		},
		{
			// Today but cancelled: counted as a today order, nothing else.
			ID:     "o2",
			Status: models.StatusCancelled,
			Items: []models.OrderItem{
				{ProductID: "p2", Quantity: 5, UnitPrice: 249, CostPrice: 120},
			},
			OrderDate: statsNow.Add(-time.Hour),
		},
		{
			// Yesterday, delivered: sales 199, cost 100.
			ID:     "o3",
			Status: models.StatusDelivered,
			Items: []models.OrderItem{
				{ProductID: "p2", Quantity: 1, UnitPrice: 199, CostPrice: 100},
			},
			OrderDate: statsNow.AddDate(0, 0, -1),
		},
	}
	expenses := []models.Expense{
		{ID: "e1", Type: models.ExpenseAdvertising, Amount: 50, Date: statsNow},
		{ID: "e2", Type: models.ExpenseShipping, Amount: 25, Date: statsNow},
	}
	return products, orders, expenses
}

func TestComputeDashboardStats(t *testing.T) {
	products, orders, expenses := statsFixtures()
	stats := ComputeDashboardStats(products, orders, expenses, statsNow)

	assert.Equal(t, 2, stats.TodayOrders)
	assert.Equal(t, 1, stats.PendingOrders, "cancelled orders are not pending")
	assert.InDelta(t, 827, stats.TotalSales, 1e-9)
	assert.InDelta(t, 427, stats.TotalProfit, 1e-9)
	assert.InDelta(t, 75, stats.TotalExpenses, 1e-9)
	assert.InDelta(t, 352, stats.NetProfit, 1e-9)
	assert.InDelta(t, 278, stats.TodayProfit, 1e-9, "today's profit excludes shipping and the cancelled order")

	require.Len(t, stats.LowStockProducts, 1)
	assert.Equal(t, "p1", stats.LowStockProducts[0].ID, "stock 10 is low, stock 11 is not")
}

func TestCancelledOrderContributesNothing(t *testing.T) {
	orders := []models.Order{
		{
			ID:     "o1",
			Status: models.StatusCancelled,
			Items: []models.OrderItem{
				{Quantity: 10, UnitPrice: 999, CostPrice: 1},
			},
			ShippingCost: 100,
			OrderDate:    statsNow,
		},
	}
	stats := ComputeDashboardStats(nil, orders, nil, statsNow)

	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.TotalProfit)
	assert.Zero(t, stats.TodayProfit)

	report := ComputeReport(nil, nil, orders, nil, 5)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.GrossProfit)
}

func TestComputeReport(t *testing.T) {
	products, orders, expenses := statsFixtures()
	customers := []models.Customer{
		{ID: "c1", City: "القاهرة"},
		{ID: "c2", City: "القاهرة"},
		{ID: "c3", City: "الجيزة"},
	}

	report := ComputeReport(products, customers, orders, expenses, 1)

	assert.InDelta(t, 827, report.TotalRevenue, 1e-9)
	assert.InDelta(t, 400, report.TotalCost, 1e-9)
	assert.InDelta(t, 427, report.GrossProfit, 1e-9)
	assert.InDelta(t, 352, report.NetProfit, 1e-9)
	assert.InDelta(t, 427.0/827.0*100, report.ProfitMargin, 1e-9)
	// Average order value divides by every order, cancelled ones included.
	assert.InDelta(t, 827.0/3.0, report.AverageOrderValue, 1e-9)

	assert.Equal(t, 1, report.ProductsByCategory[models.CategoryLingerie])
	assert.Equal(t, 1, report.ProductsByCategory[models.CategoryPajamas])
	assert.Equal(t, 0, report.ProductsByCategory[models.CategorySets])

	assert.Equal(t, 1, report.OrdersByStatus[models.StatusNew])
	assert.Equal(t, 1, report.OrdersByStatus[models.StatusCancelled])
	assert.Equal(t, 1, report.OrdersByStatus[models.StatusDelivered])
	assert.Equal(t, 0, report.OrdersByStatus[models.StatusShipped])

	assert.InDelta(t, 50, report.ExpensesByType[models.ExpenseAdvertising], 1e-9)
	assert.InDelta(t, 25, report.ExpensesByType[models.ExpenseShipping], 1e-9)

	// topN=1 keeps only the highest unit margin: p1 at 149 beats p2 at 129.
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "atThreshold", report.TopProducts[0].Name)
	assert.InDelta(t, 149, report.TopProducts[0].Profit, 1e-9)

	require.Len(t, report.CustomersByCity, 2)
	assert.Equal(t, CityCount{City: "القاهرة", Count: 2}, report.CustomersByCity[0])
	assert.Equal(t, CityCount{City: "الجيزة", Count: 1}, report.CustomersByCity[1])
}

func TestReportZeroGuards(t *testing.T) {
	report := ComputeReport(nil, nil, nil, nil, 5)

	assert.Zero(t, report.ProfitMargin, "no revenue must not divide by zero")
	assert.Zero(t, report.AverageOrderValue)
	assert.Zero(t, report.TotalRevenue)
	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.CustomersByCity)
}

func TestExcludedOrdersStillCountedByStatus(t *testing.T) {
	orders := []models.Order{
		{ID: "o1", Status: models.StatusReturned},
		{ID: "o2", Status: models.StatusReturned},
	}
	report := ComputeReport(nil, nil, orders, nil, 5)

	assert.Equal(t, 2, report.OrdersByStatus[models.StatusReturned])
	assert.Zero(t, report.TotalRevenue)
}
