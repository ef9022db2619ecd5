package services

import (
	"sort"
	"time"

	"boutique-backend/models"
	"boutique-backend/utils"
)

// DashboardStats mirrors the cards on the dashboard screen.
type DashboardStats struct {
	TodayOrders      int              `json:"todayOrders"`
	TodayProfit      float64          `json:"todayProfit"`
	PendingOrders    int              `json:"pendingOrders"`
	LowStockProducts []models.Product `json:"lowStockProducts"`
	TotalSales       float64          `json:"totalSales"`
	TotalProfit      float64          `json:"totalProfit"`
	TotalExpenses    float64          `json:"totalExpenses"`
	NetProfit        float64          `json:"netProfit"`
}

// ComputeDashboardStats scans the collections as of now. Nothing is cached:
// every call recomputes from scratch and nothing is mutated.
//
// Cancelled and returned orders keep their records but contribute zero to
// every sales and profit figure. Today's profit is item margin minus
// discount for today's live orders; shipping is not part of it.
func ComputeDashboardStats(products []models.Product, orders []models.Order, expenses []models.Expense, now time.Time) DashboardStats {
	stats := DashboardStats{LowStockProducts: []models.Product{}}

	var totalCost float64
	for _, o := range orders {
		sameDay := utils.SameDay(o.OrderDate, now)
		if sameDay {
			stats.TodayOrders++
		}
		if o.Status.Pending() {
			stats.PendingOrders++
		}
		if o.Status.Terminal() {
			continue
		}
		stats.TotalSales += o.Subtotal() + o.ShippingCost - o.Discount
		totalCost += o.ItemCost()
		if sameDay {
			stats.TodayProfit += o.Profit()
		}
	}

	for _, p := range products {
		if p.LowStock() {
			stats.LowStockProducts = append(stats.LowStockProducts, p)
		}
	}
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount
	}

	stats.TotalProfit = stats.TotalSales - totalCost
	stats.NetProfit = stats.TotalProfit - stats.TotalExpenses
	return stats
}

// ProductProfit ranks a product by its per-unit margin.
type ProductProfit struct {
	Name   string  `json:"name"`
	Profit float64 `json:"profit"`
	Stock  int     `json:"stock"`
}

// CityCount is one row of the customers-by-city ranking.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// ReportSummary is the full reporting screen in one payload.
type ReportSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCost         float64 `json:"totalCost"`
	TotalExpenses     float64 `json:"totalExpenses"`
	GrossProfit       float64 `json:"grossProfit"`
	NetProfit         float64 `json:"netProfit"`
	ProfitMargin      float64 `json:"profitMargin"`      // percent, 0 when revenue is 0
	AverageOrderValue float64 `json:"averageOrderValue"` // 0 when there are no orders

	ProductsByCategory map[models.ProductCategory]int `json:"productsByCategory"`
	OrdersByStatus     map[models.OrderStatus]int     `json:"ordersByStatus"`
	ExpensesByType     map[models.ExpenseType]float64 `json:"expensesByType"`
	TopProducts        []ProductProfit                `json:"topProducts"`
	CustomersByCity    []CityCount                    `json:"customersByCity"`
}

// ComputeReport builds the report metrics. Revenue and cost follow the same
// exclusion rule as the dashboard: cancelled and returned orders are
// skipped. topN caps the products-by-unit-profit ranking.
func ComputeReport(products []models.Product, customers []models.Customer, orders []models.Order, expenses []models.Expense, topN int) ReportSummary {
	report := ReportSummary{
		ProductsByCategory: make(map[models.ProductCategory]int, len(models.Categories)),
		OrdersByStatus:     make(map[models.OrderStatus]int, len(models.OrderStatuses)),
		ExpensesByType:     make(map[models.ExpenseType]float64, len(models.ExpenseTypes)),
		TopProducts:        []ProductProfit{},
		CustomersByCity:    []CityCount{},
	}
	for _, cat := range models.Categories {
		report.ProductsByCategory[cat] = 0
	}
	for _, st := range models.OrderStatuses {
		report.OrdersByStatus[st] = 0
	}
	for _, t := range models.ExpenseTypes {
		report.ExpensesByType[t] = 0
	}

	for _, o := range orders {
		report.OrdersByStatus[o.Status]++
		if o.Status.Terminal() {
			continue
		}
		report.TotalRevenue += o.Subtotal() + o.ShippingCost - o.Discount
		report.TotalCost += o.ItemCost()
	}

	for _, e := range expenses {
		report.TotalExpenses += e.Amount
		report.ExpensesByType[e.Type] += e.Amount
	}

	report.GrossProfit = report.TotalRevenue - report.TotalCost
	report.NetProfit = report.GrossProfit - report.TotalExpenses
	if report.TotalRevenue > 0 {
		report.ProfitMargin = report.GrossProfit / report.TotalRevenue * 100
	}
	if len(orders) > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(len(orders))
	}

	ranked := make([]ProductProfit, 0, len(products))
	for _, p := range products {
		report.ProductsByCategory[p.Category]++
		ranked = append(ranked, ProductProfit{Name: p.Name, Profit: p.UnitProfit(), Stock: p.Stock})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Profit > ranked[j].Profit })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	report.TopProducts = ranked

	byCity := map[string]int{}
	for _, c := range customers {
		byCity[c.City]++
	}
	for city, count := range byCity {
		report.CustomersByCity = append(report.CustomersByCity, CityCount{City: city, Count: count})
	}
	sort.Slice(report.CustomersByCity, func(i, j int) bool {
		a, b := report.CustomersByCity[i], report.CustomersByCity[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.City < b.City
	})

	return report
}
