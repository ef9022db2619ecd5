package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boutique-backend/config"
	"boutique-backend/controllers"
	"boutique-backend/services"
	"boutique-backend/store"
)

func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	productController := controllers.ProductController{Store: st}
	customerController := controllers.CustomerController{Store: st}
	orderController := controllers.OrderController{Store: st}
	expenseController := controllers.ExpenseController{Store: st}
	invoiceController := controllers.InvoiceController{
		Store:    st,
		Invoices: &services.InvoiceService{Store: st},
	}
	dashboardController := controllers.DashboardController{Store: st}
	reportController := controllers.ReportController{Store: st}

	api := r.Group("/api")
	{
		// Product routes
		products := api.Group("/products")
		{
			products.POST("", productController.CreateProduct)
			products.GET("", productController.GetProducts)
			products.GET("/:id", productController.GetProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("", orderController.GetOrders)
			orders.GET("/:id", orderController.GetOrder)
			orders.PUT("/:id", orderController.UpdateOrder)
			orders.DELETE("/:id", orderController.DeleteOrder)
			orders.POST("/:id/invoice", invoiceController.GenerateInvoice)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", expenseController.CreateExpense)
			expenses.GET("", expenseController.GetExpenses)
			expenses.GET("/:id", expenseController.GetExpense)
			expenses.PUT("/:id", expenseController.UpdateExpense)
			expenses.DELETE("/:id", expenseController.DeleteExpense)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
		}

		// Reports routes
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Profile routes
		api.GET("/profile", controllers.GetProfile)
	}

	return r
}
