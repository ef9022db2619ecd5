// controllers/order.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"boutique-backend/models"
	"boutique-backend/store"
	"boutique-backend/utils"
)

// OrderItemInput names a product and a quantity. Name and prices are
// snapshotted from the catalog when the order is written, never dereferenced
// later.
type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	CustomerID     string                `json:"customerId" binding:"required"`
	Items          []OrderItemInput      `json:"items" binding:"required,min=1,dive"`
	Status         models.OrderStatus    `json:"status" binding:"omitempty,oneof=new processing shipped delivered cancelled returned"`
	OrderDate      *time.Time            `json:"orderDate"`
	ShippingMethod models.ShippingMethod `json:"shippingMethod" binding:"omitempty,oneof=standard express pickup"`
	ShippingCost   *float64              `json:"shippingCost" binding:"omitempty,min=0"`
	PaymentMethod  models.PaymentMethod  `json:"paymentMethod" binding:"required,oneof=cash transfer online"`
	Discount       float64               `json:"discount" binding:"min=0"`
	Notes          string                `json:"notes"`
}

// UpdateOrderInput defines the expected JSON structure for updating an
// order. Omitted fields keep their current value; items, when present, are
// re-snapshotted from the catalog.
type UpdateOrderInput struct {
	CustomerID     *string                `json:"customerId"`
	Items          *[]OrderItemInput      `json:"items" binding:"omitempty,min=1,dive"`
	Status         *models.OrderStatus    `json:"status" binding:"omitempty,oneof=new processing shipped delivered cancelled returned"`
	OrderDate      *time.Time             `json:"orderDate"`
	ShippingMethod *models.ShippingMethod `json:"shippingMethod" binding:"omitempty,oneof=standard express pickup"`
	ShippingCost   *float64               `json:"shippingCost" binding:"omitempty,min=0"`
	PaymentMethod  *models.PaymentMethod  `json:"paymentMethod" binding:"omitempty,oneof=cash transfer online"`
	Discount       *float64               `json:"discount" binding:"omitempty,min=0"`
	Notes          *string                `json:"notes"`
}

type OrderController struct {
	Store *store.Store
}

// snapshotItems freezes catalog name and prices into order lines.
func (oc *OrderController) snapshotItems(inputs []OrderItemInput) ([]models.OrderItem, bool) {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, ok := oc.Store.Product(in.ProductID)
		if !ok {
			return nil, false
		}
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			UnitPrice:   product.SellingPrice,
			CostPrice:   product.CostPrice,
		})
	}
	return items, true
}

// CreateOrder writes a new order. The customer name is snapshotted at this
// point; shipping cost defaults by method when the caller leaves it out.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items, ok := oc.snapshotItems(input.Items)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Order references an unknown product")
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusNew
	}
	method := input.ShippingMethod
	if method == "" {
		method = models.ShippingStandard
	}
	shippingCost := method.DefaultCost()
	if input.ShippingCost != nil {
		shippingCost = *input.ShippingCost
	}
	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	// A deleted customer does not block order entry; the name snapshot just
	// stays empty.
	var customerName string
	if customer, ok := oc.Store.Customer(input.CustomerID); ok {
		customerName = customer.FullName
	}

	order := models.Order{
		ID:             uuid.New().String(),
		OrderNumber:    oc.Store.NextOrderNumber(),
		CustomerID:     input.CustomerID,
		CustomerName:   customerName,
		Items:          items,
		Status:         status,
		OrderDate:      orderDate,
		ShippingMethod: method,
		ShippingCost:   shippingCost,
		PaymentMethod:  input.PaymentMethod,
		Discount:       input.Discount,
		Notes:          input.Notes,
	}
	oc.Store.AddOrder(order)

	c.JSON(http.StatusCreated, order)
}

// GetOrders retrieves all orders
func (oc *OrderController) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, oc.Store.Orders())
}

// GetOrder retrieves a specific order by ID
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, ok := oc.Store.Order(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder merges the provided fields and replaces the stored record.
// Status moves freely; there is no transition guard.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	order, ok := oc.Store.Order(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerID != nil {
		order.CustomerID = *input.CustomerID
		if customer, ok := oc.Store.Customer(*input.CustomerID); ok {
			order.CustomerName = customer.FullName
		}
	}
	if input.Items != nil {
		items, ok := oc.snapshotItems(*input.Items)
		if !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Order references an unknown product")
			return
		}
		order.Items = items
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.ShippingMethod != nil {
		order.ShippingMethod = *input.ShippingMethod
		order.ShippingCost = input.ShippingMethod.DefaultCost()
	}
	if input.ShippingCost != nil {
		order.ShippingCost = *input.ShippingCost
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.Discount != nil {
		order.Discount = *input.Discount
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	oc.Store.UpdateOrder(order)

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an order and rolls its totals out of the customer's
// counters.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if _, ok := oc.Store.Order(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}
	oc.Store.DeleteOrder(id)

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
