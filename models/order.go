package models

import "time"

type OrderStatus string

const (
	StatusNew        OrderStatus = "new"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusReturned   OrderStatus = "returned"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned,
}

// Valid reports whether s is a known status. The store itself does not
// enforce this: any status is directly settable, there is no transition
// table. Callers that want stricter input use this before writing.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// Pending reports whether the order still needs work.
func (s OrderStatus) Pending() bool {
	return s == StatusNew || s == StatusProcessing
}

// Terminal reports whether the status excludes the order from all revenue
// and profit figures. The record itself is kept.
func (s OrderStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusReturned
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPickup   ShippingMethod = "pickup"
)

// DefaultCost is the flat shipping cost charged for the method when the
// order form does not override it.
func (m ShippingMethod) DefaultCost() float64 {
	switch m {
	case ShippingExpress:
		return 75
	case ShippingPickup:
		return 0
	default:
		return 50
	}
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentOnline   PaymentMethod = "online"
)

// OrderItem is a line on an order. ProductName, UnitPrice and CostPrice are
// snapshots taken when the order is placed; later product edits must not
// change historical order totals.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	CostPrice   float64 `json:"costPrice"`
}

type Order struct {
	ID           string `json:"id"`
	OrderNumber  string `json:"orderNumber"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"` // snapshot at order time

	Items          []OrderItem    `json:"items"`
	Status         OrderStatus    `json:"status"`
	OrderDate      time.Time      `json:"orderDate"`
	ShippingMethod ShippingMethod `json:"shippingMethod"`
	ShippingCost   float64        `json:"shippingCost"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	Discount       float64        `json:"discount"`
	Notes          string         `json:"notes"`
}

// Subtotal is the item total before shipping and discount.
func (o Order) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// ItemCost is the cost-price total over the order's items.
func (o Order) ItemCost() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.CostPrice * float64(it.Quantity)
	}
	return sum
}

// Total = subtotal + shipping - discount. Derived, never stored.
func (o Order) Total() float64 {
	return o.Subtotal() + o.ShippingCost - o.Discount
}

// Profit = item margin minus discount. May be negative.
func (o Order) Profit() float64 {
	return o.Subtotal() - o.ItemCost() - o.Discount
}
