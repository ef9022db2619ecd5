package models

import "time"

// Invoice is generated from an order, at most once per order. Customer
// contact fields and items are copied at generation time and do not track
// later edits to the customer or the order.
type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	OrderID       string `json:"orderId"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	ShippingCost  float64       `json:"shippingCost"`
	Total         float64       `json:"total"` // subtotal + shipping - discount
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
}
