package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"boutique-backend/models"
	"boutique-backend/store"
)

var ErrOrderNotFound = errors.New("order not found")

// InvoiceService turns orders into invoices. Rendering and export (print,
// PDF, share) happen elsewhere; this only produces the record.
type InvoiceService struct {
	Store *store.Store
}

// Generate builds the invoice for an order, or returns the one already on
// file: generation is idempotent per order. The second return value is true
// when a new invoice was created.
//
// Customer phone and address are read live at generation time and frozen
// into the invoice; if the customer record was deleted they come back
// empty, while the name snapshot on the order still applies.
func (s *InvoiceService) Generate(orderID string) (models.Invoice, bool, error) {
	order, ok := s.Store.Order(orderID)
	if !ok {
		return models.Invoice{}, false, ErrOrderNotFound
	}
	if inv, ok := s.Store.InvoiceForOrder(orderID); ok {
		return inv, false, nil
	}

	customer, _ := s.Store.Customer(order.CustomerID)
	inv := models.Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   s.Store.NextInvoiceNumber(),
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Items:           order.Items,
		Subtotal:        order.Subtotal(),
		Discount:        order.Discount,
		ShippingCost:    order.ShippingCost,
		Total:           order.Total(),
		PaymentMethod:   order.PaymentMethod,
		CreatedAt:       time.Now(),
	}
	s.Store.AddInvoice(inv)
	return inv, true, nil
}
