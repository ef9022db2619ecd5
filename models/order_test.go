package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{UnitPrice: 299, Quantity: 1, CostPrice: 150},
			{UnitPrice: 199, Quantity: 1, CostPrice: 100},
		},
		ShippingCost: 50,
		Discount:     0,
	}

	assert.InDelta(t, 498, order.Subtotal(), 1e-9)
	assert.InDelta(t, 548, order.Total(), 1e-9)
	assert.InDelta(t, 248, order.Profit(), 1e-9)
}

func TestOrderProfitCanGoNegative(t *testing.T) {
	order := Order{
		Items:    []OrderItem{{UnitPrice: 100, Quantity: 1, CostPrice: 120}},
		Discount: 10,
	}
	assert.InDelta(t, -30, order.Profit(), 1e-9)
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, StatusNew.Pending())
	assert.True(t, StatusProcessing.Pending())
	assert.False(t, StatusShipped.Pending())

	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusReturned.Terminal())
	assert.False(t, StatusDelivered.Terminal())

	assert.True(t, StatusDelivered.Valid())
	assert.False(t, OrderStatus("archived").Valid())
}

func TestShippingDefaultCosts(t *testing.T) {
	assert.InDelta(t, 50, ShippingStandard.DefaultCost(), 1e-9)
	assert.InDelta(t, 75, ShippingExpress.DefaultCost(), 1e-9)
	assert.InDelta(t, 0, ShippingPickup.DefaultCost(), 1e-9)
}

func TestLowStockBoundary(t *testing.T) {
	assert.True(t, Product{Stock: 10}.LowStock(), "stock exactly at the threshold is low")
	assert.False(t, Product{Stock: 11}.LowStock())
}
