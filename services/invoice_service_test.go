package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boutique-backend/store"
)

func newInvoiceService(t *testing.T) *InvoiceService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	st, err := store.New(db)
	require.NoError(t, err)
	return &InvoiceService{Store: st}
}

func TestGenerateInvoice(t *testing.T) {
	svc := newInvoiceService(t)

	// Seed order 1: items 299 + 199, shipping 50, no discount.
	invoice, created, err := svc.Generate("1")
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, "1", invoice.OrderID)
	assert.InDelta(t, 498, invoice.Subtotal, 1e-9)
	assert.InDelta(t, 50, invoice.ShippingCost, 1e-9)
	assert.InDelta(t, 548, invoice.Total, 1e-9)
	assert.Equal(t, "سارة محمد أحمد", invoice.CustomerName)
	assert.Equal(t, "01012345678", invoice.CustomerPhone)
	assert.Len(t, invoice.Items, 2)
	assert.Regexp(t, `^INV-\d{4}-0001$`, invoice.InvoiceNumber)
}

func TestGenerateInvoiceIsIdempotent(t *testing.T) {
	svc := newInvoiceService(t)

	first, created, err := svc.Generate("1")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Generate("1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
	assert.Len(t, svc.Store.Invoices(), 1)
}

func TestGenerateInvoiceUnknownOrder(t *testing.T) {
	svc := newInvoiceService(t)

	_, _, err := svc.Generate("no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGenerateInvoiceAfterCustomerDeleted(t *testing.T) {
	svc := newInvoiceService(t)
	svc.Store.DeleteCustomer("1")

	invoice, created, err := svc.Generate("1")
	require.NoError(t, err)
	assert.True(t, created)

	// The order's name snapshot survives; live contact fields come back
	// empty because there is nothing left to read.
	assert.Equal(t, "سارة محمد أحمد", invoice.CustomerName)
	assert.Empty(t, invoice.CustomerPhone)
	assert.Empty(t, invoice.CustomerAddress)
}
