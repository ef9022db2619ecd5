package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boutique-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestNewSeedsWhenStorageEmpty(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	assert.Len(t, s.Products(), 6)
	assert.Len(t, s.Customers(), 5)
	assert.Len(t, s.Orders(), 5)
	assert.Len(t, s.Expenses(), 5)
	assert.Empty(t, s.Invoices())
}

func TestNewSeedsWhenBlobMalformed(t *testing.T) {
	db := newTestDB(t)
	_, err := New(db)
	require.NoError(t, err)

	writeBlob(db, keyProducts, []byte("definitely not json"))

	s, err := New(db)
	require.NoError(t, err)
	assert.Len(t, s.Products(), 6, "malformed durable data must fall back to seed")
}

func TestRoundTrip(t *testing.T) {
	db := newTestDB(t)
	s1, err := New(db)
	require.NoError(t, err)

	added := models.Product{
		ID:           "rt-1",
		Name:         "روب حرير",
		Category:     models.CategoryAccessories,
		Size:         "M",
		Color:        "أسود",
		SKU:          "ACC-099",
		Stock:        4,
		CostPrice:    90,
		SellingPrice: 210,
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	s1.AddProduct(added)

	// Simulate a process restart on the same storage.
	s2, err := New(db)
	require.NoError(t, err)
	require.Len(t, s2.Products(), 7)

	got, ok := s2.Product("rt-1")
	require.True(t, ok)
	assert.Equal(t, added, got)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	before := s.Products()
	s.UpdateProduct(models.Product{ID: "does-not-exist", Name: "ghost"})
	assert.Equal(t, before, s.Products())
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	before := s.Expenses()
	s.DeleteExpense("does-not-exist")
	assert.Equal(t, before, s.Expenses())
}

func TestEmptyCollectionIsNotPersisted(t *testing.T) {
	db := newTestDB(t)
	s1, err := New(db)
	require.NoError(t, err)

	for _, id := range []string{"1", "2", "3", "4"} {
		s1.DeleteExpense(id)
	}
	// The last delete empties the collection; the durable copy must keep the
	// last non-empty state.
	s1.DeleteExpense("5")
	assert.Empty(t, s1.Expenses())

	s2, err := New(db)
	require.NoError(t, err)
	expenses := s2.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, "5", expenses[0].ID)
}

func TestAddOrderAdjustsCustomerTotals(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	before, ok := s.Customer("1")
	require.True(t, ok)

	order := models.Order{
		ID:         "ord-x",
		CustomerID: "1",
		Items: []models.OrderItem{
			{ProductID: "1", ProductName: "طقم لانجري دانتيل أسود", Quantity: 1, UnitPrice: 299, CostPrice: 150},
			{ProductID: "6", ProductName: "روب ستان طويل", Quantity: 1, UnitPrice: 199, CostPrice: 100},
		},
		Status:       models.StatusNew,
		OrderDate:    time.Now(),
		ShippingCost: 50,
	}
	s.AddOrder(order)

	after, ok := s.Customer("1")
	require.True(t, ok)
	assert.Equal(t, before.TotalOrders+1, after.TotalOrders)
	assert.InDelta(t, before.TotalSpent+548, after.TotalSpent, 1e-9)

	s.DeleteOrder("ord-x")
	reverted, ok := s.Customer("1")
	require.True(t, ok)
	assert.Equal(t, before.TotalOrders, reverted.TotalOrders)
	assert.InDelta(t, before.TotalSpent, reverted.TotalSpent, 1e-9)
}

func TestAddOrderForUnknownCustomer(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	customersBefore := s.Customers()
	s.AddOrder(models.Order{ID: "ord-y", CustomerID: "missing", Status: models.StatusNew})

	_, ok := s.Order("ord-y")
	assert.True(t, ok)
	assert.Equal(t, customersBefore, s.Customers(), "no counter should move for an unknown customer")
}

func TestOrderNumbersSurviveRestart(t *testing.T) {
	db := newTestDB(t)
	s1, err := New(db)
	require.NoError(t, err)

	year := time.Now().Year()
	// Five seed orders, so the counter starts at 6.
	assert.Equal(t, fmt.Sprintf("ORD-%d-006", year), s1.NextOrderNumber())
	assert.Equal(t, fmt.Sprintf("ORD-%d-007", year), s1.NextOrderNumber())

	s2, err := New(db)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-008", year), s2.NextOrderNumber())
}

func TestInvoiceIsUniquePerOrder(t *testing.T) {
	s, err := New(newTestDB(t))
	require.NoError(t, err)

	first := models.Invoice{ID: "inv-1", InvoiceNumber: "INV-2024-0001", OrderID: "1"}
	s.AddInvoice(first)
	s.AddInvoice(models.Invoice{ID: "inv-2", InvoiceNumber: "INV-2024-0002", OrderID: "1"})

	require.Len(t, s.Invoices(), 1)
	got, ok := s.InvoiceForOrder("1")
	require.True(t, ok)
	assert.Equal(t, "inv-1", got.ID)
}
