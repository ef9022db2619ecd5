package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"gorm.io/gorm"

	"boutique-backend/models"
)

// Storage keys, one per collection, plus the two display-number counters.
const (
	keyProducts  = "crm_products"
	keyCustomers = "crm_customers"
	keyOrders    = "crm_orders"
	keyExpenses  = "crm_expenses"
	keyInvoices  = "crm_invoices"

	keyOrderSeq   = "crm_order_seq"
	keyInvoiceSeq = "crm_invoice_seq"
)

// Store owns the authoritative in-memory copy of every collection for the
// process lifetime. All mutations go through its methods, and every
// successful mutation writes the whole updated collection back to the blob
// table. Reads hand out copies; internal slices never leave the lock.
//
// Update and Delete of an id that is not in the collection are silent
// no-ops. Callers that need confirmation look the record up first.
type Store struct {
	mu sync.RWMutex
	db *gorm.DB

	products  []models.Product
	customers []models.Customer
	orders    []models.Order
	expenses  []models.Expense
	invoices  []models.Invoice

	orderSeq   int64
	invoiceSeq int64
}

// New loads every collection from the durable mirror, seeding any key that
// is absent or unreadable. The sequence counters are initialized from the
// loaded collection sizes on first run and persisted from then on.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&collectionBlob{}); err != nil {
		return nil, fmt.Errorf("migrate collection blobs: %w", err)
	}

	s := &Store{db: db}
	loadCollection(db, keyProducts, &s.products, models.SeedProducts)
	loadCollection(db, keyCustomers, &s.customers, models.SeedCustomers)
	loadCollection(db, keyOrders, &s.orders, models.SeedOrders)
	loadCollection(db, keyExpenses, &s.expenses, models.SeedExpenses)
	loadCollection(db, keyInvoices, &s.invoices, func() []models.Invoice { return nil })

	s.orderSeq = loadSeq(db, keyOrderSeq, int64(len(s.orders)))
	s.invoiceSeq = loadSeq(db, keyInvoiceSeq, int64(len(s.invoices)))
	return s, nil
}

// --- reads ---

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.customers)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expenses)
}

func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.invoices)
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Customer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *Store) Expense(id string) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

func (s *Store) Invoice(id string) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return models.Invoice{}, false
}

// InvoiceForOrder returns the invoice already generated for an order, if
// any. At most one invoice exists per order.
func (s *Store) InvoiceForOrder(orderID string) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.OrderID == orderID {
			return inv, true
		}
	}
	return models.Invoice{}, false
}

// --- products ---

func (s *Store) AddProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	persist(s.db, keyProducts, s.products)
}

func (s *Store) UpdateProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			persist(s.db, keyProducts, s.products)
			return
		}
	}
}

func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p models.Product) bool { return p.ID == id })
	if len(s.products) != n {
		persist(s.db, keyProducts, s.products)
	}
}

// --- customers ---

func (s *Store) AddCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	persist(s.db, keyCustomers, s.customers)
}

func (s *Store) UpdateCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			persist(s.db, keyCustomers, s.customers)
			return
		}
	}
}

// DeleteCustomer removes the customer record only. Historical orders keep
// their customerId and name snapshot; there is no cascade.
func (s *Store) DeleteCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.customers)
	s.customers = slices.DeleteFunc(s.customers, func(c models.Customer) bool { return c.ID == id })
	if len(s.customers) != n {
		persist(s.db, keyCustomers, s.customers)
	}
}

// --- orders ---

// AddOrder appends the order and, in the same step, bumps the referenced
// customer's totalOrders/totalSpent so the stored counters cannot drift
// from order entry. An order for an unknown customer is still accepted; the
// snapshots on the order carry the display data.
func (s *Store) AddOrder(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	persist(s.db, keyOrders, s.orders)
	s.adjustCustomerTotals(o.CustomerID, 1, o.Total())
}

func (s *Store) UpdateOrder(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			persist(s.db, keyOrders, s.orders)
			return
		}
	}
}

func (s *Store) DeleteOrder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			persist(s.db, keyOrders, s.orders)
			s.adjustCustomerTotals(o.CustomerID, -1, -o.Total())
			return
		}
	}
}

// adjustCustomerTotals is called under the write lock.
func (s *Store) adjustCustomerTotals(customerID string, orders int, spent float64) {
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			s.customers[i].TotalOrders += orders
			s.customers[i].TotalSpent += spent
			persist(s.db, keyCustomers, s.customers)
			return
		}
	}
}

// --- expenses ---

func (s *Store) AddExpense(e models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
	persist(s.db, keyExpenses, s.expenses)
}

func (s *Store) UpdateExpense(e models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == e.ID {
			s.expenses[i] = e
			persist(s.db, keyExpenses, s.expenses)
			return
		}
	}
}

func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.expenses)
	s.expenses = slices.DeleteFunc(s.expenses, func(e models.Expense) bool { return e.ID == id })
	if len(s.expenses) != n {
		persist(s.db, keyExpenses, s.expenses)
	}
}

// --- invoices ---

// AddInvoice records a generated invoice. If the order already has one the
// call is a no-op and the existing invoice wins, which keeps generation
// idempotent even for racing callers.
func (s *Store) AddInvoice(inv models.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.invoices {
		if existing.OrderID == inv.OrderID {
			return
		}
	}
	s.invoices = append(s.invoices, inv)
	persist(s.db, keyInvoices, s.invoices)
}

// --- display numbers ---

// NextOrderNumber allocates a display number such as ORD-2026-012. The
// counter is persisted alongside the collections, so numbers stay unique
// across restarts.
func (s *Store) NextOrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderSeq++
	saveSeq(s.db, keyOrderSeq, s.orderSeq)
	return fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), s.orderSeq)
}

// NextInvoiceNumber allocates a display number such as INV-2026-0012.
func (s *Store) NextInvoiceNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoiceSeq++
	saveSeq(s.db, keyInvoiceSeq, s.invoiceSeq)
	return fmt.Sprintf("INV-%d-%04d", time.Now().Year(), s.invoiceSeq)
}
