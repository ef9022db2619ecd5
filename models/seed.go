package models

import "time"

// Seed datasets, loaded whenever a collection's durable key is missing or
// unreadable. Record ids are small fixed strings so the cross references
// between orders, customers and products stay stable; new records get UUIDs.

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func SeedProducts() []Product {
	return []Product{
		{
			ID: "1", Name: "طقم لانجري دانتيل أسود", Category: CategoryLingerie,
			Size: "M", Color: "أسود", SKU: "LNG-001", Stock: 25,
			CostPrice: 150, SellingPrice: 299,
			Image:     "https://images.unsplash.com/photo-1616530940355-351fabd9524b?w=200",
			Notes:     "منتج مميز - الأكثر مبيعاً",
			CreatedAt: date("2024-01-15"),
		},
		{
			ID: "2", Name: "بيجامة ستان وردي", Category: CategoryPajamas,
			Size: "L", Color: "وردي", SKU: "PJM-001", Stock: 18,
			CostPrice: 120, SellingPrice: 249,
			Image:     "https://images.unsplash.com/photo-1564584217132-2271feaeb3c5?w=200",
			CreatedAt: date("2024-01-20"),
		},
		{
			ID: "3", Name: "طقم لانجري أحمر مع روب", Category: CategorySets,
			Size: "S", Color: "أحمر", SKU: "SET-001", Stock: 5,
			CostPrice: 200, SellingPrice: 399,
			Image:     "https://images.unsplash.com/photo-1617331721458-bd3bd3f9c7f8?w=200",
			Notes:     "مخزون منخفض",
			CreatedAt: date("2024-02-01"),
		},
		{
			ID: "4", Name: "بيجامة قطن مريحة", Category: CategoryPajamas,
			Size: "XL", Color: "بيج", SKU: "PJM-002", Stock: 30,
			CostPrice: 80, SellingPrice: 179,
			Image:     "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=200",
			CreatedAt: date("2024-02-10"),
		},
		{
			ID: "5", Name: "لانجري دانتيل أبيض عروس", Category: CategoryLingerie,
			Size: "M", Color: "أبيض", SKU: "LNG-002", Stock: 12,
			CostPrice: 180, SellingPrice: 349,
			Image:     "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?w=200",
			Notes:     "مناسب للعرائس",
			CreatedAt: date("2024-02-15"),
		},
		{
			ID: "6", Name: "روب ستان طويل", Category: CategoryAccessories,
			Size: "L", Color: "عنابي", SKU: "ACC-001", Stock: 8,
			CostPrice: 100, SellingPrice: 199,
			Image:     "https://images.unsplash.com/photo-1582719471384-894fbb16e074?w=200",
			CreatedAt: date("2024-02-20"),
		},
	}
}

func SeedCustomers() []Customer {
	return []Customer{
		{
			ID: "1", FullName: "سارة محمد أحمد", Phone: "01012345678",
			Address: "شارع التحرير، المعادي", City: "القاهرة",
			TotalOrders: 5, TotalSpent: 1499,
			Notes:     "VIP - عميلة مميزة",
			CreatedAt: date("2024-01-01"),
		},
		{
			ID: "2", FullName: "نورا علي حسن", Phone: "01198765432",
			Address: "شارع الهرم", City: "الجيزة",
			TotalOrders: 3, TotalSpent: 897,
			CreatedAt: date("2024-01-15"),
		},
		{
			ID: "3", FullName: "مريم خالد عبدالله", Phone: "01234567890",
			Address: "سيدي جابر", City: "الإسكندرية",
			TotalOrders: 7, TotalSpent: 2198,
			Notes:     "عميلة متكررة - تفضل الألوان الداكنة",
			CreatedAt: date("2024-01-20"),
		},
		{
			ID: "4", FullName: "هدى أحمد سعيد", Phone: "01087654321",
			Address: "شارع الملك فيصل", City: "الجيزة",
			TotalOrders: 2, TotalSpent: 548,
			CreatedAt: date("2024-02-01"),
		},
		{
			ID: "5", FullName: "فاطمة محمود حسين", Phone: "01156789012",
			Address: "مدينة نصر", City: "القاهرة",
			TotalOrders: 4, TotalSpent: 1196,
			Notes:     "تفضل المقاسات الكبيرة",
			CreatedAt: date("2024-02-10"),
		},
	}
}

func SeedOrders() []Order {
	return []Order{
		{
			ID: "1", OrderNumber: "ORD-2024-001", CustomerID: "1", CustomerName: "سارة محمد أحمد",
			Items: []OrderItem{
				{ProductID: "1", ProductName: "طقم لانجري دانتيل أسود", Quantity: 1, UnitPrice: 299, CostPrice: 150},
				{ProductID: "6", ProductName: "روب ستان طويل", Quantity: 1, UnitPrice: 199, CostPrice: 100},
			},
			Status: StatusDelivered, OrderDate: date("2024-03-01"),
			ShippingMethod: ShippingStandard, ShippingCost: 50,
			PaymentMethod: PaymentCash,
		},
		{
			ID: "2", OrderNumber: "ORD-2024-002", CustomerID: "2", CustomerName: "نورا علي حسن",
			Items: []OrderItem{
				{ProductID: "2", ProductName: "بيجامة ستان وردي", Quantity: 2, UnitPrice: 249, CostPrice: 120},
			},
			Status: StatusShipped, OrderDate: date("2024-03-05"),
			ShippingMethod: ShippingExpress, ShippingCost: 75,
			PaymentMethod: PaymentTransfer, Discount: 50,
			Notes: "شحن سريع مطلوب",
		},
		{
			ID: "3", OrderNumber: "ORD-2024-003", CustomerID: "3", CustomerName: "مريم خالد عبدالله",
			Items: []OrderItem{
				{ProductID: "3", ProductName: "طقم لانجري أحمر مع روب", Quantity: 1, UnitPrice: 399, CostPrice: 200},
				{ProductID: "5", ProductName: "لانجري دانتيل أبيض عروس", Quantity: 1, UnitPrice: 349, CostPrice: 180},
			},
			Status: StatusProcessing, OrderDate: date("2024-03-10"),
			ShippingMethod: ShippingStandard, ShippingCost: 50,
			PaymentMethod: PaymentOnline,
			Notes:         "هدية زفاف",
		},
		{
			ID: "4", OrderNumber: "ORD-2024-004", CustomerID: "4", CustomerName: "هدى أحمد سعيد",
			Items: []OrderItem{
				{ProductID: "4", ProductName: "بيجامة قطن مريحة", Quantity: 3, UnitPrice: 179, CostPrice: 80},
			},
			Status: StatusNew, OrderDate: time.Now(),
			ShippingMethod: ShippingPickup, ShippingCost: 0,
			PaymentMethod: PaymentCash, Discount: 30,
			Notes: "استلام من المحل",
		},
		{
			ID: "5", OrderNumber: "ORD-2024-005", CustomerID: "5", CustomerName: "فاطمة محمود حسين",
			Items: []OrderItem{
				{ProductID: "1", ProductName: "طقم لانجري دانتيل أسود", Quantity: 2, UnitPrice: 299, CostPrice: 150},
			},
			Status: StatusNew, OrderDate: time.Now(),
			ShippingMethod: ShippingStandard, ShippingCost: 50,
			PaymentMethod: PaymentTransfer,
		},
	}
}

func SeedExpenses() []Expense {
	return []Expense{
		{ID: "1", Type: ExpenseAdvertising, Amount: 500, Date: date("2024-03-01"), Notes: "إعلانات فيسبوك"},
		{ID: "2", Type: ExpensePackaging, Amount: 200, Date: date("2024-03-05"), Notes: "أكياس وعلب تغليف"},
		{ID: "3", Type: ExpenseShipping, Amount: 300, Date: date("2024-03-10"), Notes: "تكاليف شحن إضافية"},
		{ID: "4", Type: ExpensePhotography, Amount: 400, Date: date("2024-03-12"), Notes: "تصوير منتجات جديدة"},
		{ID: "5", Type: ExpenseOperational, Amount: 150, Date: date("2024-03-15"), Notes: "مصاريف إدارية"},
	}
}

// DefaultUser is the static profile shown in the header and on the profile
// screen.
var DefaultUser = User{
	ID:    "1",
	Name:  "أميرة محمد",
	Email: "admin@lingerie-store.com",
	Role:  RoleAdmin,
}
