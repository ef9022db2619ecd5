package models

import "time"

type Customer struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`

	// TotalOrders and TotalSpent are maintained by the store when orders are
	// added or deleted for this customer. They stay editable on the customer
	// form.
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
