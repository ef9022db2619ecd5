package models

import "time"

type ExpenseType string

const (
	ExpenseShipping    ExpenseType = "shipping"
	ExpenseAdvertising ExpenseType = "advertising"
	ExpensePackaging   ExpenseType = "packaging"
	ExpensePhotography ExpenseType = "photography"
	ExpenseOperational ExpenseType = "operational"
	ExpenseOther       ExpenseType = "other"
)

// ExpenseTypes lists every expense type in display order.
var ExpenseTypes = []ExpenseType{
	ExpenseShipping, ExpenseAdvertising, ExpensePackaging, ExpensePhotography, ExpenseOperational, ExpenseOther,
}

type Expense struct {
	ID     string      `json:"id"`
	Type   ExpenseType `json:"type"`
	Amount float64     `json:"amount"`
	Date   time.Time   `json:"date"`
	Notes  string      `json:"notes"`
}
