// controllers/expense.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"boutique-backend/models"
	"boutique-backend/store"
	"boutique-backend/utils"
)

// ExpenseInput defines the expected JSON structure for creating or
// replacing an expense.
type ExpenseInput struct {
	Type   models.ExpenseType `json:"type" binding:"required,oneof=shipping advertising packaging photography operational other"`
	Amount float64            `json:"amount" binding:"min=0"`
	Date   *time.Time         `json:"date"`
	Notes  string             `json:"notes"`
}

type ExpenseController struct {
	Store *store.Store
}

// CreateExpense records an expense
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	expense := models.Expense{
		ID:     uuid.New().String(),
		Type:   input.Type,
		Amount: input.Amount,
		Date:   date,
		Notes:  input.Notes,
	}
	ec.Store.AddExpense(expense)

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves all expenses
func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, ec.Store.Expenses())
}

// GetExpense retrieves a specific expense by ID
func (ec *ExpenseController) GetExpense(c *gin.Context) {
	expense, ok := ec.Store.Expense(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateExpense replaces an existing expense record
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	existing, ok := ec.Store.Expense(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}

	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date := existing.Date
	if input.Date != nil {
		date = *input.Date
	}

	expense := models.Expense{
		ID:     existing.ID,
		Type:   input.Type,
		Amount: input.Amount,
		Date:   date,
		Notes:  input.Notes,
	}
	ec.Store.UpdateExpense(expense)

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ec.Store.Expense(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		return
	}
	ec.Store.DeleteExpense(id)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
