// controllers/customer.go
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

// CustomerInput defines the expected JSON structure for creating or
// replacing a customer. TotalOrders and TotalSpent are settable here, as on
// the customer form; the store also adjusts them when orders come and go.
type CustomerInput struct {
	FullName    string  `json:"fullName" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	TotalOrders int     `json:"totalOrders" binding:"min=0"`
	TotalSpent  float64 `json:"totalSpent" binding:"min=0"`
	Notes       string  `json:"notes"`
}

type CustomerController struct {
	Store *store.Store
}

// CreateCustomer adds a customer to the customer list
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer := models.Customer{
		ID:          uuid.New().String(),
		FullName:    input.FullName,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		TotalOrders: input.TotalOrders,
		TotalSpent:  input.TotalSpent,
		Notes:       input.Notes,
		CreatedAt:   time.Now(),
	}
	cc.Store.AddCustomer(customer)

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Customers())
}

// GetCustomer retrieves a specific customer by ID
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, ok := cc.Store.Customer(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces an existing customer record
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	existing, ok := cc.Store.Customer(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	customer := models.Customer{
		ID:          existing.ID,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		TotalOrders: input.TotalOrders,
		TotalSpent:  input.TotalSpent,
		Notes:       input.Notes,
		CreatedAt:   existing.CreatedAt,
	}
	cc.Store.UpdateCustomer(customer)

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Their historical orders are untouched;
// the snapshots on each order keep the display data alive.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if _, ok := cc.Store.Customer(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	cc.Store.DeleteCustomer(id)

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
