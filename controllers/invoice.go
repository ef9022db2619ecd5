// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-backend/services"
	"boutique-backend/store"
	"boutique-backend/utils"
)

type InvoiceController struct {
	Store    *store.Store
	Invoices *services.InvoiceService
}

// GenerateInvoice produces the invoice for an order. Calling it again for
// the same order returns the invoice already on file.
func (ic *InvoiceController) GenerateInvoice(c *gin.Context) {
	invoice, created, err := ic.Invoices.Generate(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice")
		}
		return
	}

	if created {
		c.JSON(http.StatusCreated, invoice)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetInvoices retrieves all generated invoices
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, ic.Store.Invoices())
}

// GetInvoice retrieves a specific invoice by ID
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	invoice, ok := ic.Store.Invoice(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, invoice)
}
