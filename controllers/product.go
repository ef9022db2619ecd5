// controllers/product.go
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

// ProductInput defines the expected JSON structure for creating or
// replacing a product. Updates are full-record replacements, so the same
// shape serves both.
type ProductInput struct {
	Name         string                 `json:"name" binding:"required"`
	Category     models.ProductCategory `json:"category" binding:"required,oneof=lingerie pajamas sets accessories"`
	Size         string                 `json:"size"`
	Color        string                 `json:"color"`
	SKU          string                 `json:"sku"`
	Stock        int                    `json:"stock" binding:"min=0"`
	CostPrice    float64                `json:"costPrice" binding:"min=0"`
	SellingPrice float64                `json:"sellingPrice" binding:"min=0"`
	Image        string                 `json:"image"`
	Notes        string                 `json:"notes"`
}

type ProductController struct {
	Store *store.Store
}

// CreateProduct adds a product to the catalog
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Category:     input.Category,
		Size:         input.Size,
		Color:        input.Color,
		SKU:          input.SKU,
		Stock:        input.Stock,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Image:        input.Image,
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
	}
	pc.Store.AddProduct(product)

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves the whole catalog
func (pc *ProductController) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Store.Products())
}

// GetProduct retrieves a specific product by ID
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, ok := pc.Store.Product(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct replaces an existing product record
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	existing, ok := pc.Store.Product(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		ID:           existing.ID,
		Name:         input.Name,
		Category:     input.Category,
		Size:         input.Size,
		Color:        input.Color,
		SKU:          input.SKU,
		Stock:        input.Stock,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Image:        input.Image,
		Notes:        input.Notes,
		CreatedAt:    existing.CreatedAt,
	}
	pc.Store.UpdateProduct(product)

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if _, ok := pc.Store.Product(id); !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}
	pc.Store.DeleteProduct(id)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
