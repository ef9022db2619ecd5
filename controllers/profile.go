// controllers/profile.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-backend/models"
)

// GetProfile returns the static display user. There is no login; the
// header and profile screen always show the shop owner.
func GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultUser)
}
