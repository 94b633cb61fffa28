package handlers

import (
	"fmt"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

type CartRequest struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the caller's cart lines in insertion order.
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var lines []models.Cart
	config.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines)
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "cart": lines})
}

// AddToCart adds a menu item to the caller's cart. The unit price always
// comes from the menu item, never from the request. A repeat add for the
// same item replaces the existing line (last write wins, not additive);
// the upsert runs as one statement so concurrent adds cannot interleave
// quantity and price.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
		return
	}

	line := models.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   req.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit_price", "price", "updated_at"}),
	}).Create(&line).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	config.DB.Preload("MenuItem").
		Where("user_id = ? AND menu_item_id = ?", userID, item.ID).
		First(&line)
	c.JSON(http.StatusCreated, gin.H{"cart_item": line})
}

// ClearCart deletes all of the caller's cart lines. Clearing an empty
// cart succeeds with a count of zero.
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	result := config.DB.Where("user_id = ?", userID).Delete(&models.Cart{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d cart item(s) deleted.", result.RowsAffected),
	})
}
