package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderingColumn validates a ?ordering= value against an allow-list and
// returns the matching ORDER BY clause, or "" when invalid.
func orderingColumn(param string, allowed map[string]string) string {
	if param == "" {
		return ""
	}
	desc := false
	if param[0] == '-' {
		desc = true
		param = param[1:]
	}
	col, ok := allowed[param]
	if !ok {
		return ""
	}
	if desc {
		return col + " desc"
	}
	return col + " asc"
}

type MenuItemRequest struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"category_id" binding:"required"`
}

// ListMenuItems returns all menu items, with optional filtering by
// category and price range, title search, and ordering by title/price.
func ListMenuItems(c *gin.Context) {
	query := config.DB.Preload("Category")

	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	if min := c.Query("min_price"); min != "" {
		query = query.Where("price >= ?", min)
	}
	if max := c.Query("max_price"); max != "" {
		query = query.Where("price <= ?", max)
	}
	if featured := c.Query("featured"); featured == "true" {
		query = query.Where("featured = ?", true)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if order := orderingColumn(c.Query("ordering"), map[string]string{
		"title": "title",
		"price": "price",
	}); order != "" {
		query = query.Order(order)
	}

	var items []models.MenuItem
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu_items": items})
}

// CreateMenuItem adds a menu item (manager only, enforced by the gate).
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	item := models.MenuItem{
		Title:      req.Title,
		Price:      req.Price,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	item.Category = category
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// GetMenuItem returns a single menu item.
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Preload("Category").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// UpdateMenuItem replaces a menu item in full (PUT).
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.First(&models.Category{}, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	item.Title = req.Title
	item.Price = req.Price
	item.Featured = req.Featured
	item.CategoryID = req.CategoryID
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

type MenuItemPatchRequest struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	Featured   *bool            `json:"featured"`
	CategoryID *uint            `json:"category_id"`
}

// PatchMenuItem updates only the supplied fields.
func PatchMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.CategoryID != nil {
		if err := config.DB.First(&models.Category{}, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
		item.CategoryID = *req.CategoryID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes a menu item.
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

type CategoryRequest struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// ListCategories returns all categories.
func ListCategories(c *gin.Context) {
	var categories []models.Category
	config.DB.Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateCategory adds a category (manager only).
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{Slug: req.Slug, Title: req.Title}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteCategory removes a category; its menu items go with it.
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	// sqlite does not always enforce FK cascade through gorm; delete
	// children explicitly inside one transaction.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
