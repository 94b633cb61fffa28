package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant-api/config"
	"restaurant-api/lifecycle"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errEmptyCart = errors.New("cart is empty")

// scopedOrders returns the order query visible to the caller: managers
// see everything, delivery crew only their assigned orders, customers
// only their own. Both list and get-by-id go through this, so an order
// outside the caller's scope is indistinguishable from a missing one.
func scopedOrders(c *gin.Context) *gorm.DB {
	userID := middleware.GetUserID(c)
	switch {
	case middleware.HasRole(c, models.RoleManager):
		return config.DB.Model(&models.Order{})
	case middleware.HasRole(c, models.RoleDeliveryCrew):
		return config.DB.Model(&models.Order{}).Where("delivery_crew_id = ?", userID)
	default:
		return config.DB.Model(&models.Order{}).Where("user_id = ?", userID)
	}
}

func orderResponse(o models.Order) gin.H {
	return gin.H{
		"id":               o.ID,
		"user_id":          o.UserID,
		"delivery_crew_id": o.DeliveryCrewID,
		"status":           o.Status,
		"state":            lifecycle.StateOf(&o),
		"total":            o.Total,
		"date":             o.Date.Format("2006-01-02"),
		"items":            o.Items,
	}
}

// ListOrders returns the caller's visible orders with optional status
// and date filters and ordering by date/total.
func ListOrders(c *gin.Context) {
	query := scopedOrders(c).Preload("Items.MenuItem")

	if status := c.Query("status"); status != "" {
		if val, err := coerceStatus(status); err == nil {
			query = query.Where("status = ?", val)
		}
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date(date) = ?", date)
	}
	if order := orderingColumn(c.Query("ordering"), map[string]string{
		"date":  "date",
		"total": "total",
	}); order != "" {
		query = query.Order(order)
	}

	var orders []models.Order
	query.Find(&orders)

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "orders": out})
}

// PlaceOrder converts the caller's cart into an order. The cart read,
// total computation, order and item creation and cart clear run in one
// transaction: either the whole order exists and the cart is empty, or
// nothing changed.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	y, m, d := time.Now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.Cart
		if err := tx.Where("user_id = ?", userID).Order("id asc").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return errEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}

		order = models.Order{
			UserID: userID,
			Status: false,
			Total:  total,
			Date:   today,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, l := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		if errors.Is(err, errEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty. Cannot create order."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": orderResponse(order)})
}

// GetOrder returns one order within the caller's scope.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := scopedOrders(c).Preload("Items.MenuItem").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": orderResponse(order)})
}

// coerceStatus normalizes a delivery status supplied as a boolean, the
// integers 0/1, or the strings "0"/"1"/"true"/"false". Anything else is
// an error.
func coerceStatus(v interface{}) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case float64:
		if val == 0 {
			return false, nil
		}
		if val == 1 {
			return true, nil
		}
	case string:
		switch strings.ToLower(val) {
		case "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		}
	}
	return false, fmt.Errorf("invalid status value")
}

// validateCrew resolves a prospective delivery crew user. Both failure
// modes are validation errors, not 404s: the order being updated exists.
func validateCrew(id uint) (*models.User, int, string) {
	var crew models.User
	if err := config.DB.Preload("Groups").First(&crew, id).Error; err != nil {
		return nil, http.StatusBadRequest, "delivery crew user not found"
	}
	if !crew.HasRole(models.RoleDeliveryCrew) {
		return nil, http.StatusBadRequest, "User is not delivery crew"
	}
	return &crew, 0, ""
}

// applyManagerUpdate applies a manager's order update. Only
// delivery_crew and status are mutable; everything else on an order is
// frozen at checkout.
func applyManagerUpdate(c *gin.Context, order *models.Order, data map[string]interface{}) {
	updates := map[string]interface{}{}

	for key := range data {
		if key != "delivery_crew" && key != "status" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only delivery_crew and status may be updated"})
			return
		}
	}

	if raw, ok := data["delivery_crew"]; ok {
		id, isNum := raw.(float64)
		if !isNum || id < 1 || id != float64(uint64(id)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery crew user not found"})
			return
		}
		crew, status, msg := validateCrew(uint(id))
		if crew == nil {
			c.JSON(status, gin.H{"error": msg})
			return
		}
		updates["delivery_crew_id"] = crew.ID
	}

	if raw, ok := data["status"]; ok {
		val, err := coerceStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		updates["status"] = val
	}

	if len(updates) > 0 {
		if err := config.DB.Model(order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
	}

	config.DB.Preload("Items.MenuItem").First(order, order.ID)
	c.JSON(http.StatusOK, gin.H{"order": orderResponse(*order)})
}

// UpdateOrder handles PUT: a manager's full update of the mutable
// order fields (delivery_crew assignment, delivery status).
func UpdateOrder(c *gin.Context) {
	var order models.Order
	if err := scopedOrders(c).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyManagerUpdate(c, &order, data)
}

// PatchOrder handles PATCH. A manager may set delivery_crew and status.
// Delivery crew may flip status on their assigned orders and touch
// nothing else: any extra field rejects the whole request, and a status
// value that is not a boolean, 0/1 or "true"/"false" is a 400.
func PatchOrder(c *gin.Context) {
	var order models.Order
	if err := scopedOrders(c).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if middleware.HasRole(c, models.RoleManager) {
		applyManagerUpdate(c, &order, data)
		return
	}

	// Delivery crew path. Scoping already guarantees this is the
	// caller's assigned order.
	raw, ok := data["status"]
	if !ok || len(data) != 1 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only status update allowed"})
		return
	}
	val, err := coerceStatus(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	if err := config.DB.Model(&order).Update("status", val).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"order": orderResponse(order)})
}

// DeleteOrder removes an order and its items (manager only).
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := scopedOrders(c).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "order_id": order.ID})
}

// GetOrderLifecycle returns the order state model for documentation.
func GetOrderLifecycle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":          []lifecycle.State{lifecycle.StatePlaced, lifecycle.StateAssigned, lifecycle.StateDelivered},
		"transitions":     lifecycle.All(),
		"terminal_states": []lifecycle.State{lifecycle.StateDelivered},
		"description":     "Order delivery lifecycle",
	})
}
