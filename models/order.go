package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a frozen snapshot of a cart at checkout. User, Total and Date
// never change after creation; only DeliveryCrewID and Status do.
// Status false = not delivered, true = delivered.
type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           User            `json:"-" gorm:"foreignKey:UserID"`
	DeliveryCrewID *uint           `json:"delivery_crew_id"`
	DeliveryCrew   *User           `json:"-" gorm:"foreignKey:DeliveryCrewID"`
	Status         bool            `json:"status" gorm:"index;not null;default:false"`
	Total          decimal.Decimal `json:"total" gorm:"type:decimal(6,2);not null"`
	Date           time.Time       `json:"date" gorm:"index;not null"`
	Items          []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItem is an immutable copy of one cart line, so the order stays a
// correct historical record even when menu prices change later.
type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;uniqueIndex:idx_order_menuitem"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null;uniqueIndex:idx_order_menuitem"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null"`
}
