package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is one line in a user's cart. The composite unique index means a
// repeat add for the same menu item replaces the line instead of
// duplicating it. UnitPrice is copied from the MenuItem at write time;
// Price = UnitPrice * Quantity.
type Cart struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"-" gorm:"not null;uniqueIndex:idx_cart_user_menuitem"`
	MenuItemID uint            `json:"menuitem_id" gorm:"not null;uniqueIndex:idx_cart_user_menuitem"`
	MenuItem   MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(6,2);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
