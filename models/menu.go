package models

import "github.com/shopspring/decimal"

type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null"`
	Title string `json:"title" gorm:"not null"`
}

// MenuItem prices are fixed-point currency with two decimal places.
// Deleting a Category cascades to its MenuItems.
type MenuItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Title      string          `json:"title" gorm:"index;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(6,2);index;not null"`
	Featured   bool            `json:"featured" gorm:"index"`
	CategoryID uint            `json:"category_id" gorm:"not null"`
	Category   Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
