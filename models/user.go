package models

import (
	"time"
)

// Role names used throughout the API. A user's roles come from group
// membership; a user in no group is a customer.
const (
	RoleCustomer     = "customer"
	RoleManager      = "manager"
	RoleDeliveryCrew = "deliver_crew"

	// RoleAny is a sentinel for permission maps: any caller passes.
	RoleAny = "any"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Groups       []Group   `json:"-" gorm:"many2many:user_groups"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Group is a named role group (manager, deliver_crew). Customer has no
// group row: it is the implicit default role.
type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// RoleNames returns the user's group names, normalized so that a user
// with no groups reports ["customer"].
func (u *User) RoleNames() []string {
	if len(u.Groups) == 0 {
		return []string{RoleCustomer}
	}
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}

// HasRole reports whether the user's normalized role set contains name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.RoleNames() {
		if r == name {
			return true
		}
	}
	return false
}
