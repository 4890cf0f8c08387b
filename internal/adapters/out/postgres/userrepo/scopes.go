package userrepo

import (
	"gorm.io/gorm"
)

// Active hides deactivated accounts.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("users.active = ?", true)
}

// OrderRefs preloads only the identifiers of a user's orders, oldest first.
func OrderRefs(db *gorm.DB) *gorm.DB {
	return db.Select("id", "customer_id").Order("created_at")
}
