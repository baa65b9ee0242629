package search

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveOnly is the existence gate every public read goes through.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = true")
}

// OwnedBy scopes a query to one user's rows.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// RentalAvailable extends the existence gate for rentals: bookable flag set
// and now inside the availability window.
func RentalAvailable(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_available = true").
			Where("available_from <= ?", now).
			Where("available_until >= ?", now)
	}
}
