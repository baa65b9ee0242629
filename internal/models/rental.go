package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Rental struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title             string         `gorm:"not null;size:255" json:"title"`
	Description       string         `gorm:"type:text" json:"description,omitempty"`
	Make              string         `gorm:"not null;size:100;index" json:"make"`
	Model             string         `gorm:"not null;size:100" json:"model"`
	Year              int            `json:"year"`
	DailyRate         float64        `gorm:"not null" json:"daily_rate"`
	WeeklyRate        float64        `json:"weekly_rate,omitempty"`
	Deposit           float64        `json:"deposit,omitempty"`
	MinRentalDays     int            `gorm:"default:1" json:"min_rental_days"`
	MaxRentalDays     int            `json:"max_rental_days,omitempty"`
	Seats             int            `json:"seats,omitempty"`
	Transmission      string         `gorm:"size:50" json:"transmission,omitempty"`
	FuelType          string         `gorm:"size:50" json:"fuel_type,omitempty"`
	Location          string         `gorm:"size:255" json:"location,omitempty"`
	AvailableFrom     time.Time      `json:"available_from"`
	AvailableUntil    time.Time      `json:"available_until"`
	IsAvailable       bool           `gorm:"default:true;index" json:"is_available"`
	DeliveryAvailable bool           `gorm:"default:false" json:"delivery_available"`
	InsuranceIncluded bool           `gorm:"default:false" json:"insurance_included"`
	Features          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	Images            datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	IncludedItems     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"included_items"`
	PickupLocations   datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"pickup_locations"`
	IsActive          bool           `gorm:"default:true;index" json:"is_active"`
	ViewsCount        int64          `gorm:"default:0" json:"views_count"`
	BookingCount      int64          `gorm:"default:0" json:"booking_count"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	User              User           `gorm:"foreignKey:UserID" json:"-"`
	Owner             *OwnerSummary  `gorm:"-" json:"owner,omitempty"`
}

// AvailableNow reports whether the rental can be booked at the given time.
func (r *Rental) AvailableNow(now time.Time) bool {
	if !r.IsActive || !r.IsAvailable {
		return false
	}
	if now.Before(r.AvailableFrom) {
		return false
	}
	if !r.AvailableUntil.IsZero() && now.After(r.AvailableUntil) {
		return false
	}
	return true
}
