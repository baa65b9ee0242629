package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Vehicle struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Make         string         `gorm:"not null;size:100;index" json:"make"`
	Model        string         `gorm:"not null;size:100" json:"model"`
	Year         int            `gorm:"not null" json:"year"`
	Price        float64        `gorm:"not null" json:"price"`
	Mileage      int            `json:"mileage"`
	FuelType     string         `gorm:"size:50" json:"fuel_type,omitempty"`
	BodyType     string         `gorm:"size:50" json:"body_type,omitempty"`
	Transmission string         `gorm:"size:50" json:"transmission,omitempty"`
	Condition    string         `gorm:"size:50" json:"condition,omitempty"`
	Color        string         `gorm:"size:50" json:"color,omitempty"`
	Seats        int            `json:"seats,omitempty"`
	Location     string         `gorm:"size:255" json:"location,omitempty"`
	Features     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	Images       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	ViewsCount   int64          `gorm:"default:0" json:"views_count"`
	FavsCount    int64          `gorm:"column:favorites_count;default:0" json:"favorites_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	User         User           `gorm:"foreignKey:UserID" json:"-"`
	Owner        *OwnerSummary  `gorm:"-" json:"owner,omitempty"`
}
