package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PriceTypeFixed  = "fixed"
	PriceTypeHourly = "hourly"
)

// ServiceListing is an offered automotive service (repair, detailing, towing).
type ServiceListing struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string         `gorm:"not null;size:255" json:"title"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Category      string         `gorm:"not null;size:100;index" json:"category"`
	Price         float64        `gorm:"not null" json:"price"`
	PriceType     string         `gorm:"size:20;default:'fixed'" json:"price_type"`
	Location      string         `gorm:"size:255" json:"location,omitempty"`
	MobileService bool           `gorm:"default:false" json:"mobile_service"`
	Images        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`
	ViewsCount    int64          `gorm:"default:0" json:"views_count"`
	FavsCount     int64          `gorm:"column:favorites_count;default:0" json:"favorites_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Owner         *OwnerSummary  `gorm:"-" json:"owner,omitempty"`
}

func (ServiceListing) TableName() string {
	return "service_listings"
}
