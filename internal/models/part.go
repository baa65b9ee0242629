package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Part struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Category    string         `gorm:"not null;size:100;index" json:"category"`
	Make        string         `gorm:"size:100" json:"make,omitempty"`
	Model       string         `gorm:"size:100" json:"model,omitempty"`
	OEMNumber   string         `gorm:"column:oem_number;size:100" json:"oem_number,omitempty"`
	Condition   string         `gorm:"size:50" json:"condition,omitempty"`
	Price       float64        `gorm:"not null" json:"price"`
	Quantity    int            `gorm:"default:1" json:"quantity"`
	Location    string         `gorm:"size:255" json:"location,omitempty"`
	Images      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	ViewsCount  int64          `gorm:"default:0" json:"views_count"`
	FavsCount   int64          `gorm:"column:favorites_count;default:0" json:"favorites_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	Owner       *OwnerSummary  `gorm:"-" json:"owner,omitempty"`
}
