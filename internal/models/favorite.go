package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ItemTypeVehicle = "vehicle"
	ItemTypePart    = "part"
	ItemTypeService = "service"
)

// ValidItemType reports whether t names a favoritable listing type.
func ValidItemType(t string) bool {
	return t == ItemTypeVehicle || t == ItemTypePart || t == ItemTypeService
}

// Favorite links a user to a listing. At most one row may exist per
// (user_id, item_type, item_id); the composite unique index enforces it.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item,priority:1" json:"user_id"`
	ItemType  string    `gorm:"size:20;not null;uniqueIndex:idx_favorites_user_item,priority:2" json:"item_type"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item,priority:3;index" json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
