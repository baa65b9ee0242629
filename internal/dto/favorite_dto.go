package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddFavoriteRequest struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
}

// FavoriteEntry is a favorite joined with summary fields of its listing.
type FavoriteEntry struct {
	ID        uuid.UUID `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    uuid.UUID `json:"item_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Location  string    `json:"location,omitempty"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type FavoritesListResponse struct {
	Favorites []FavoriteEntry  `json:"favorites"`
	Counts    map[string]int64 `json:"counts"`
}
