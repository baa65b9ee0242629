package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func listingTable(itemType string) string {
	switch itemType {
	case models.ItemTypeVehicle:
		return "vehicles"
	case models.ItemTypePart:
		return "parts"
	case models.ItemTypeService:
		return "service_listings"
	}
	return ""
}

// Add rejects unknown item types, missing or inactive items, and duplicate
// favorites for the same (user, type, item).
func (s *FavoriteService) Add(userID uuid.UUID, req *dto.AddFavoriteRequest) (*models.Favorite, error) {
	if !models.ValidItemType(req.ItemType) {
		return nil, apperrors.Validation("item_type must be vehicle, part or service")
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apperrors.Validation("invalid item_id")
	}

	var count int64
	if err := s.db.Table(listingTable(req.ItemType)).
		Where("id = ? AND is_active = true", itemID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound(req.ItemType)
	}

	var existing models.Favorite
	err = s.db.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, req.ItemType, itemID).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("already in favorites")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := models.Favorite{
		ID:       uuid.New(),
		UserID:   userID,
		ItemType: req.ItemType,
		ItemID:   itemID,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}

	s.bumpFavoritesCount(req.ItemType, itemID, +1)

	return &favorite, nil
}

// Remove returns the removed favorite, or not-found when no row matched.
func (s *FavoriteService) Remove(userID uuid.UUID, itemType string, itemID uuid.UUID) (*models.Favorite, error) {
	if !models.ValidItemType(itemType) {
		return nil, apperrors.Validation("item_type must be vehicle, part or service")
	}

	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("favorite")
		}
		return nil, err
	}

	if err := s.db.Delete(&favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.bumpFavoritesCount(itemType, itemID, -1)

	return &favorite, nil
}

// List joins each favorite with summary fields of its listing and returns
// aggregate counts by item type.
func (s *FavoriteService) List(userID uuid.UUID) (*dto.FavoritesListResponse, error) {
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		return nil, err
	}

	idsByType := map[string][]uuid.UUID{}
	for _, f := range favorites {
		idsByType[f.ItemType] = append(idsByType[f.ItemType], f.ItemID)
	}

	type listingRow struct {
		ID       uuid.UUID
		Title    string
		Price    float64
		Location string
		Images   datatypes.JSON
	}

	summaries := map[string]map[uuid.UUID]listingRow{}
	for itemType, ids := range idsByType {
		var rows []listingRow
		if err := s.db.Table(listingTable(itemType)).
			Select("id, title, price, location, images").
			Where("id IN ?", ids).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		byID := make(map[uuid.UUID]listingRow, len(rows))
		for _, r := range rows {
			byID[r.ID] = r
		}
		summaries[itemType] = byID
	}

	resp := &dto.FavoritesListResponse{
		Favorites: make([]dto.FavoriteEntry, 0, len(favorites)),
		Counts:    map[string]int64{},
	}
	for _, f := range favorites {
		resp.Counts[f.ItemType]++
		entry := dto.FavoriteEntry{
			ID:        f.ID,
			ItemType:  f.ItemType,
			ItemID:    f.ItemID,
			CreatedAt: f.CreatedAt,
			Image:     models.PlaceholderImage,
		}
		if row, ok := summaries[f.ItemType][f.ItemID]; ok {
			entry.Title = row.Title
			entry.Price = row.Price
			entry.Location = row.Location
			if images := models.DecodeStringArray(row.Images, nil); len(images) > 0 {
				entry.Image = images[0]
			}
		}
		resp.Favorites = append(resp.Favorites, entry)
	}

	return resp, nil
}

// bumpFavoritesCount is best-effort; a failed counter update never fails the
// favorite mutation.
func (s *FavoriteService) bumpFavoritesCount(itemType string, itemID uuid.UUID, delta int) {
	expr := gorm.Expr("favorites_count + 1")
	if delta < 0 {
		expr = gorm.Expr("GREATEST(favorites_count - 1, 0)")
	}
	if err := s.db.Table(listingTable(itemType)).
		Where("id = ?", itemID).
		UpdateColumn("favorites_count", expr).Error; err != nil {
		slog.Error("failed to update favorites counter", "action", "favorites_count",
			"item_type", itemType, "error", err)
	}
}
