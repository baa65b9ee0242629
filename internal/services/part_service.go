package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/otoarena/backend/internal/search"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var partSchema = search.Schema{
	TextColumns: []string{"title", "description", "oem_number"},
	Fields: []search.Field{
		{Param: "location", Column: "location", Kind: search.Substring},
		{Param: "category", Column: "category", Kind: search.Exact},
		{Param: "make", Column: "make", Kind: search.Exact},
		{Param: "condition", Column: "condition", Kind: search.Exact},
		{Param: "minPrice", Column: "price", Kind: search.Min},
		{Param: "maxPrice", Column: "price", Kind: search.Max},
	},
	SortFields: map[string]string{
		"price":      "price",
		"views":      "views_count",
		"created_at": "created_at",
	},
	DefaultSort: "created_at",
}

type PartService struct {
	db *gorm.DB
}

func NewPartService(db *gorm.DB) *PartService {
	return &PartService{db: db}
}

func (s *PartService) List(p search.Params) ([]models.Part, dto.Pagination, error) {
	page, limit := search.NormalizePage(p.Page, p.Limit)

	q := s.db.Model(&models.Part{}).Scopes(search.ActiveOnly)
	q = partSchema.Apply(q, p)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, err
	}

	var parts []models.Part
	err := q.Order(partSchema.OrderClause(p.Sort, p.Order)).
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&parts).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	for i := range parts {
		models.NormalizeImages(&parts[i].Images)
	}

	return parts, dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: search.TotalPages(total, limit),
	}, nil
}

func (s *PartService) Get(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	if err := s.db.Scopes(search.ActiveOnly).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("part")
		}
		return nil, err
	}
	models.NormalizeImages(&part.Images)

	var owner models.User
	if err := s.db.First(&owner, "id = ?", part.UserID).Error; err == nil {
		part.Owner = owner.Summary()
	}

	if err := s.db.Model(&models.Part{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		slog.Error("failed to increment view counter", "action", "part_view", "error", err)
	}

	return &part, nil
}

func (s *PartService) Create(userID uuid.UUID, req *dto.CreatePartRequest) (*models.Part, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Category == "" {
		missing = append(missing, "category")
	}
	if req.Price == 0 {
		missing = append(missing, "price")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	part := models.Part{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Make:        req.Make,
		Model:       req.Model,
		OEMNumber:   req.OEMNumber,
		Condition:   req.Condition,
		Price:       req.Price,
		Quantity:    quantity,
		Location:    req.Location,
		Images:      models.EncodeStringArray(req.Images),
		IsActive:    true,
	}

	if err := s.db.Create(&part).Error; err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	models.NormalizeImages(&part.Images)
	return &part, nil
}

func (s *PartService) Update(id, userID uuid.UUID, req *dto.UpdatePartRequest) (*models.Part, error) {
	var part models.Part
	if err := s.db.Scopes(search.ActiveOnly).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("part")
		}
		return nil, err
	}
	if part.UserID != userID {
		return nil, apperrors.Forbidden("you do not own this listing")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Make != nil {
		updates["make"] = *req.Make
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.OEMNumber != nil {
		updates["oem_number"] = *req.OEMNumber
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringArray(*req.Images)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&part).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update part: %w", err)
		}
	}

	models.NormalizeImages(&part.Images)
	return &part, nil
}

func (s *PartService) Delete(id, userID uuid.UUID) error {
	var part models.Part
	if err := s.db.Scopes(search.ActiveOnly).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("part")
		}
		return err
	}
	if part.UserID != userID {
		return apperrors.Forbidden("you do not own this listing")
	}

	return s.db.Model(&part).Update("is_active", false).Error
}
