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

var serviceSchema = search.Schema{
	TextColumns: []string{"title", "description"},
	Fields: []search.Field{
		{Param: "location", Column: "location", Kind: search.Substring},
		{Param: "category", Column: "category", Kind: search.Exact},
		{Param: "priceType", Column: "price_type", Kind: search.Exact},
		{Param: "minPrice", Column: "price", Kind: search.Min},
		{Param: "maxPrice", Column: "price", Kind: search.Max},
		{Param: "mobileService", Column: "mobile_service", Kind: search.Flag},
	},
	SortFields: map[string]string{
		"price":      "price",
		"views":      "views_count",
		"created_at": "created_at",
	},
	DefaultSort: "created_at",
}

type ServiceListingService struct {
	db *gorm.DB
}

func NewServiceListingService(db *gorm.DB) *ServiceListingService {
	return &ServiceListingService{db: db}
}

func (s *ServiceListingService) List(p search.Params) ([]models.ServiceListing, dto.Pagination, error) {
	page, limit := search.NormalizePage(p.Page, p.Limit)

	q := s.db.Model(&models.ServiceListing{}).Scopes(search.ActiveOnly)
	q = serviceSchema.Apply(q, p)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, err
	}

	var listings []models.ServiceListing
	err := q.Order(serviceSchema.OrderClause(p.Sort, p.Order)).
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&listings).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	for i := range listings {
		models.NormalizeImages(&listings[i].Images)
	}

	return listings, dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: search.TotalPages(total, limit),
	}, nil
}

func (s *ServiceListingService) Get(id uuid.UUID) (*models.ServiceListing, error) {
	var listing models.ServiceListing
	if err := s.db.Scopes(search.ActiveOnly).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("service")
		}
		return nil, err
	}
	models.NormalizeImages(&listing.Images)

	var owner models.User
	if err := s.db.First(&owner, "id = ?", listing.UserID).Error; err == nil {
		listing.Owner = owner.Summary()
	}

	if err := s.db.Model(&models.ServiceListing{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		slog.Error("failed to increment view counter", "action", "service_view", "error", err)
	}

	return &listing, nil
}

func (s *ServiceListingService) Create(userID uuid.UUID, req *dto.CreateServiceRequest) (*models.ServiceListing, error) {
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

	priceType := req.PriceType
	if priceType == "" {
		priceType = models.PriceTypeFixed
	}
	if priceType != models.PriceTypeFixed && priceType != models.PriceTypeHourly {
		return nil, apperrors.Validation("price_type must be fixed or hourly")
	}

	listing := models.ServiceListing{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		PriceType:     priceType,
		Location:      req.Location,
		MobileService: req.MobileService,
		Images:        models.EncodeStringArray(req.Images),
		IsActive:      true,
	}

	if err := s.db.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create service listing: %w", err)
	}

	models.NormalizeImages(&listing.Images)
	return &listing, nil
}

func (s *ServiceListingService) Update(id, userID uuid.UUID, req *dto.UpdateServiceRequest) (*models.ServiceListing, error) {
	var listing models.ServiceListing
	if err := s.db.Scopes(search.ActiveOnly).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("service")
		}
		return nil, err
	}
	if listing.UserID != userID {
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.PriceType != nil {
		if *req.PriceType != models.PriceTypeFixed && *req.PriceType != models.PriceTypeHourly {
			return nil, apperrors.Validation("price_type must be fixed or hourly")
		}
		updates["price_type"] = *req.PriceType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.MobileService != nil {
		updates["mobile_service"] = *req.MobileService
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringArray(*req.Images)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&listing).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update service listing: %w", err)
		}
	}

	models.NormalizeImages(&listing.Images)
	return &listing, nil
}

func (s *ServiceListingService) Delete(id, userID uuid.UUID) error {
	var listing models.ServiceListing
	if err := s.db.Scopes(search.ActiveOnly).First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("service")
		}
		return err
	}
	if listing.UserID != userID {
		return apperrors.Forbidden("you do not own this listing")
	}

	return s.db.Model(&listing).Update("is_active", false).Error
}
