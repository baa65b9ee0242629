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

var vehicleSchema = search.Schema{
	TextColumns: []string{"title", "description", "make", "model"},
	Fields: []search.Field{
		{Param: "location", Column: "location", Kind: search.Substring},
		{Param: "make", Column: "make", Kind: search.Exact},
		{Param: "model", Column: "model", Kind: search.Exact},
		{Param: "fuelType", Column: "fuel_type", Kind: search.Exact},
		{Param: "bodyType", Column: "body_type", Kind: search.Exact},
		{Param: "transmission", Column: "transmission", Kind: search.Exact},
		{Param: "condition", Column: "condition", Kind: search.Exact},
		{Param: "minPrice", Column: "price", Kind: search.Min},
		{Param: "maxPrice", Column: "price", Kind: search.Max},
		{Param: "minYear", Column: "year", Kind: search.Min},
		{Param: "maxYear", Column: "year", Kind: search.Max},
		{Param: "maxMileage", Column: "mileage", Kind: search.Max},
		{Param: "minSeats", Column: "seats", Kind: search.Min},
	},
	SortFields: map[string]string{
		"price":      "price",
		"year":       "year",
		"mileage":    "mileage",
		"views":      "views_count",
		"created_at": "created_at",
	},
	DefaultSort: "created_at",
}

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) List(p search.Params) ([]models.Vehicle, dto.Pagination, error) {
	page, limit := search.NormalizePage(p.Page, p.Limit)

	q := s.db.Model(&models.Vehicle{}).Scopes(search.ActiveOnly)
	q = vehicleSchema.Apply(q, p)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, err
	}

	var vehicles []models.Vehicle
	err := q.Order(vehicleSchema.OrderClause(p.Sort, p.Order)).
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&vehicles).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	for i := range vehicles {
		normalizeVehicle(&vehicles[i])
	}

	return vehicles, dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: search.TotalPages(total, limit),
	}, nil
}

// Get fetches one active vehicle with its owner summary and bumps the view
// counter best-effort: a failed increment never fails the read.
func (s *VehicleService) Get(id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Scopes(search.ActiveOnly).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}
	normalizeVehicle(&vehicle)

	var owner models.User
	if err := s.db.First(&owner, "id = ?", vehicle.UserID).Error; err == nil {
		vehicle.Owner = owner.Summary()
	}

	if err := s.db.Model(&models.Vehicle{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		slog.Error("failed to increment view counter", "action", "vehicle_view", "error", err)
	}

	return &vehicle, nil
}

func (s *VehicleService) Create(userID uuid.UUID, req *dto.CreateVehicleRequest) (*models.Vehicle, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Make == "" {
		missing = append(missing, "make")
	}
	if req.Model == "" {
		missing = append(missing, "model")
	}
	if req.Year == 0 {
		missing = append(missing, "year")
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

	vehicle := models.Vehicle{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		BodyType:     req.BodyType,
		Transmission: req.Transmission,
		Condition:    req.Condition,
		Color:        req.Color,
		Seats:        req.Seats,
		Location:     req.Location,
		Features:     models.EncodeStringArray(req.Features),
		Images:       models.EncodeStringArray(req.Images),
		IsActive:     true,
	}

	if err := s.db.Create(&vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	normalizeVehicle(&vehicle)
	return &vehicle, nil
}

// Update checks ownership by a prior read: a row owned by someone else is an
// authorization failure, distinct from not-found.
func (s *VehicleService) Update(id, userID uuid.UUID, req *dto.UpdateVehicleRequest) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.Scopes(search.ActiveOnly).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vehicle")
		}
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, apperrors.Forbidden("you do not own this listing")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Make != nil {
		updates["make"] = *req.Make
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.BodyType != nil {
		updates["body_type"] = *req.BodyType
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.Condition != nil {
		updates["condition"] = *req.Condition
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Features != nil {
		updates["features"] = models.EncodeStringArray(*req.Features)
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringArray(*req.Images)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&vehicle).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
	}

	normalizeVehicle(&vehicle)
	return &vehicle, nil
}

// Delete is a soft delete; no row is physically removed by any path.
func (s *VehicleService) Delete(id, userID uuid.UUID) error {
	var vehicle models.Vehicle
	if err := s.db.Scopes(search.ActiveOnly).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("vehicle")
		}
		return err
	}
	if vehicle.UserID != userID {
		return apperrors.Forbidden("you do not own this listing")
	}

	return s.db.Model(&vehicle).Update("is_active", false).Error
}

func normalizeVehicle(v *models.Vehicle) {
	models.NormalizeArray(&v.Features)
	models.NormalizeImages(&v.Images)
}
