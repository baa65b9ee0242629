package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/otoarena/backend/internal/search"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var rentalSchema = search.Schema{
	TextColumns: []string{"title", "description", "make", "model"},
	Fields: []search.Field{
		{Param: "location", Column: "location", Kind: search.Substring},
		{Param: "make", Column: "make", Kind: search.Exact},
		{Param: "transmission", Column: "transmission", Kind: search.Exact},
		{Param: "fuelType", Column: "fuel_type", Kind: search.Exact},
		{Param: "minRate", Column: "daily_rate", Kind: search.Min},
		{Param: "maxRate", Column: "daily_rate", Kind: search.Max},
		{Param: "minSeats", Column: "seats", Kind: search.Min},
		{Param: "maxDays", Column: "min_rental_days", Kind: search.Max},
		{Param: "deliveryAvailable", Column: "delivery_available", Kind: search.Flag},
		{Param: "insuranceIncluded", Column: "insurance_included", Kind: search.Flag},
	},
	SortFields: map[string]string{
		"daily_rate": "daily_rate",
		"year":       "year",
		"views":      "views_count",
		"bookings":   "booking_count",
		"created_at": "created_at",
	},
	DefaultSort: "created_at",
}

type RentalService struct {
	db *gorm.DB
	// now is swappable so the availability window can be tested.
	now func() time.Time
}

func NewRentalService(db *gorm.DB) *RentalService {
	return &RentalService{db: db, now: time.Now}
}

// List only returns rentals that are active, flagged available and whose
// availability window contains the current date.
func (s *RentalService) List(p search.Params) ([]models.Rental, dto.Pagination, error) {
	page, limit := search.NormalizePage(p.Page, p.Limit)

	q := s.db.Model(&models.Rental{}).
		Scopes(search.ActiveOnly, search.RentalAvailable(s.now()))
	q = rentalSchema.Apply(q, p)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, err
	}

	var rentals []models.Rental
	err := q.Order(rentalSchema.OrderClause(p.Sort, p.Order)).
		Limit(limit).Offset(search.Offset(page, limit)).
		Find(&rentals).Error
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	for i := range rentals {
		normalizeRental(&rentals[i])
	}

	return rentals, dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: search.TotalPages(total, limit),
	}, nil
}

// Get gates on is_active only; the response carries the derived availability
// so clients can show a booked-out rental's detail page.
func (s *RentalService) Get(id uuid.UUID) (*models.Rental, error) {
	var rental models.Rental
	if err := s.db.Scopes(search.ActiveOnly).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("rental")
		}
		return nil, err
	}
	normalizeRental(&rental)
	rental.IsAvailable = rental.AvailableNow(s.now())

	var owner models.User
	if err := s.db.First(&owner, "id = ?", rental.UserID).Error; err == nil {
		rental.Owner = owner.Summary()
	}

	if err := s.db.Model(&models.Rental{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		slog.Error("failed to increment view counter", "action", "rental_view", "error", err)
	}

	return &rental, nil
}

func (s *RentalService) Create(userID uuid.UUID, req *dto.CreateRentalRequest) (*models.Rental, error) {
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
	if req.DailyRate == 0 {
		missing = append(missing, "daily_rate")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if req.AvailableFrom.IsZero() {
		missing = append(missing, "available_from")
	}
	if req.AvailableUntil.IsZero() {
		missing = append(missing, "available_until")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingFields(missing...)
	}
	if req.AvailableUntil.Before(req.AvailableFrom) {
		return nil, apperrors.Validation("available_until must not precede available_from")
	}

	minDays := req.MinRentalDays
	if minDays < 1 {
		minDays = 1
	}

	rental := models.Rental{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		Make:              req.Make,
		Model:             req.Model,
		Year:              req.Year,
		DailyRate:         req.DailyRate,
		WeeklyRate:        req.WeeklyRate,
		Deposit:           req.Deposit,
		MinRentalDays:     minDays,
		MaxRentalDays:     req.MaxRentalDays,
		Seats:             req.Seats,
		Transmission:      req.Transmission,
		FuelType:          req.FuelType,
		Location:          req.Location,
		AvailableFrom:     req.AvailableFrom,
		AvailableUntil:    req.AvailableUntil,
		IsAvailable:       true,
		DeliveryAvailable: req.DeliveryAvailable,
		InsuranceIncluded: req.InsuranceIncluded,
		Features:          models.EncodeStringArray(req.Features),
		Images:            models.EncodeStringArray(req.Images),
		IncludedItems:     models.EncodeStringArray(req.IncludedItems),
		PickupLocations:   models.EncodeStringArray(req.PickupLocations),
		IsActive:          true,
	}

	if err := s.db.Create(&rental).Error; err != nil {
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}

	normalizeRental(&rental)
	return &rental, nil
}

func (s *RentalService) Update(id, userID uuid.UUID, req *dto.UpdateRentalRequest) (*models.Rental, error) {
	var rental models.Rental
	if err := s.db.Scopes(search.ActiveOnly).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("rental")
		}
		return nil, err
	}
	if rental.UserID != userID {
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
	if req.DailyRate != nil {
		updates["daily_rate"] = *req.DailyRate
	}
	if req.WeeklyRate != nil {
		updates["weekly_rate"] = *req.WeeklyRate
	}
	if req.Deposit != nil {
		updates["deposit"] = *req.Deposit
	}
	if req.MinRentalDays != nil {
		updates["min_rental_days"] = *req.MinRentalDays
	}
	if req.MaxRentalDays != nil {
		updates["max_rental_days"] = *req.MaxRentalDays
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.AvailableFrom != nil {
		updates["available_from"] = *req.AvailableFrom
	}
	if req.AvailableUntil != nil {
		updates["available_until"] = *req.AvailableUntil
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.DeliveryAvailable != nil {
		updates["delivery_available"] = *req.DeliveryAvailable
	}
	if req.InsuranceIncluded != nil {
		updates["insurance_included"] = *req.InsuranceIncluded
	}
	if req.Features != nil {
		updates["features"] = models.EncodeStringArray(*req.Features)
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringArray(*req.Images)
	}
	if req.IncludedItems != nil {
		updates["included_items"] = models.EncodeStringArray(*req.IncludedItems)
	}
	if req.PickupLocations != nil {
		updates["pickup_locations"] = models.EncodeStringArray(*req.PickupLocations)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&rental).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update rental: %w", err)
		}
	}

	normalizeRental(&rental)
	return &rental, nil
}

func (s *RentalService) Delete(id, userID uuid.UUID) error {
	var rental models.Rental
	if err := s.db.Scopes(search.ActiveOnly).First(&rental, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("rental")
		}
		return err
	}
	if rental.UserID != userID {
		return apperrors.Forbidden("you do not own this listing")
	}

	return s.db.Model(&rental).Update("is_active", false).Error
}

func normalizeRental(r *models.Rental) {
	models.NormalizeArray(&r.Features)
	models.NormalizeImages(&r.Images)
	models.NormalizeArray(&r.IncludedItems)
	models.NormalizeArray(&r.PickupLocations)
}
