package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalCreateMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRentalService(db)

	_, err := svc.Create(uuid.New(), &dto.CreateRentalRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "daily_rate")
	assert.Contains(t, err.Error(), "available_from")
	assert.Contains(t, err.Error(), "available_until")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalCreateInvertedWindow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRentalService(db)

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(uuid.New(), &dto.CreateRentalRequest{
		Title: "City hatchback", Make: "Fiat", Model: "Egea",
		DailyRate: 45, Location: "Istanbul",
		AvailableFrom:  from,
		AvailableUntil: from.AddDate(0, 0, -7),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The detail view derives availability from the window rather than trusting
// the stored flag alone.
func TestRentalGetDerivesAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRentalService(db)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}

	rentalID := uuid.New()
	ownerID := uuid.New()
	cols := []string{"id", "user_id", "is_active", "is_available", "available_from", "available_until"}

	// Window ended in July, so the August read reports unavailable.
	mock.ExpectQuery(`SELECT (.+) FROM "rentals"`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			rentalID.String(), ownerID.String(), true, true,
			time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ownerID.String()))
	mock.ExpectExec(`UPDATE "rentals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rental, err := svc.Get(rentalID)
	require.NoError(t, err)
	assert.False(t, rental.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalAvailableNow(t *testing.T) {
	base := models.Rental{
		IsActive:       true,
		IsAvailable:    true,
		AvailableFrom:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		AvailableUntil: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	inWindow := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)

	r := base
	assert.True(t, r.AvailableNow(inWindow))
	assert.False(t, r.AvailableNow(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.AvailableNow(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))

	r = base
	r.IsActive = false
	assert.False(t, r.AvailableNow(inWindow))

	r = base
	r.IsAvailable = false
	assert.False(t, r.AvailableNow(inWindow))

	// An open-ended window never expires.
	r = base
	r.AvailableUntil = time.Time{}
	assert.True(t, r.AvailableNow(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}
