package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddUnknownItemType(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	_, err := svc.Add(uuid.New(), &dto.AddFavoriteRequest{
		ItemType: "rental",
		ItemID:   uuid.New().String(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteAddInvalidItemID(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	_, err := svc.Add(uuid.New(), &dto.AddFavoriteRequest{
		ItemType: "vehicle",
		ItemID:   "not-a-uuid",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteAddMissingItem(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "parts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Add(uuid.New(), &dto.AddFavoriteRequest{
		ItemType: "part",
		ItemID:   uuid.New().String(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "part not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteAddDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	userID := uuid.New()
	itemID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "vehicles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "item_type", "item_id"}).
			AddRow(uuid.New().String(), userID.String(), "vehicle", itemID.String()))

	_, err := svc.Add(userID, &dto.AddFavoriteRequest{
		ItemType: "vehicle",
		ItemID:   itemID.String(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.Equal(t, "already in favorites", err.Error())

	// Duplicate detection must stop before INSERT.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteAddLookupErrorSurfaced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	itemID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "vehicles"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "favorites"`).
		WillReturnError(assert.AnError)

	_, err := svc.Add(uuid.New(), &dto.AddFavoriteRequest{
		ItemType: "vehicle",
		ItemID:   itemID.String(),
	})
	require.ErrorIs(t, err, assert.AnError)

	// A failed duplicate lookup must not fall through to the INSERT.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveReturnsRecord(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	userID := uuid.New()
	itemID := uuid.New()
	favoriteID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "item_type", "item_id"}).
			AddRow(favoriteID.String(), userID.String(), "part", itemID.String()))
	mock.ExpectExec(`DELETE FROM "favorites"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "parts" SET "favorites_count"=GREATEST`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	favorite, err := svc.Remove(userID, "part", itemID)
	require.NoError(t, err)
	assert.Equal(t, favoriteID, favorite.ID)
	assert.Equal(t, "part", favorite.ItemType)
	assert.Equal(t, itemID, favorite.ItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Remove(uuid.New(), "vehicle", uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveUnknownItemType(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	_, err := svc.Remove(uuid.New(), "garage", uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := svc.List(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, resp.Favorites)
	assert.Empty(t, resp.Counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
