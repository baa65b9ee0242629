package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "unit-test-secret-with-enough-length",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestRegisterMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Email: "only@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "password")
	assert.Contains(t, err.Error(), "first_name")
	assert.Contains(t, err.Error(), "last_name")
	assert.NotContains(t, err.Error(), "email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterShortPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "a@example.com", Password: "short", FirstName: "A", LastName: "B",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterBadAccountType(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "a@example.com", Password: "long-enough", FirstName: "A", LastName: "B",
		AccountType: "dealer",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(uuid.New(), models.AccountTypePersonal, ""))

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "user@example.com", Password: "long-enough", FirstName: "A", LastName: "B",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An unknown email and a wrong password must be indistinguishable.
func TestLoginUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.Equal(t, "invalid email or password", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	hash, err := auth.HashPassword("the-real-password")
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(userRow(uuid.New(), models.AccountTypePersonal, hash))

	_, err = svc.Login(&dto.LoginRequest{Email: "user@example.com", Password: "a-wrong-guess"})
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshRejectsGarbage(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not.a.token"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An access token presented on the refresh path must be rejected by the type
// marker before any DB lookup.
func TestRefreshRejectsAccessToken(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)

	accessToken, err := auth.NewAccessToken(cfg.JWTSecret, &models.User{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: accessToken})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A syntactically valid refresh token that was never stored (or was revoked)
// must fail the hash lookup.
func TestRefreshRejectsRevokedToken(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg)

	refreshToken, err := auth.NewRefreshToken(cfg.JWTSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "refresh_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
	assert.NoError(t, mock.ExpectationsWereMet())
}
