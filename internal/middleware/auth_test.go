package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/auth"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/otoarena/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "middleware-test-secret-with-length"}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// identityEcho responds with whatever identity the middleware chain left in
// the request context.
func identityEcho(c *fiber.Ctx) error {
	id := CurrentIdentity(c)
	return c.JSON(fiber.Map{"anonymous": id.Anonymous, "email": id.Email})
}

func decodeBody(t *testing.T, body io.Reader, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestCurrentIdentityDefaultsToAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/", identityEcho)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var body struct {
		Anonymous bool `json:"anonymous"`
	}
	decodeBody(t, resp.Body, &body)
	assert.True(t, body.Anonymous)
}

func TestJWTProtectedRejectsMissingToken(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/", JWTProtected(cfg), identityEcho)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestJWTProtectedDistinguishesExpired(t *testing.T) {
	cfg := testConfig()
	app := fiber.New()
	app.Get("/", JWTProtected(cfg), identityEcho)

	expired, err := auth.NewAccessToken(cfg.JWTSecret, &models.User{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Unauthorized: token expired", body.Message)
}

func TestLoadUserRejectsRefreshToken(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	app := fiber.New()
	app.Get("/", JWTProtected(cfg), LoadUser(db), identityEcho)

	refresh, err := auth.NewRefreshToken(cfg.JWTSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// The type marker must be checked before any user lookup.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadUserRejectsDeactivatedUser(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)
	userID := uuid.New()

	token, err := auth.NewAccessToken(cfg.JWTSecret, &models.User{ID: userID}, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active"}).
			AddRow(userID.String(), false))

	app := fiber.New()
	app.Get("/", JWTProtected(cfg), LoadUser(db), identityEcho)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "Unauthorized: user not found or deactivated", body.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadUserAttachesIdentity(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)
	userID := uuid.New()

	token, err := auth.NewAccessToken(cfg.JWTSecret, &models.User{ID: userID, Email: "seller@example.com"}, time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_active"}).
			AddRow(userID.String(), "seller@example.com", true))

	app := fiber.New()
	app.Get("/", JWTProtected(cfg), LoadUser(db), identityEcho)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Anonymous bool   `json:"anonymous"`
		Email     string `json:"email"`
	}
	decodeBody(t, resp.Body, &body)
	assert.False(t, body.Anonymous)
	assert.Equal(t, "seller@example.com", body.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// OptionalAuth never fails; bad or absent tokens just yield the anonymous
// identity.
func TestOptionalAuthNeverFails(t *testing.T) {
	cfg := testConfig()
	db, mock := newMockDB(t)

	app := fiber.New()
	app.Get("/", OptionalAuth(db, cfg), identityEcho)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			var body struct {
				Anonymous bool `json:"anonymous"`
			}
			decodeBody(t, resp.Body, &body)
			assert.True(t, body.Anonymous)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireSuperStaff(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", func(c *fiber.Ctx) error {
		c.Locals(staffKey, StaffIdentity{ID: uuid.New(), IsSuperStaff: false})
		return c.Next()
	}, RequireSuperStaff(), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}
