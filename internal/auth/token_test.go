package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/otoarena/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-characters"

func testUser() *models.User {
	return &models.User{
		ID:          uuid.New(),
		Email:       "seller@example.com",
		AccountType: models.AccountTypePersonal,
		IsVerified:  true,
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	user := testUser()
	token, err := NewAccessToken(testSecret, user, time.Hour)
	require.NoError(t, err)

	claims, err := ParseTyped(testSecret, token, TokenTypeAccess)
	require.NoError(t, err)

	sub, err := SubjectID(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, TokenTypeAccess, TokenType(claims))
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	userID := uuid.New()
	token, err := NewRefreshToken(testSecret, userID, time.Hour)
	require.NoError(t, err)

	claims, err := ParseTyped(testSecret, token, TokenTypeRefresh)
	require.NoError(t, err)

	sub, err := SubjectID(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, sub)
}

func TestStaffTokenRoundtrip(t *testing.T) {
	staff := &models.StaffUser{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		Role:         "support",
		IsSuperStaff: true,
	}
	token, err := NewStaffToken(testSecret, staff, time.Hour)
	require.NoError(t, err)

	claims, err := ParseTyped(testSecret, token, TokenTypeStaff)
	require.NoError(t, err)
	assert.Equal(t, true, claims["is_super_staff"])
	assert.Equal(t, "support", claims["role"])
}

// Each token type must be rejected on the other types' verification paths.
func TestTokenTypeCrossRejection(t *testing.T) {
	user := testUser()

	access, err := NewAccessToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	refresh, err := NewRefreshToken(testSecret, user.ID, time.Hour)
	require.NoError(t, err)
	staff, err := NewStaffToken(testSecret, &models.StaffUser{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name     string
		token    string
		wantType string
	}{
		{"access as refresh", access, TokenTypeRefresh},
		{"access as staff", access, TokenTypeStaff},
		{"refresh as access", refresh, TokenTypeAccess},
		{"refresh as staff", refresh, TokenTypeStaff},
		{"staff as access", staff, TokenTypeAccess},
		{"staff as refresh", staff, TokenTypeRefresh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTyped(testSecret, tc.token, tc.wantType)
			assert.ErrorIs(t, err, ErrTokenTypeMismatch)
		})
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := NewAccessToken(testSecret, testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestWrongSecret(t *testing.T) {
	token, err := NewAccessToken(testSecret, testUser(), time.Hour)
	require.NoError(t, err)

	_, err = Parse("another-secret-entirely-but-long", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMalformedToken(t *testing.T) {
	_, err := Parse(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// Tokens minted before the type claim existed must keep working as access
// tokens.
func TestMissingTypeDefaultsToAccess(t *testing.T) {
	claims := map[string]interface{}{"sub": uuid.New().String()}
	assert.Equal(t, TokenTypeAccess, TokenType(claims))
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	c := HashToken("another-refresh-token")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
