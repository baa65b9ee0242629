package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/otoarena/backend/internal/apperrors"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, method, target string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp, envelope
}

func TestFailStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.Validation("bad input"), 400},
		{"unauthorized", apperrors.Unauthorized("nope"), 401},
		{"forbidden", apperrors.Forbidden("not yours"), 403},
		{"not found", apperrors.NotFound("vehicle"), 404},
		{"conflict", apperrors.Conflict("duplicate"), 409},
		{"internal", errors.New("db exploded"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := responder{cfg: &config.Config{AppEnv: "development"}}
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return r.fail(c, tc.err)
			})

			resp, envelope := doRequest(t, app, "GET", "/boom")
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)
		})
	}
}

// Internal error detail is echoed in development and replaced in production;
// client errors keep their message either way.
func TestFailProductionHidesInternalDetail(t *testing.T) {
	dev := responder{cfg: &config.Config{AppEnv: "development"}}
	prod := responder{cfg: &config.Config{AppEnv: "production"}}

	app := fiber.New()
	app.Get("/dev", func(c *fiber.Ctx) error {
		return dev.fail(c, errors.New("password column missing"))
	})
	app.Get("/prod", func(c *fiber.Ctx) error {
		return prod.fail(c, errors.New("password column missing"))
	})
	app.Get("/prod-client", func(c *fiber.Ctx) error {
		return prod.fail(c, apperrors.NotFound("part"))
	})

	_, envelope := doRequest(t, app, "GET", "/dev")
	assert.Equal(t, "password column missing", envelope.Message)

	_, envelope = doRequest(t, app, "GET", "/prod")
	assert.Equal(t, "internal server error", envelope.Message)

	_, envelope = doRequest(t, app, "GET", "/prod-client")
	assert.Equal(t, "part not found", envelope.Message)
}

func TestParamUUIDRejectsGarbage(t *testing.T) {
	r := responder{cfg: &config.Config{}}
	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := paramUUID(c, "id")
		if err != nil {
			return r.fail(c, err)
		}
		return r.success(c, id)
	})

	resp, envelope := doRequest(t, app, "GET", "/items/not-a-uuid")
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "invalid id", envelope.Message)

	resp, _ = doRequest(t, app, "GET", "/items/7a9d52f5-93de-4d36-9ef9-fc7e7e3a60c1")
	assert.Equal(t, 200, resp.StatusCode)
}

func TestListingParamsDefaults(t *testing.T) {
	app := fiber.New()
	var got struct {
		page, limit  int
		search, sort string
		location     string
	}
	app.Get("/listings", func(c *fiber.Ctx) error {
		p := listingParams(c)
		got.page, got.limit = p.Page, p.Limit
		got.search, got.sort = p.Search, p.Sort
		got.location = p.Get("location")
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/listings?search=%20bmw%20&location=Ankara&page=3&limit=5&sort=price", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, got.page)
	assert.Equal(t, 5, got.limit)
	assert.Equal(t, "bmw", got.search)
	assert.Equal(t, "price", got.sort)
	assert.Equal(t, "Ankara", got.location)
}
