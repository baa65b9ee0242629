package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"missing fields", MissingFields("email", "password"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("invalid token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not the owner"), http.StatusForbidden},
		{"not found", NotFound("vehicle"), http.StatusNotFound},
		{"conflict", Conflict("already in favorites"), http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil-ish internal", Wrap(KindInternal, "db down", errors.New("conn refused")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestStatusCodeWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("part"))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestMissingFieldsMessage(t *testing.T) {
	err := MissingFields("title", "make", "model")
	assert.Equal(t, "missing required fields: title, make, model", err.Error())
	assert.Equal(t, []string{"title", "make", "model"}, err.Fields)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("duplicate"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindConflict))
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "rental not found", NotFound("rental").Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("unique constraint")
	err := Wrap(KindConflict, "email already registered", cause)
	assert.ErrorIs(t, err, cause)
}
