package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain error passes through", NewUnauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"wrapped domain error", fmt.Errorf("ctx: %w", NewRosterUnavailable("")), "ROSTER_UNAVAILABLE", http.StatusServiceUnavailable},
		{"fiber error", fiber.NewError(http.StatusBadRequest, "bad"), "VALIDATION_FAILED", http.StatusBadRequest},
		{"no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"anything else", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestRosterUnavailableDetails(t *testing.T) {
	de := ToDomainError(NewRosterUnavailable("HTTP 404 Not Found"))
	assert.Equal(t, "HTTP 404 Not Found", de.Details["reason"])
}
