package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-tournament/internal/domain/match"
	"github.com/riskibarqy/football-tournament/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2.0", body["apiVersion"])
	assert.Contains(t, body, "data")
	assert.NotContains(t, body, "error")
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Status)
	require.Len(t, env.Error.Errors, 1)
	assert.Equal(t, errorDomain, env.Error.Errors[0].Domain)
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: connection refused to 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid", err: usecase.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "domain validation", err: fmt.Errorf("wrap: %w", match.ErrInvalidScore), status: http.StatusBadRequest},
		{name: "not found", err: usecase.ErrNotFound, status: http.StatusNotFound},
		{name: "unauthorized", err: usecase.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "already completed", err: usecase.ErrAlreadyCompleted, status: http.StatusConflict},
		{name: "conflict", err: usecase.ErrConflict, status: http.StatusConflict},
		{name: "rate limited", err: errRateLimited, status: http.StatusTooManyRequests},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, status: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, mapError(tc.err).HTTPStatus)
		})
	}

	assert.Equal(t, "alreadyCompleted", mapError(usecase.ErrAlreadyCompleted).Reason)
}
