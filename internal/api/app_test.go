package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"varlens/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(testkit.SmallSeason(), "test")
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, float64(4), payload["teams"])
}

func TestTeamsEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/teams")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Teams []string `json:"teams"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 4, payload.Count)
	assert.Equal(t, "Arsenal", payload.Teams[0], "row order preserved")
}

func TestTeamEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/teams/arsenal")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Arsenal", payload["team"])
	assert.InDelta(t, 0.3, payload["bias_score"].(float64), 1e-9)
	assert.Equal(t, 7.0, payload["complexity_index"])
}

func TestTeamEndpointNotFound(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/teams/Leeds")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 4)
	assert.Equal(t, "Fulham", payload[1]["team"])
	assert.Equal(t, 0.0, payload[1]["bias_score"])
}

func TestProfileEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/profile")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload)
	assert.Equal(t, "total_overturns", payload[0]["name"])
}

func TestCorrelationEndpoint(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/correlation")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Columns []string    `json:"columns"`
		Matrix  [][]float64 `json:"matrix"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload.Matrix, len(payload.Columns))
}
