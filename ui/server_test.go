package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"varlens/internal/charts"
	"varlens/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := NewServer()
	err := s.Initialize(testkit.SmallSeason(), "synthetic", charts.DefaultChartConfig())
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Arsenal")
	assert.Contains(t, body, "Most VAR-favored")
	assert.Contains(t, body, "/charts/bias")
	assert.Contains(t, body, "/export.xlsx")
}

func TestTeamPage(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/teams/Arsenal")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Arsenal")
	assert.Contains(t, body, "Bias score")
	assert.Contains(t, body, "30.0%")
}

func TestTeamPageCaseInsensitive(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/teams/arsenal")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Arsenal")
}

func TestTeamPageNotFound(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/teams/Leeds")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBriefPage(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/brief")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "VAR Season Brief")
	assert.Contains(t, body, "<table>")
}

func TestChartPages(t *testing.T) {
	s := newTestServer(t)

	paths := []string{
		"/charts/bias",
		"/charts/impact",
		"/charts/scatter",
		"/charts/heatmap",
		"/charts/correlation",
		"/charts/box",
		"/charts/team/Arsenal",
	}
	for _, path := range paths {
		w := get(t, s, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "echarts", path)
	}
}

func TestExportWorkbook(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/export.xlsx")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheet")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "var_season_metrics.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/api/status")

	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "loaded", status["status"])
	assert.Equal(t, "synthetic", status["source"])
	assert.EqualValues(t, 4, status["teams"])
	assert.NotEmpty(t, status["dataset_id"])
}

func TestTeamsJSON(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/api/teams")

	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Teams []string `json:"teams"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Teams, 4)
	assert.Equal(t, 4, payload.Count)
	assert.Equal(t, "Arsenal", payload.Teams[0])
}

func TestMetricsJSON(t *testing.T) {
	s := newTestServer(t)

	w := get(t, s, "/api/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	var metrics []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	require.Len(t, metrics, 4)
	assert.InDelta(t, 0.3, metrics[0]["bias_score"].(float64), 1e-9)
	assert.InDelta(t, 7.0, metrics[0]["complexity_index"].(float64), 1e-9)
}
