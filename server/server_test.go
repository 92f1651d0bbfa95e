package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/scenario"
	"github.com/katalvlaran/gridstar/server"
)

func newServer(t *testing.T, opts ...server.Option) *server.Server {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	return server.New(append([]server.Option{
		server.WithLogger(quiet),
		server.WithRegistry(prometheus.NewRegistry()),
	}, opts...)...)
}

func post(t *testing.T, h http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestSolvePath_Found(t *testing.T) {
	s := newServer(t)
	rec := post(t, s, "/v1/paths", `{"grid":[[1,1],[1,1]],"start":[0,0],"goal":[1,1]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.PathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, astar.StatusFound, resp.Status)
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}}, resp.Path)
	assert.Equal(t, 1.0, resp.Cost)
	assert.Equal(t, 1, resp.Expanded)

	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, resp.ID, rec.Header().Get("X-Request-ID"))
}

func TestSolvePath_OutcomesAreNotErrors(t *testing.T) {
	s := newServer(t)
	rec := post(t, s, "/v1/paths", `{"grid":[[1,0,1]],"start":[0,0],"goal":[0,5],"conn":"conn4"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"invalid_goal"`)
	assert.Contains(t, rec.Body.String(), `"path":[]`)

	rec = post(t, s, "/v1/paths", `{"grid":[[1,0,1]],"start":[0,0],"goal":[0,2],"heuristic":"zero"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"not_found"`)
}

func TestSolvePath_BadRequests(t *testing.T) {
	s := newServer(t, server.WithMaxCells(4))
	cases := []struct {
		name string
		body string
		code int
	}{
		{"Malformed", `{"grid":`, http.StatusBadRequest},
		{"UnknownField", `{"grid":[[1]],"start":[0,0],"goal":[0,0],"size":3}`, http.StatusBadRequest},
		{"EmptyGrid", `{"grid":[],"start":[0,0],"goal":[0,0]}`, http.StatusBadRequest},
		{"Ragged", `{"grid":[[1,1],[1]],"start":[0,0],"goal":[0,0]}`, http.StatusBadRequest},
		{"UnknownHeuristic", `{"grid":[[1]],"start":[0,0],"goal":[0,0],"heuristic":"manhattan"}`, http.StatusBadRequest},
		{"UnknownConn", `{"grid":[[1]],"start":[0,0],"goal":[0,0],"conn":"conn6"}`, http.StatusBadRequest},
		{"ShortCoordinate", `{"grid":[[1,1]],"start":[0,0],"goal":[1]}`, http.StatusBadRequest},
		{"LongCoordinate", `{"grid":[[1,1]],"start":[0,0,7],"goal":[0,1]}`, http.StatusBadRequest},
		{"MissingGoal", `{"grid":[[1,1]],"start":[0,0]}`, http.StatusBadRequest},
		{"NullStart", `{"grid":[[1,1]],"start":null,"goal":[0,1]}`, http.StatusBadRequest},
		{"TooLarge", `{"grid":[[1,1,1],[1,1,1]],"start":[0,0],"goal":[0,0]}`, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s, "/v1/paths", tc.body)
			assert.Equal(t, tc.code, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, rec.Header().Get("X-Request-ID"), body["id"])
		})
	}
}

func TestSolvePath_BadCoordinateMessage(t *testing.T) {
	s := newServer(t)
	for _, body := range []string{
		`{"grid":[[1,1],[1,1]],"start":[0,0],"goal":[1]}`,
		`{"grid":[[1,1],[1,1]],"goal":[1,1]}`,
	} {
		rec := post(t, s, "/v1/paths", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), scenario.ErrBadCoordinate.Error(), body)
	}
}

func TestSolvePath_GeoJSON(t *testing.T) {
	s := newServer(t)
	rec := post(t, s, "/v1/paths?format=geojson", `{"grid":[[1,1,1]],"start":[0,0],"goal":[0,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"FeatureCollection"`)
	assert.Contains(t, rec.Body.String(), `"LineString"`)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/paths", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newServer(t)
	post(t, s, "/v1/paths", `{"grid":[[1,1]],"start":[0,0],"goal":[0,1]}`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(rec.Body)
	assert.Contains(t, buf.String(), `gridstar_searches_total{status="found"} 1`)
	assert.Contains(t, buf.String(), `gridstar_searches_total{status="not_found"} 0`)
}
