package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridstar/astar"
	"github.com/katalvlaran/gridstar/render"
	"github.com/katalvlaran/gridstar/scenario"
)

// ErrGridTooLarge indicates a grid over the configured cell limit.
var ErrGridTooLarge = errors.New("server: grid exceeds cell limit")

// PathRequest is the body of POST /v1/paths.
type PathRequest struct {
	Grid      [][]int         `json:"grid"`
	Start     *scenario.Coord `json:"start"`
	Goal      *scenario.Coord `json:"goal"`
	Heuristic string          `json:"heuristic,omitempty"`
	Conn      string          `json:"conn,omitempty"`
}

// PathResponse is the JSON answer to POST /v1/paths.
type PathResponse struct {
	ID       string       `json:"id"`
	Status   astar.Status `json:"status"`
	Path     [][2]int     `json:"path"`
	Cost     float64      `json:"cost"`
	Expanded int          `json:"expanded"`
}

type errorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// scenario converts req, rejecting a missing start or goal.
func (req PathRequest) scenario() (*scenario.Scenario, error) {
	switch {
	case req.Start == nil:
		return nil, fmt.Errorf("%w: start is missing", scenario.ErrBadCoordinate)
	case req.Goal == nil:
		return nil, fmt.Errorf("%w: goal is missing", scenario.ErrBadCoordinate)
	}

	return &scenario.Scenario{
		Conn:      req.Conn,
		Heuristic: req.Heuristic,
		Grid:      req.Grid,
		Start:     *req.Start,
		Goal:      *req.Goal,
	}, nil
}

func (s *Server) solvePath(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set("X-Request-ID", id)

	var req PathRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, id, fmt.Errorf("decode request: %w", err))
		return
	}
	cells := 0
	for _, row := range req.Grid {
		cells += len(row)
	}
	if cells > s.maxCells {
		writeError(w, http.StatusRequestEntityTooLarge, id,
			fmt.Errorf("%w: %d > %d", ErrGridTooLarge, cells, s.maxCells))
		return
	}

	sc, err := req.scenario()
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	g, err := sc.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	opts, err := sc.Options()
	if err != nil {
		writeError(w, http.StatusBadRequest, id, err)
		return
	}
	opts = append(opts, astar.WithObserver(s.metrics), astar.WithLogger(s.logger))

	res, err := astar.FindPath(g, sc.Start.Cell(), sc.Goal.Cell(), opts...)
	if err != nil {
		s.logger.Error("server: search failed", slog.String("id", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, id, err)
		return
	}

	if r.URL.Query().Get("format") == "geojson" {
		body, err := render.GeoJSON(g, res)
		if err != nil {
			writeError(w, http.StatusInternalServerError, id, err)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	out := PathResponse{
		ID:       id,
		Status:   res.Status,
		Path:     make([][2]int, 0, len(res.Path)),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, c := range res.Path {
		out.Path = append(out.Path, [2]int{c.Row, c.Col})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, code int, id string, err error) {
	writeJSON(w, code, errorResponse{ID: id, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
