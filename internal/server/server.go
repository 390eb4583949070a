// Package server exposes route searches over a loaded map as a JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/gridmap"
)

type point = [2]int

type pathRequest struct {
	Start point `json:"start"`
	Goal  point `json:"goal"`
	Trace bool  `json:"trace"`
}

type stepView struct {
	Index   int     `json:"index"`
	Current point   `json:"current"`
	Cost    float64 `json:"cost"`
	Opened  []point `json:"opened,omitempty"`
	Open    int     `json:"open"`
}

type pathResponse struct {
	Path     []point    `json:"path"`
	Cost     float64    `json:"cost"`
	Expanded int        `json:"expanded"`
	Steps    []stepView `json:"steps,omitempty"`
}

type mapResponse struct {
	Width   int     `json:"w"`
	Height  int     `json:"h"`
	Blocked []point `json:"blocked"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server answers route queries against a single read-only map.
type Server struct {
	Map     *gridmap.Map
	Logger  *slog.Logger
	Metrics *Metrics
}

func New(m *gridmap.Map, logger *slog.Logger) *Server {
	return &Server{Map: m, Logger: logger, Metrics: NewMetrics()}
}

// Handler returns the router for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/map", s.handleMap)
	r.Post("/path", s.handlePath)
	r.Handle("/metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	resp := mapResponse{
		Width:   s.Map.Columns(),
		Height:  s.Map.Rows(),
		Blocked: toPoints(s.Map.Blocked()),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Logger.Warn("path: invalid request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	start := gridpath.NewCoords(req.Start[0], req.Start[1])
	goal := gridpath.NewCoords(req.Goal[0], req.Goal[1])
	for _, c := range []gridpath.Coords{start, goal} {
		if !s.Map.InBounds(c) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("%v is outside the map", c)})
			return
		}
	}

	options := []gridpath.Option{gridpath.WithLogger(s.Logger)}
	var recorder gridpath.Recorder
	if req.Trace {
		options = append(options, recorder.Option())
	}

	result, err := gridpath.Search(start, goal, s.Map, options...)
	s.Metrics.observe(result.Found, result.ExpandedNodes)
	if errors.Is(err, gridpath.ErrGoalUnreachable) {
		s.Logger.Info("path: goal unreachable", "start", start, "goal", goal)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.Logger.Error("path: search failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := pathResponse{
		Path:     toPoints(result.Path),
		Cost:     result.TotalCost,
		Expanded: result.ExpandedNodes,
	}
	for _, step := range recorder.Steps {
		resp.Steps = append(resp.Steps, stepView{
			Index:   step.Index,
			Current: toPoint(step.Current),
			Cost:    step.CostSoFar,
			Opened:  toPoints(step.Opened),
			Open:    step.OpenCount,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func toPoint(c gridpath.Coords) point { return point{c.X, c.Y} }

func toPoints(cs []gridpath.Coords) []point {
	res := make([]point, 0, len(cs))
	for _, c := range cs {
		res = append(res, toPoint(c))
	}
	return res
}
