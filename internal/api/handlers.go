package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/faithboard/faithboard/internal/render"
	"github.com/faithboard/faithboard/schema"
	"github.com/go-chi/chi/v5"
)

const pngSuffix = ".png"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, schema.ErrorResponse{Error: msg})
}

// serveStats writes the result of load as JSON, or a 500 on failure.
func serveStats[T any](s *Server, w http.ResponseWriter, r *http.Request, load func(context.Context) (T, error)) {
	v, err := load(r.Context())
	if err != nil {
		s.logger.Error("stats failed", "path", r.URL.Path, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.HealthCheck{Status: "ok", Service: ServiceName})
}

func (s *Server) handleBible(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.BibleStats)
}

func (s *Server) handleAnkiToday(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.AnkiToday)
}

func (s *Server) handleAnkiDaily(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.AnkiDaily)
}

func (s *Server) handleAnkiWeekly(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.AnkiWeekly)
}

func (s *Server) handleReferences(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.References)
}

func (s *Server) handleFaithToday(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.FaithToday)
}

func (s *Server) handleFaithDaily(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.FaithDaily)
}

func (s *Server) handleFaithWeekly(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.FaithWeekly)
}

func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.TopPlaces)
}

func (s *Server) handleChurch(w http.ResponseWriter, r *http.Request) {
	serveStats(s, w, r, s.provider.ChurchWeeks)
}

// chartOptions reads view, unit and hide_empty from the query, falling back
// to the server configuration.
func (s *Server) chartOptions(r *http.Request) (dashboard.Options, error) {
	opts := dashboard.Options{}
	if s.cfg != nil {
		opts = dashboard.Options{View: s.cfg.View, Unit: s.cfg.Unit, HideEmpty: s.cfg.HideEmpty}
	}
	q := r.URL.Query()
	if v := strings.ToLower(q.Get("view")); v != "" {
		if _, ok := schema.ValidViewModes[schema.ViewMode(v)]; !ok {
			return opts, fmt.Errorf("invalid view '%s'. must be verses, passages", v)
		}
		opts.View = schema.ViewMode(v)
	}
	if u := strings.ToLower(q.Get("unit")); u != "" {
		if _, ok := schema.ValidTimeUnits[schema.TimeUnit(u)]; !ok {
			return opts, fmt.Errorf("invalid unit '%s'. must be minutes, hours", u)
		}
		opts.Unit = schema.TimeUnit(u)
	}
	switch strings.ToLower(q.Get("hide_empty")) {
	case "":
	case "1", "true", "yes":
		opts.HideEmpty = true
	case "0", "false", "no":
		opts.HideEmpty = false
	default:
		return opts, fmt.Errorf("invalid hide_empty '%s'", q.Get("hide_empty"))
	}
	return opts, nil
}

// handleChart serves the Chart.js configuration of a chart, or its PNG when
// the name ends in ".png". An empty PNG chart answers 204.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "name")
	asPNG := strings.HasSuffix(raw, pngSuffix)
	name, err := faith.ParseChartName(strings.TrimSuffix(raw, pngSuffix))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := s.chartOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := faith.BuildChart(r.Context(), s.provider, name, opts)
	if err != nil {
		s.logger.Error("chart failed", "chart", name, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !asPNG {
		writeJSON(w, http.StatusOK, c.ChartJS())
		return
	}
	if c.Set.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	var buf bytes.Buffer
	if err := render.PNG(&buf, c, render.DefaultWidth, render.DefaultHeight); err != nil {
		s.logger.Error("render failed", "chart", name, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
