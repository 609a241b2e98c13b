// Package api exposes the computed season table as a JSON API, served
// standalone by cmd/apiserver.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"varlens/domain/varstats"
	"varlens/internal/profiling"
)

// App represents the JSON API application
type App struct {
	router   *chi.Mux
	metrics  []varstats.TeamMetrics
	profiles []profiling.ColumnProfile
	corr     profiling.CorrelationMatrix
	source   string
}

// NewApp builds the API over an already-loaded season table. Profiles and
// the correlation matrix are computed once up front; the table is immutable.
func NewApp(records []varstats.TeamRecord, source string) (*App, error) {
	metrics := varstats.Compute(records, varstats.DefaultWeights())
	profiles, err := profiling.ProfileColumns(metrics)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:   chi.NewRouter(),
		metrics:  metrics,
		profiles: profiles,
		corr:     profiling.Correlate(metrics),
		source:   source,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// Router returns the HTTP handler for mounting or testing.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the API server on the given address.
func (a *App) Start(addr string) error {
	log.Printf("[API] listening on %s (%d teams, source=%s)", addr, len(a.metrics), a.source)
	return http.ListenAndServe(addr, a.router)
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes wires the API endpoints
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/teams", a.handleTeams)
		r.Get("/teams/{team}", a.handleTeam)
		r.Get("/metrics", a.handleMetrics)
		r.Get("/profile", a.handleProfile)
		r.Get("/correlation", a.handleCorrelation)
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"teams":  len(a.metrics),
		"source": a.source,
	})
}

func (a *App) handleTeams(w http.ResponseWriter, r *http.Request) {
	teams := make([]string, len(a.metrics))
	for i, m := range a.metrics {
		teams[i] = m.Team
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

func (a *App) handleTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "team")
	for _, m := range a.metrics {
		if strings.EqualFold(m.Team, name) {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "team not found"})
}

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.metrics)
}

func (a *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.profiles)
}

func (a *App) handleCorrelation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.corr)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}
