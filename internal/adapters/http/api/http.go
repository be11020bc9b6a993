// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/stuffscore/internal/adapters/fetch"
	"github.com/okian/stuffscore/internal/adapters/repository"
	service "github.com/okian/stuffscore/internal/app"
	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/internal/domain/scoring"
	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Cohorts() []string
	Roster(ctx context.Context, cohort string) ([]pitch.Pitcher, error)
	Summary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error)
	Highlights(ctx context.Context, pitcherID int64) (pitch.Highlights, error)
	StuffScore(ctx context.Context, cohort string) (types.Leaderboard, error)
}

// insufficientDataMessage is returned with 200 when a cohort cannot be scored.
const insufficientDataMessage = "Insufficient data for Stuff Score calculation"

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	cohortHandler  *CohortHandler
	pitcherHandler *PitcherHandler

	mainCohort  string
	scoreCohort string
	logger      logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMainCohort sets the cohort behind GET /pitchers.
func WithMainCohort(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.mainCohort = name
		}
	}
}

// WithScoreCohort sets the cohort behind GET /free_agents and its stuff score.
func WithScoreCohort(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.scoreCohort = name
		}
	}
}

// WithLogger sets the logger used for server-side failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		mainCohort:  "main",
		scoreCohort: "free_agents",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("api")
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.cohortHandler = NewCohortHandler(deps, s.logger)
	s.pitcherHandler = NewPitcherHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /livez", s.healthHandler.HandleLive)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /pitchers", MetricsMiddleware(s.cohortHandler.Roster(s.mainCohort), "pitchers"))
	mux.HandleFunc("GET /free_agents", MetricsMiddleware(s.cohortHandler.Roster(s.scoreCohort), "free_agents"))
	mux.HandleFunc("GET /free_agents/stuff_score", MetricsMiddleware(s.cohortHandler.StuffScore(s.scoreCohort), "stuff_score"))

	mux.HandleFunc("GET /cohorts", MetricsMiddleware(s.cohortHandler.HandleListCohorts, "cohorts"))
	mux.HandleFunc("GET /cohorts/{cohort}", MetricsMiddleware(s.cohortHandler.Roster(""), "cohort_roster"))
	mux.HandleFunc("GET /cohorts/{cohort}/stuff_score", MetricsMiddleware(s.cohortHandler.StuffScore(""), "cohort_stuff_score"))

	mux.HandleFunc("GET /pitchers/{id}/summary", MetricsMiddleware(s.pitcherHandler.HandleSummary, "pitcher_summary"))
	mux.HandleFunc("GET /pitchers/{id}/highlights", MetricsMiddleware(s.pitcherHandler.HandleHighlights, "pitcher_highlights"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers with code. Server-side failures only carry the status
// text; their cause is logged by fail.
func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil && status < http.StatusInternalServerError {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// classify maps upstream errors to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrUnknownCohort):
		return http.StatusNotFound, "unknown_cohort"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, fetch.ErrFetch):
		return http.StatusInternalServerError, "fetch_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes err with its classified status and logs server-side failures.
func fail(ctx context.Context, log logger.Logger, w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logger.String("code", code), logger.Error(err))
	}
	writeError(w, status, code, err)
}

// isInsufficient reports whether err means the cohort cannot be scored.
func isInsufficient(err error) bool {
	return errors.Is(err, scoring.ErrInsufficientCohort)
}
