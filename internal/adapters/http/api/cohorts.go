package api

import (
	"net/http"

	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/pkg/logger"
)

// CohortHandler serves rosters and stuff score leaderboards.
type CohortHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewCohortHandler creates a new cohort handler.
func NewCohortHandler(deps Dependencies, l logger.Logger) *CohortHandler {
	return &CohortHandler{deps: deps, logger: l}
}

// HandleListCohorts handles GET /cohorts.
func (h *CohortHandler) HandleListCohorts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Cohorts())
}

// Roster returns a handler listing the pitchers of a cohort. An empty fixed
// cohort reads the {cohort} path value instead.
func (h *CohortHandler) Roster(fixed string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "api.get_roster"
		cohort := cohortName(r, fixed)

		pitchers, err := h.deps.Roster(r.Context(), cohort)
		if err != nil {
			fail(r.Context(), h.logger, w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, pitchers)
	}
}

// StuffScore returns a handler computing the leaderboard of a cohort. A
// cohort that cannot be scored answers 200 with an error payload.
func (h *CohortHandler) StuffScore(fixed string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "api.get_stuff_score"
		cohort := cohortName(r, fixed)

		lb, err := h.deps.StuffScore(r.Context(), cohort)
		if isInsufficient(err) {
			writeJSON(w, http.StatusOK, types.ErrorPayload{Error: insufficientDataMessage})
			return
		}
		if err != nil {
			fail(r.Context(), h.logger, w, Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, lb)
	}
}

func cohortName(r *http.Request, fixed string) string {
	if fixed != "" {
		return fixed
	}
	return r.PathValue("cohort")
}
