package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/stuffscore/pkg/logger"
)

// PitcherHandler serves per-pitcher views.
type PitcherHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewPitcherHandler creates a new pitcher handler.
func NewPitcherHandler(deps Dependencies, l logger.Logger) *PitcherHandler {
	return &PitcherHandler{deps: deps, logger: l}
}

// HandleSummary handles GET /pitchers/{id}/summary. Unknown pitchers get an
// empty list.
func (h *PitcherHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	id, err := pitcherID(r)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}

	rows, err := h.deps.Summary(r.Context(), id)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleHighlights handles GET /pitchers/{id}/highlights.
func (h *PitcherHandler) HandleHighlights(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_highlights"
	id, err := pitcherID(r)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}

	hl, err := h.deps.Highlights(r.Context(), id)
	if err != nil {
		fail(r.Context(), h.logger, w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, hl)
}

// pitcherID parses the {id} path value. Errors carry ErrBadRequest.
func pitcherID(r *http.Request) (int64, error) {
	const op = "api.pitcher_id"
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, WrapKind(op, ErrBadRequest, fmt.Errorf("invalid pitcher id %q", raw))
	}
	if id <= 0 {
		return 0, NewKind(op, ErrBadRequest)
	}
	return id, nil
}
