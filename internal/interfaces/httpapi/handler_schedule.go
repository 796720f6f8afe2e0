package httpapi

import "net/http"

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	days, err := h.scheduleService.GetSchedule(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dayGroupsToDTO(days))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	stage := r.URL.Query().Get("stage")
	matches, err := h.scheduleService.GetMatches(ctx, tournamentID, stage)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "tournament_id", tournamentID, "stage", stage, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	matchID := r.PathValue("matchID")
	found, err := h.scheduleService.GetMatch(ctx, tournamentID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "tournament_id", tournamentID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(found))
}
