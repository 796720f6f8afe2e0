package httpapi

import "net/http"

// RunSyncJob refreshes every tournament from the CMS and the results feed.
// The scheduler hits this endpoint on a short interval during match days.
func (h *Handler) RunSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncJob")
	defer span.End()

	report, err := h.syncService.SyncAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "sync job finished",
		"tournaments", report.Tournaments,
		"matches", report.Matches,
		"failures", len(report.Failures),
	)
	writeSuccess(ctx, w, http.StatusOK, report)
}
