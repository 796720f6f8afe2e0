package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard", handler.GetLeaderboard)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncJob)))
}
