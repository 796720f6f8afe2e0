package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sevens-series/tournament-api/internal/platform/logging"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

type Handler struct {
	tournamentService  *usecase.TournamentService
	scheduleService    *usecase.ScheduleService
	standingsService   *usecase.StandingsService
	leaderboardService *usecase.LeaderboardService
	syncService        *usecase.SyncService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	scheduleService *usecase.ScheduleService,
	standingsService *usecase.StandingsService,
	leaderboardService *usecase.LeaderboardService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tournamentService:  tournamentService,
		scheduleService:    scheduleService,
		standingsService:   standingsService,
		leaderboardService: leaderboardService,
		syncService:        syncService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, item := range tournaments {
		items = append(items, tournamentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
