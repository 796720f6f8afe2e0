package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

type leaderboardQuery struct {
	Category string `validate:"required,oneof=scorers playmakers defenders goalkeepers"`
	Team     string `validate:"omitempty,max=64"`
	Page     int    `validate:"min=0"`
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")

	query := leaderboardQuery{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Team:     strings.TrimSpace(r.URL.Query().Get("team")),
	}
	if query.Category == "" {
		query.Category = string(playerstats.CategoryScorers)
	}
	if rawPage := strings.TrimSpace(r.URL.Query().Get("page")); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: page must be a number", usecase.ErrInvalidInput))
			return
		}
		query.Page = page
	}
	if err := h.validator.Struct(query); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(ctx, tournamentID,
		playerstats.Category(query.Category), query.Team, query.Page)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed",
			"tournament_id", tournamentID,
			"category", query.Category,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}
