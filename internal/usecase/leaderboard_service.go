package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

type LeaderboardService struct {
	tournamentRepo tournament.Repository
	statsRepo      playerstats.Repository
}

func NewLeaderboardService(
	tournamentRepo tournament.Repository,
	statsRepo playerstats.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		tournamentRepo: tournamentRepo,
		statsRepo:      statsRepo,
	}
}

func (s *LeaderboardService) GetLeaderboard(
	ctx context.Context,
	tournamentID string,
	category playerstats.Category,
	teamRef string,
	page int,
) (playerstats.Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return playerstats.Leaderboard{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if !playerstats.ValidCategory(category) {
		return playerstats.Leaderboard{}, fmt.Errorf("%w: unknown leaderboard category=%s", ErrInvalidInput, category)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return playerstats.Leaderboard{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return playerstats.Leaderboard{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	teams, err := s.statsRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return playerstats.Leaderboard{}, fmt.Errorf("list player stats: %w", err)
	}

	// Team filters arrive as feed refs on some pages and bare ids on others.
	return playerstats.BuildLeaderboard(teams, category, match.NormalizeRef(strings.TrimSpace(teamRef)), page), nil
}
