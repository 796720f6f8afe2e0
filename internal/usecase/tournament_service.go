package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo}
}

// ListTournaments returns all events, newest season first with the current
// one leading.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsCurrent != items[j].IsCurrent {
			return items[i].IsCurrent
		}
		if items[i].Season != items[j].Season {
			return items[i].Season > items[j].Season
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}
	return item, nil
}
