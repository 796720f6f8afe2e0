package playerstats

import "context"

// Repository stores per-team season stats between syncs.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]TeamStats, error)
	ReplaceByTournament(ctx context.Context, tournamentID string, items []TeamStats) error
}
