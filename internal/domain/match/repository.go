package match

import "context"

// Repository exposes match read/write operations.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Match, error)
	GetByID(ctx context.Context, tournamentID, matchID string) (Match, bool, error)
	UpsertMatches(ctx context.Context, items []Match) error
}
