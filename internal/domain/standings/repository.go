package standings

import "context"

// Repository stores feed-provided standings rows between syncs.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Standing, error)
	ReplaceByTournament(ctx context.Context, tournamentID string, rows []Standing) error
}
