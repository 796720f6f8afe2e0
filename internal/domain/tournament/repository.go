package tournament

import "context"

// Repository exposes tournament document reads.
type Repository interface {
	List(ctx context.Context) ([]Tournament, error)
	GetByID(ctx context.Context, tournamentID string) (Tournament, bool, error)
	UpsertTournaments(ctx context.Context, items []Tournament) error
}
