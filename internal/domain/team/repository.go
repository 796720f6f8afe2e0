package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Team, error)
	GetByID(ctx context.Context, tournamentID, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, items []Team) error
}
