package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sevens-series/tournament-api/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo dataset into an empty database so a fresh
// environment serves content before the first sync job runs.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM tournaments WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count tournaments for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := NewTournamentRepository(db).UpsertTournaments(ctx, memory.SeedTournaments()); err != nil {
		return fmt.Errorf("seed tournaments: %w", err)
	}
	if err := NewTeamRepository(db).UpsertTeams(ctx, memory.SeedTeams()); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := NewMatchRepository(db).UpsertMatches(ctx, memory.SeedMatches()); err != nil {
		return fmt.Errorf("seed matches: %w", err)
	}
	if err := NewPlayerStatsRepository(db).ReplaceByTournament(ctx, memory.TournamentIDLondon2026, memory.SeedTeamStats()); err != nil {
		return fmt.Errorf("seed player season stats: %w", err)
	}

	return nil
}
