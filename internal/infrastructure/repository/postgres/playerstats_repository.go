package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	qb "github.com/sevens-series/tournament-api/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByTournament(ctx context.Context, tournamentID string) ([]playerstats.TeamStats, error) {
	query, args, err := qb.Select("*").From("player_season_stats").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_ref", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player season stats query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player season stats: %w", err)
	}

	// Rows are ordered by team, so one linear pass rebuilds team groupings.
	out := make([]playerstats.TeamStats, 0)
	for _, row := range rows {
		values := make(map[string]float64)
		if len(row.StatValues) > 0 {
			if err := sonic.Unmarshal(row.StatValues, &values); err != nil {
				return nil, fmt.Errorf("decode stat values player=%s: %w", row.PlayerRef, err)
			}
		}

		player := playerstats.PlayerStats{
			PlayerRef: row.PlayerRef,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Position:  row.Position,
			Values:    values,
		}

		if n := len(out); n > 0 && out[n-1].TeamRef == row.TeamRef {
			out[n-1].Players = append(out[n-1].Players, player)
			continue
		}
		out = append(out, playerstats.TeamStats{
			TeamRef:  row.TeamRef,
			TeamName: row.TeamName,
			Players:  []playerstats.PlayerStats{player},
		})
	}

	return out, nil
}

func (r *PlayerStatsRepository) ReplaceByTournament(ctx context.Context, tournamentID string, items []playerstats.TeamStats) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace player season stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("player_season_stats").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear player season stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear player season stats: %w", err)
	}

	for _, teamStats := range items {
		for _, player := range teamStats.Players {
			values, err := sonic.Marshal(player.Values)
			if err != nil {
				return fmt.Errorf("encode stat values player=%s: %w", player.PlayerRef, err)
			}

			insertModel := playerStatsInsertModel{
				TournamentID: tournamentID,
				TeamRef:      teamStats.TeamRef,
				TeamName:     teamStats.TeamName,
				PlayerRef:    player.PlayerRef,
				FirstName:    player.FirstName,
				LastName:     player.LastName,
				Position:     player.Position,
				StatValues:   values,
			}
			query, args, err := qb.InsertModel("player_season_stats", insertModel, `ON CONFLICT (tournament_public_id, team_ref, player_ref) WHERE deleted_at IS NULL
DO UPDATE SET
    team_name = EXCLUDED.team_name,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    position = EXCLUDED.position,
    stat_values = EXCLUDED.stat_values,
    updated_at = NOW(),
    deleted_at = NULL`)
			if err != nil {
				return fmt.Errorf("build upsert player season stats query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert player season stats team=%s player=%s: %w", teamStats.TeamRef, player.PlayerRef, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace player season stats tx: %w", err)
	}
	return nil
}
