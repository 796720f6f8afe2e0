package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	qb "github.com/sevens-series/tournament-api/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListByTournament(ctx context.Context, tournamentID string) ([]standings.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("group_name", "position", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standings.Standing, 0, len(rows))
	for _, row := range rows {
		item := standings.Standing{
			TournamentID:   row.TournamentID,
			Group:          row.GroupName,
			TeamID:         row.TeamID,
			Position:       row.Position,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			FromFeed:       row.FromFeed,
		}
		if row.SourceUpdatedAt.Valid {
			at := row.SourceUpdatedAt.Time
			item.SourceUpdatedAt = &at
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *StandingsRepository) ReplaceByTournament(ctx context.Context, tournamentID string, rows []standings.Standing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("standings").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear standings query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear standings: %w", err)
	}

	for _, item := range rows {
		insertModel := standingInsertModel{
			TournamentID:    tournamentID,
			GroupName:       item.Group,
			TeamID:          item.TeamID,
			Position:        item.Position,
			Played:          item.Played,
			Won:             item.Won,
			Drawn:           item.Drawn,
			Lost:            item.Lost,
			GoalsFor:        item.GoalsFor,
			GoalsAgainst:    item.GoalsAgainst,
			GoalDifference:  item.GoalDifference,
			Points:          item.Points,
			FromFeed:        item.FromFeed,
			SourceUpdatedAt: item.SourceUpdatedAt,
		}
		query, args, err := qb.InsertModel("standings", insertModel, `ON CONFLICT (tournament_public_id, group_name, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    position = EXCLUDED.position,
    played = EXCLUDED.played,
    won = EXCLUDED.won,
    drawn = EXCLUDED.drawn,
    lost = EXCLUDED.lost,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_difference = EXCLUDED.goal_difference,
    points = EXCLUDED.points,
    from_feed = EXCLUDED.from_feed,
    source_updated_at = EXCLUDED.source_updated_at,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing team=%s group=%s: %w", item.TeamID, item.Group, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}
