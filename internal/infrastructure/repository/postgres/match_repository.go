package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sevens-series/tournament-api/internal/domain/match"
	qb "github.com/sevens-series/tournament-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_utc", "match_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := matchInsertModel{
			PublicID:     item.ID,
			TournamentID: item.TournamentID,
			Stage:        item.Stage,
			GroupName:    item.Group,
			MatchNumber:  item.MatchNumber,
			HomeTeamID:   stringToNullString(item.HomeTeamID),
			AwayTeamID:   stringToNullString(item.AwayTeamID),
			HomeName:     item.HomeName,
			AwayName:     item.AwayName,
			KickoffUTC:   item.KickoffUTC.UTC(),
			HomeScore:    ptrToNullInt(item.HomeScore),
			AwayScore:    ptrToNullInt(item.AwayScore),
			Status:       item.Status,
			WinnerTeamID: stringToNullString(item.WinnerTeamID),
			Penalties:    item.Penalties,
		}
		query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (tournament_public_id, public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    stage = EXCLUDED.stage,
    group_name = EXCLUDED.group_name,
    match_number = EXCLUDED.match_number,
    home_team_public_id = EXCLUDED.home_team_public_id,
    away_team_public_id = EXCLUDED.away_team_public_id,
    home_name = EXCLUDED.home_name,
    away_name = EXCLUDED.away_name,
    kickoff_utc = EXCLUDED.kickoff_utc,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    status = EXCLUDED.status,
    winner_team_public_id = EXCLUDED.winner_team_public_id,
    penalties = EXCLUDED.penalties,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert match %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert matches tx: %w", err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		Stage:        row.Stage,
		Group:        row.GroupName,
		MatchNumber:  row.MatchNumber,
		HomeTeamID:   nullStringToString(row.HomeTeamID),
		AwayTeamID:   nullStringToString(row.AwayTeamID),
		HomeName:     row.HomeName,
		AwayName:     row.AwayName,
		KickoffUTC:   row.KickoffUTC.UTC(),
		HomeScore:    nullIntToPtr(row.HomeScore),
		AwayScore:    nullIntToPtr(row.AwayScore),
		Status:       row.Status,
		WinnerTeamID: nullStringToString(row.WinnerTeamID),
		Penalties:    row.Penalties,
	}
}
