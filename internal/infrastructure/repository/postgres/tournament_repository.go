package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	qb "github.com/sevens-series/tournament-api/internal/platform/querybuilder"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(
			qb.Eq("public_id", tournamentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament by id query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by id: %w", err)
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) UpsertTournaments(ctx context.Context, items []tournament.Tournament) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert tournaments: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := tournamentInsertModel{
			PublicID:          item.ID,
			Title:             item.Title,
			Season:            item.Season,
			Venue:             item.Venue,
			Groups:            joinGroups(item.Groups),
			FeedCompetitionID: item.FeedCompetitionID,
			FeedSeasonID:      item.FeedSeasonID,
			IsCurrent:         item.IsCurrent,
		}
		query, args, err := qb.InsertModel("tournaments", insertModel, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    title = EXCLUDED.title,
    season = EXCLUDED.season,
    venue = EXCLUDED.venue,
    group_names = EXCLUDED.group_names,
    feed_competition_id = EXCLUDED.feed_competition_id,
    feed_season_id = EXCLUDED.feed_season_id,
    is_current = EXCLUDED.is_current,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return fmt.Errorf("build upsert tournament query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert tournament %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert tournaments tx: %w", err)
	}
	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:                row.PublicID,
		Title:             row.Title,
		Season:            row.Season,
		Venue:             row.Venue,
		Groups:            splitGroups(row.Groups),
		FeedCompetitionID: row.FeedCompetitionID,
		FeedSeasonID:      row.FeedSeasonID,
		IsCurrent:         row.IsCurrent,
	}
}

// Group names are stored as one delimited column; names never contain the
// delimiter because the CMS validates them against a short display pattern.
const groupNameSeparator = "|"

func joinGroups(groups []string) string {
	return strings.Join(groups, groupNameSeparator)
}

func splitGroups(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, groupNameSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}

	return out
}
