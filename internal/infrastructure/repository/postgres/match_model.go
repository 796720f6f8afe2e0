package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Stage        string         `db:"stage"`
	GroupName    string         `db:"group_name"`
	MatchNumber  int            `db:"match_number"`
	HomeTeamID   sql.NullString `db:"home_team_public_id"`
	AwayTeamID   sql.NullString `db:"away_team_public_id"`
	HomeName     string         `db:"home_name"`
	AwayName     string         `db:"away_name"`
	KickoffUTC   time.Time      `db:"kickoff_utc"`
	HomeScore    sql.NullInt64  `db:"home_score"`
	AwayScore    sql.NullInt64  `db:"away_score"`
	Status       string         `db:"status"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	Penalties    bool           `db:"penalties"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	Stage        string         `db:"stage"`
	GroupName    string         `db:"group_name"`
	MatchNumber  int            `db:"match_number"`
	HomeTeamID   sql.NullString `db:"home_team_public_id"`
	AwayTeamID   sql.NullString `db:"away_team_public_id"`
	HomeName     string         `db:"home_name"`
	AwayName     string         `db:"away_name"`
	KickoffUTC   time.Time      `db:"kickoff_utc"`
	HomeScore    sql.NullInt64  `db:"home_score"`
	AwayScore    sql.NullInt64  `db:"away_score"`
	Status       string         `db:"status"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	Penalties    bool           `db:"penalties"`
}
