package postgres

import (
	"database/sql"
	"time"
)

type standingTableModel struct {
	ID              int64        `db:"id"`
	TournamentID    string       `db:"tournament_public_id"`
	GroupName       string       `db:"group_name"`
	TeamID          string       `db:"team_public_id"`
	Position        int          `db:"position"`
	Played          int          `db:"played"`
	Won             int          `db:"won"`
	Drawn           int          `db:"drawn"`
	Lost            int          `db:"lost"`
	GoalsFor        int          `db:"goals_for"`
	GoalsAgainst    int          `db:"goals_against"`
	GoalDifference  int          `db:"goal_difference"`
	Points          int          `db:"points"`
	FromFeed        bool         `db:"from_feed"`
	SourceUpdatedAt sql.NullTime `db:"source_updated_at"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
	DeletedAt       *time.Time   `db:"deleted_at"`
}

type standingInsertModel struct {
	TournamentID    string     `db:"tournament_public_id"`
	GroupName       string     `db:"group_name"`
	TeamID          string     `db:"team_public_id"`
	Position        int        `db:"position"`
	Played          int        `db:"played"`
	Won             int        `db:"won"`
	Drawn           int        `db:"drawn"`
	Lost            int        `db:"lost"`
	GoalsFor        int        `db:"goals_for"`
	GoalsAgainst    int        `db:"goals_against"`
	GoalDifference  int        `db:"goal_difference"`
	Points          int        `db:"points"`
	FromFeed        bool       `db:"from_feed"`
	SourceUpdatedAt *time.Time `db:"source_updated_at"`
}
