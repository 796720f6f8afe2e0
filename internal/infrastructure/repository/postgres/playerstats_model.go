package postgres

import "time"

type playerStatsTableModel struct {
	ID           int64      `db:"id"`
	TournamentID string     `db:"tournament_public_id"`
	TeamRef      string     `db:"team_ref"`
	TeamName     string     `db:"team_name"`
	PlayerRef    string     `db:"player_ref"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Position     string     `db:"position"`
	StatValues   []byte     `db:"stat_values"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type playerStatsInsertModel struct {
	TournamentID string `db:"tournament_public_id"`
	TeamRef      string `db:"team_ref"`
	TeamName     string `db:"team_name"`
	PlayerRef    string `db:"player_ref"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Position     string `db:"position"`
	StatValues   []byte `db:"stat_values"`
}
