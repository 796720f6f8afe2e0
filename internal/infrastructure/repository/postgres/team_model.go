package postgres

import "time"

type teamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	TournamentID  string     `db:"tournament_public_id"`
	Name          string     `db:"name"`
	ShortName     string     `db:"short_name"`
	FeedShortName string     `db:"feed_short_name"`
	GroupName     string     `db:"group_name"`
	CrestURL      string     `db:"crest_url"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID      string `db:"public_id"`
	TournamentID  string `db:"tournament_public_id"`
	Name          string `db:"name"`
	ShortName     string `db:"short_name"`
	FeedShortName string `db:"feed_short_name"`
	GroupName     string `db:"group_name"`
	CrestURL      string `db:"crest_url"`
}
