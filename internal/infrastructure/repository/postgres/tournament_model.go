package postgres

import "time"

type tournamentTableModel struct {
	ID                int64      `db:"id"`
	PublicID          string     `db:"public_id"`
	Title             string     `db:"title"`
	Season            string     `db:"season"`
	Venue             string     `db:"venue"`
	Groups            string     `db:"group_names"`
	FeedCompetitionID string     `db:"feed_competition_id"`
	FeedSeasonID      string     `db:"feed_season_id"`
	IsCurrent         bool       `db:"is_current"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

type tournamentInsertModel struct {
	PublicID          string `db:"public_id"`
	Title             string `db:"title"`
	Season            string `db:"season"`
	Venue             string `db:"venue"`
	Groups            string `db:"group_names"`
	FeedCompetitionID string `db:"feed_competition_id"`
	FeedSeasonID      string `db:"feed_season_id"`
	IsCurrent         bool   `db:"is_current"`
}
