package standings

import "time"

// Standing is one table row for a team inside a tournament group. Rows either
// come verbatim from the feed's standings structure or are derived from match
// results; FromFeed records which source produced the row.
type Standing struct {
	TournamentID    string
	Group           string
	TeamID          string
	Position        int
	Played          int
	Won             int
	Drawn           int
	Lost            int
	GoalsFor        int
	GoalsAgainst    int
	GoalDifference  int
	Points          int
	FromFeed        bool
	SourceUpdatedAt *time.Time
}
