package usecase

import (
	"context"
	"time"
)

// MatchFeedProvider is the Opta-style data feed: live scores, feed-published
// tables and per-team season statistics, all keyed by prefixed feed refs.
type MatchFeedProvider interface {
	FetchMatchResults(ctx context.Context, competitionID, seasonID string) ([]ExternalMatchResult, error)
	FetchStandings(ctx context.Context, competitionID, seasonID string) ([]ExternalStandingRow, error)
	FetchTeamSeasonStats(ctx context.Context, competitionID, seasonID, teamRef string) (ExternalTeamSeasonStats, error)
	FetchSquads(ctx context.Context, competitionID, seasonID string) ([]ExternalSquad, error)
}

// ContentProvider is the CMS: tournament metadata, team pages and the
// editorially curated schedule with bracket placeholder names.
type ContentProvider interface {
	FetchTournaments(ctx context.Context) ([]ExternalTournamentDoc, error)
	FetchTeams(ctx context.Context, tournamentID string) ([]ExternalTeamDoc, error)
	FetchMatches(ctx context.Context, tournamentID string) ([]ExternalMatchDoc, error)
}

// ExternalMatchResult is one fixture row from the results feed. Team refs
// arrive prefixed ("t123") and scores are absent until the match kicks off.
type ExternalMatchResult struct {
	Ref         string
	Stage       string
	Group       string
	MatchNumber int
	HomeRef     string
	AwayRef     string
	HomeName    string
	AwayName    string
	KickoffUTC  time.Time
	HomeScore   *int
	AwayScore   *int
	Status      string
	WinnerRef   string
	Penalties   bool
}

// ExternalStandingRow is one feed-published table row.
type ExternalStandingRow struct {
	Group           string
	TeamRef         string
	Position        int
	Played          int
	Won             int
	Drawn           int
	Lost            int
	GoalsFor        int
	GoalsAgainst    int
	Points          int
	SourceUpdatedAt *time.Time
}

type ExternalSquad struct {
	TeamRef   string
	TeamName  string
	ShortName string
}

type ExternalPlayerSeasonStats struct {
	PlayerRef string
	FirstName string
	LastName  string
	Position  string
	// Stats carries the feed's human-readable names; normalization to the
	// site's keys happens during sync.
	Stats map[string]float64
}

type ExternalTeamSeasonStats struct {
	TeamRef  string
	TeamName string
	Players  []ExternalPlayerSeasonStats
}

// ExternalTournamentDoc is the CMS tournament document.
type ExternalTournamentDoc struct {
	ID                string
	Title             string
	Season            string
	Venue             string
	Groups            []string
	FeedCompetitionID string
	FeedSeasonID      string
	IsCurrent         bool
}

// ExternalTeamDoc is the CMS team page. FeedRef links the document to the
// feed's prefixed team identifier.
type ExternalTeamDoc struct {
	ID        string
	FeedRef   string
	Name      string
	ShortName string
	CrestURL  string
	Group     string
}

// ExternalMatchDoc is one editorially scheduled fixture. Team names may be
// bracket placeholders ("Group 1 Winner") until the draw resolves.
type ExternalMatchDoc struct {
	ID          string
	FeedRef     string
	Stage       string
	Group       string
	MatchNumber int
	HomeName    string
	AwayName    string
	KickoffUTC  time.Time
}
