package playerstats

import "strings"

const PositionGoalkeeper = "Goalkeeper"

// PlayerStats is one player's cumulative tournament statistics as carried in
// a team's season-stat feed payload. The feed delivers a sparse map of
// human-readable stat names; values are stored under normalized keys (see
// NormalizeStatName) so lookups never depend on feed spelling.
type PlayerStats struct {
	PlayerRef string
	FirstName string
	LastName  string
	Position  string
	Values    map[string]float64
}

// Name joins the feed's name parts for display.
func (p PlayerStats) Name() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Value reads a normalized stat, zero when absent.
func (p PlayerStats) Value(key string) float64 {
	return p.Values[key]
}

// TeamStats namespaces player records per team; player records have no
// identity outside their team's payload.
type TeamStats struct {
	TeamRef  string
	TeamName string
	Players  []PlayerStats
}
