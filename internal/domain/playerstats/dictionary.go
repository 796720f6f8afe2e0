package playerstats

// Normalized stat keys addressed by the leaderboard categories.
const (
	StatAppearances   = "appearances"
	StatMinutes       = "minutes"
	StatGoals         = "goals"
	StatAssists       = "assists"
	StatShots         = "shots"
	StatShotsOnTarget = "shotsOnTarget"
	StatTackles       = "tackles"
	StatClearances    = "clearances"
	StatDuelsWon      = "duelsWon"
	StatInterceptions = "interceptions"
	StatSaves         = "saves"
	StatCleanSheets   = "cleanSheets"
	StatGoalsConceded = "goalsConceded"
	StatYellowCards   = "yellowCards"
	StatRedCards      = "redCards"
)

// statNameDictionary maps the feed's human-readable stat names onto
// normalized keys. Names not listed here are dropped during sync; the feed
// ships dozens of niche entries the site never reads.
var statNameDictionary = map[string]string{
	"Appearances":      StatAppearances,
	"Time Played":      StatMinutes,
	"Goals":            StatGoals,
	"Goal Assists":     StatAssists,
	"Total Shots":      StatShots,
	"Shots On Target":  StatShotsOnTarget,
	"Total Tackles":    StatTackles,
	"Total Clearances": StatClearances,
	"Duels won":        StatDuelsWon,
	"Interceptions":    StatInterceptions,
	"Saves Made":       StatSaves,
	"Clean Sheets":     StatCleanSheets,
	"Goals Conceded":   StatGoalsConceded,
	"Yellow Cards":     StatYellowCards,
	"Red Cards":        StatRedCards,
}

// NormalizeStatName resolves a feed stat name to its normalized key.
func NormalizeStatName(feedName string) (string, bool) {
	key, ok := statNameDictionary[feedName]
	return key, ok
}
