package opta

// Feed envelopes. The gateway wraps every document in a top-level object; the
// interesting parts sit one level down. Standings rows and player stat lines
// are decoded loosely because the feed renames fields between competitions.

type matchResultsEnvelope struct {
	Competition feedCompetition `json:"competition"`
	Matches     []feedMatch     `json:"matches"`
}

type feedCompetition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type feedMatch struct {
	ID          string        `json:"id"`
	Stage       string        `json:"stage"`
	GroupName   string        `json:"groupName"`
	MatchNumber int           `json:"matchNumber"`
	Date        string        `json:"date"`
	TZ          string        `json:"timezone"`
	Status      string        `json:"status"`
	Period      string        `json:"period"`
	Winner      string        `json:"winner"`
	ResultType  string        `json:"resultType"`
	HomeTeam    feedMatchSide `json:"homeTeam"`
	AwayTeam    feedMatchSide `json:"awayTeam"`
}

type feedMatchSide struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TeamCode  string `json:"teamCode"`
	Score     *int   `json:"score"`
}

type standingsEnvelope struct {
	Stage  string          `json:"stage"`
	Groups []standingGroup `json:"groups"`
}

type standingGroup struct {
	Name string           `json:"name"`
	Rows []map[string]any `json:"rows"`
}

type squadsEnvelope struct {
	Squads []feedSquad `json:"squads"`
}

type feedSquad struct {
	ID        string `json:"id"`
	TeamRef   string `json:"teamRef"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TeamCode  string `json:"teamCode"`
}

type teamStatsEnvelope struct {
	Team    feedStatsTeam    `json:"team"`
	Players []feedStatPlayer `json:"players"`
}

type feedStatsTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type feedStatPlayer struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	KnownName string         `json:"knownName"`
	Position  string         `json:"position"`
	Stats     []feedStatLine `json:"stats"`
}

// feedStatLine's value arrives as a number in most documents and as a quoted
// string in older ones, so it decodes into any and is coerced later.
type feedStatLine struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}
