package bracket

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
)

// Placeholder is a parsed symbolic team slot from the published schedule,
// e.g. "Group 1 Winner" or "Semi-Final 2 Loser".
type Placeholder struct {
	Kind       Kind
	Group      string
	Position   int
	Ordinal    int
	WantWinner bool
}

type Kind string

const (
	KindGroupPosition Kind = "group_position"
	KindSemiFinal     Kind = "semi_final"
	KindFinal         Kind = "final"
)

var (
	groupPlaceholderRegex = regexp.MustCompile(`^Group (\d+) (Winner|Runner-Up)$`)
	semiPlaceholderRegex  = regexp.MustCompile(`^Semi-Final (\d+) (Winner|Loser)$`)
	finalPlaceholderRegex = regexp.MustCompile(`^Final (Winner|Loser)$`)
)

// Parse recognizes the placeholder display names used on the published
// schedule. The second return is false for anything else, including real
// team names.
func Parse(name string) (Placeholder, bool) {
	if parts := groupPlaceholderRegex.FindStringSubmatch(name); parts != nil {
		position := 1
		if parts[2] == "Runner-Up" {
			position = 2
		}
		return Placeholder{Kind: KindGroupPosition, Group: parts[1], Position: position}, true
	}
	if parts := semiPlaceholderRegex.FindStringSubmatch(name); parts != nil {
		ordinal, _ := strconv.Atoi(parts[1])
		return Placeholder{Kind: KindSemiFinal, Ordinal: ordinal, WantWinner: parts[2] == "Winner"}, true
	}
	if parts := finalPlaceholderRegex.FindStringSubmatch(name); parts != nil {
		return Placeholder{Kind: KindFinal, Ordinal: 1, WantWinner: parts[1] == "Winner"}, true
	}

	return Placeholder{}, false
}

// Resolve answers which concrete team currently fills a placeholder slot. It
// is a pure query over present match state: while the dependency (final group
// table or a decided bracket match) is not satisfied it returns "", and once
// it returns a team it keeps returning that team for any superset of results.
// Unparseable names also resolve to "" rather than an error.
func Resolve(name string, matches []match.Match, tables map[string][]standings.Standing) string {
	placeholder, ok := Parse(name)
	if !ok {
		return ""
	}

	switch placeholder.Kind {
	case KindGroupPosition:
		return resolveGroupPosition(placeholder, tables)
	case KindSemiFinal:
		return resolveBracketMatch(match.SemiFinals(matches), placeholder)
	case KindFinal:
		return resolveBracketMatch(match.Finals(matches), placeholder)
	default:
		return ""
	}
}

func resolveGroupPosition(placeholder Placeholder, tables map[string][]standings.Standing) string {
	rows := tables[placeholder.Group]
	if len(rows) == 0 {
		// Callers key tables by the full display name ("Group 1") or by the
		// bare number; accept either.
		rows = tables["Group "+placeholder.Group]
	}
	for _, row := range rows {
		if row.Position == placeholder.Position {
			return row.TeamID
		}
	}
	return ""
}

// resolveBracketMatch locates the Nth match of a stage by schedule order and
// reads its outcome once decided.
func resolveBracketMatch(stageMatches []match.Match, placeholder Placeholder) string {
	if placeholder.Ordinal < 1 || placeholder.Ordinal > len(stageMatches) {
		return ""
	}

	ordered := make([]match.Match, len(stageMatches))
	copy(ordered, stageMatches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].MatchNumber != ordered[j].MatchNumber {
			return ordered[i].MatchNumber < ordered[j].MatchNumber
		}
		if !ordered[i].KickoffUTC.Equal(ordered[j].KickoffUTC) {
			return ordered[i].KickoffUTC.Before(ordered[j].KickoffUTC)
		}
		return ordered[i].ID < ordered[j].ID
	})

	target := ordered[placeholder.Ordinal-1]
	if !target.IsDecided() {
		return ""
	}
	if placeholder.WantWinner {
		return target.WinnerTeamID
	}
	return target.LoserTeamID()
}
