package match

import (
	"sort"
	"time"
)

// DayGroup is one calendar day of the schedule in the tournament's local
// timezone.
type DayGroup struct {
	Date    string
	Matches []Match
}

// GroupByDate buckets matches into local-calendar-day groups. Kickoff
// timestamps are stored in UTC; the bucket key is the zero-padded Y-M-D date
// after conversion to loc, so a late-evening UTC kickoff lands on the correct
// local day. Matches inside a bucket are ordered by kickoff instant (then
// match number, then id, for a stable order between simultaneous kickoffs)
// and buckets are ordered by date key. A nil or empty input yields an empty
// slice.
func GroupByDate(matches []Match, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.UTC
	}
	if len(matches) == 0 {
		return []DayGroup{}
	}

	byDate := make(map[string][]Match)
	for _, item := range matches {
		key := item.KickoffUTC.In(loc).Format("2006-01-02")
		byDate[key] = append(byDate[key], item)
	}

	keys := make([]string, 0, len(byDate))
	for key := range byDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		day := byDate[key]
		sort.SliceStable(day, func(i, j int) bool {
			if !day[i].KickoffUTC.Equal(day[j].KickoffUTC) {
				return day[i].KickoffUTC.Before(day[j].KickoffUTC)
			}
			if day[i].MatchNumber != day[j].MatchNumber {
				return day[i].MatchNumber < day[j].MatchNumber
			}
			return day[i].ID < day[j].ID
		})
		out = append(out, DayGroup{Date: key, Matches: day})
	}

	return out
}
