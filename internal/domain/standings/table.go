package standings

import (
	"sort"

	"github.com/sevens-series/tournament-api/internal/domain/match"
)

// Record holds one team's cumulative results. Records are derived, never
// stored: every call recomputes them from the match list it is given.
type Record struct {
	TeamID       string
	Group        string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

func (r Record) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Aggregate folds finished matches into per-team records. A match only
// contributes when both sides reference a concrete team; bracket matches
// still holding placeholders are skipped. A declared winner takes 3 points
// and a win, the other side a loss; a finished match without a winner is a
// draw worth a point each. Goal tallies accumulate either way. When group is
// non-empty only group-stage matches with that group tag fold; otherwise
// every finished match in the input folds, so callers pre-filter by stage
// when they want a group-phase-only table.
func Aggregate(matches []match.Match, group string) map[string]Record {
	out := make(map[string]Record)
	for _, m := range matches {
		if !m.HasBothTeams() {
			continue
		}
		if !match.IsFinishedStatus(m.Status) {
			continue
		}
		if group != "" && (m.Stage != match.StageGroup || m.Group != group) {
			continue
		}

		home := out[m.HomeTeamID]
		away := out[m.AwayTeamID]
		home.TeamID = m.HomeTeamID
		away.TeamID = m.AwayTeamID
		if m.Stage == match.StageGroup {
			home.Group = m.Group
			away.Group = m.Group
		}
		home.Played++
		away.Played++

		if m.HomeScore != nil && m.AwayScore != nil {
			home.GoalsFor += *m.HomeScore
			home.GoalsAgainst += *m.AwayScore
			away.GoalsFor += *m.AwayScore
			away.GoalsAgainst += *m.HomeScore
		}

		switch m.WinnerTeamID {
		case "":
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		case m.HomeTeamID:
			home.Won++
			home.Points += 3
			away.Lost++
		default:
			away.Won++
			away.Points += 3
			home.Lost++
		}

		out[m.HomeTeamID] = home
		out[m.AwayTeamID] = away
	}

	return out
}

// RankRecords orders aggregated records into a dense 1..N table. Points
// decide first, then goal difference, then goals scored; the final fallback
// on team id keeps the order deterministic, it is not an official tie-break
// rule.
func RankRecords(tournamentID, group string, records map[string]Record) []Standing {
	rows := make([]Standing, 0, len(records))
	for _, record := range records {
		rows = append(rows, Standing{
			TournamentID:   tournamentID,
			Group:          group,
			TeamID:         record.TeamID,
			Played:         record.Played,
			Won:            record.Won,
			Drawn:          record.Drawn,
			Lost:           record.Lost,
			GoalsFor:       record.GoalsFor,
			GoalsAgainst:   record.GoalsAgainst,
			GoalDifference: record.GoalDifference(),
			Points:         record.Points,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].TeamID < rows[j].TeamID
	})

	for idx := range rows {
		rows[idx].Position = idx + 1
	}

	return rows
}
