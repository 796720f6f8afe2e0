package opta

import (
	"strconv"
	"strings"
	"time"

	"github.com/sevens-series/tournament-api/internal/usecase"
)

var feedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseFeedTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range feedTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

func mapFeedMatches(items []feedMatch) []usecase.ExternalMatchResult {
	out := make([]usecase.ExternalMatchResult, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			continue
		}
		kickoff, _ := parseFeedTime(item.Date)
		out = append(out, usecase.ExternalMatchResult{
			Ref:         strings.TrimSpace(item.ID),
			Stage:       strings.TrimSpace(item.Stage),
			Group:       strings.TrimSpace(item.GroupName),
			MatchNumber: item.MatchNumber,
			HomeRef:     strings.TrimSpace(item.HomeTeam.ID),
			AwayRef:     strings.TrimSpace(item.AwayTeam.ID),
			HomeName:    strings.TrimSpace(item.HomeTeam.Name),
			AwayName:    strings.TrimSpace(item.AwayTeam.Name),
			KickoffUTC:  kickoff,
			HomeScore:   item.HomeTeam.Score,
			AwayScore:   item.AwayTeam.Score,
			Status:      firstNonEmpty(item.Status, item.Period),
			WinnerRef:   strings.TrimSpace(item.Winner),
			Penalties:   strings.EqualFold(strings.TrimSpace(item.ResultType), "PenaltyShootout"),
		})
	}
	return out
}

// parseStandingRows tolerates the feed's field renames; older documents use
// "drawn"/"for"/"against", newer ones "draws"/"goalsFor"/"goalsAgainst".
func parseStandingRows(group string, rows []map[string]any) []usecase.ExternalStandingRow {
	out := make([]usecase.ExternalStandingRow, 0, len(rows))
	for _, row := range rows {
		teamRef := getStringAny(row, "teamRef", "contestantId", "teamId", "id")
		position := getIntAny(row, "position", "rank")
		if teamRef == "" || position <= 0 {
			continue
		}

		parsed := usecase.ExternalStandingRow{
			Group:           strings.TrimSpace(group),
			TeamRef:         teamRef,
			Position:        position,
			Played:          getIntAny(row, "played", "matchesPlayed", "games"),
			Won:             getIntAny(row, "won", "wins"),
			Drawn:           getIntAny(row, "drawn", "draws", "draw"),
			Lost:            getIntAny(row, "lost", "losses", "defeats"),
			GoalsFor:        getIntAny(row, "goalsFor", "for", "goalsScored"),
			GoalsAgainst:    getIntAny(row, "goalsAgainst", "against", "goalsConceded"),
			Points:          getIntAny(row, "points", "pts"),
			SourceUpdatedAt: parseOptionalTime(getStringAny(row, "lastUpdated", "updatedAt")),
		}
		if parsed.Played <= 0 {
			parsed.Played = parsed.Won + parsed.Drawn + parsed.Lost
		}
		out = append(out, parsed)
	}
	return out
}

func mapFeedTeamStats(teamRef string, envelope teamStatsEnvelope) usecase.ExternalTeamSeasonStats {
	out := usecase.ExternalTeamSeasonStats{
		TeamRef:  firstNonEmpty(envelope.Team.ID, teamRef),
		TeamName: strings.TrimSpace(envelope.Team.Name),
		Players:  make([]usecase.ExternalPlayerSeasonStats, 0, len(envelope.Players)),
	}
	for _, player := range envelope.Players {
		if strings.TrimSpace(player.ID) == "" {
			continue
		}
		stats := make(map[string]float64, len(player.Stats))
		for _, line := range player.Stats {
			name := strings.TrimSpace(line.Name)
			if name == "" {
				continue
			}
			if value, ok := statValueToFloat(line.Value); ok {
				stats[name] = value
			}
		}
		out.Players = append(out.Players, usecase.ExternalPlayerSeasonStats{
			PlayerRef: strings.TrimSpace(player.ID),
			FirstName: firstNonEmpty(player.KnownName, player.FirstName),
			LastName:  strings.TrimSpace(player.LastName),
			Position:  strings.TrimSpace(player.Position),
			Stats:     stats,
		})
	}
	return out
}

func statValueToFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func parseOptionalTime(value string) *time.Time {
	parsed, ok := parseFeedTime(value)
	if !ok {
		return nil
	}
	return &parsed
}

func getStringAny(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func getIntAny(item map[string]any, keys ...string) int {
	for _, key := range keys {
		switch value := item[key].(type) {
		case float64:
			return int(value)
		case int:
			return value
		case int64:
			return int(value)
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
