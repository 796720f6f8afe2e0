package playerstats

import (
	"sort"
	"strconv"
)

type Category string

const (
	CategoryScorers     Category = "scorers"
	CategoryPlaymakers  Category = "playmakers"
	CategoryDefenders   Category = "defenders"
	CategoryGoalkeepers Category = "goalkeepers"
)

// PageSize is the fixed leaderboard page length.
const PageSize = 10

// ValidCategory reports whether a leaderboard exists for the category.
func ValidCategory(category Category) bool {
	_, ok := categoryConfigs[category]
	return ok
}

type categoryConfig struct {
	primary        string
	columns        []string
	goalkeeperOnly bool
}

var categoryConfigs = map[Category]categoryConfig{
	CategoryScorers: {
		primary: StatGoals,
		columns: []string{StatGoals, StatShots, StatShotsOnTarget, StatAppearances},
	},
	CategoryPlaymakers: {
		primary: StatAssists,
		columns: []string{StatAssists, StatGoals, StatMinutes, StatAppearances},
	},
	CategoryDefenders: {
		primary: StatTackles,
		columns: []string{StatTackles, StatClearances, StatDuelsWon, StatInterceptions},
	},
	CategoryGoalkeepers: {
		primary:        StatSaves,
		columns:        []string{StatSaves, StatCleanSheets, StatGoalsConceded, StatAppearances},
		goalkeeperOnly: true,
	},
}

// Row is one ranked leaderboard line. Players sharing a primary-stat value
// share a rank and carry a "T" marker; the next distinct value resumes at its
// list index, so a three-way tie at 2 is followed by rank 5.
type Row struct {
	Rank      int
	RankLabel string
	PlayerRef string
	Player    string
	TeamRef   string
	Team      string
	Primary   float64
	Values    map[string]float64
}

type Leaderboard struct {
	Category  Category
	Page      int
	PageCount int
	Total     int
	Rows      []Row
}

// BuildLeaderboard projects every player record onto the selected category,
// drops players without the category's primary stat, ranks the rest and
// returns one page. The result is a pure function of its arguments: callers
// re-invoke it with page zero whenever the category or team filter changes,
// and an identical invocation always reproduces identical rows.
func BuildLeaderboard(teams []TeamStats, category Category, teamFilter string, page int) Leaderboard {
	config, ok := categoryConfigs[category]
	if !ok {
		return Leaderboard{Category: category, Rows: []Row{}}
	}

	rows := make([]Row, 0, 64)
	for _, teamEntry := range teams {
		if teamFilter != "" && teamEntry.TeamRef != teamFilter {
			continue
		}
		for _, playerEntry := range teamEntry.Players {
			if config.goalkeeperOnly && playerEntry.Position != PositionGoalkeeper {
				continue
			}
			primary := playerEntry.Value(config.primary)
			if primary <= 0 {
				continue
			}

			values := make(map[string]float64, len(config.columns))
			for _, key := range config.columns {
				values[key] = playerEntry.Value(key)
			}
			rows = append(rows, Row{
				PlayerRef: playerEntry.PlayerRef,
				Player:    playerEntry.Name(),
				TeamRef:   teamEntry.TeamRef,
				Team:      teamEntry.TeamName,
				Primary:   primary,
				Values:    values,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Primary != rows[j].Primary {
			return rows[i].Primary > rows[j].Primary
		}
		if rows[i].Player != rows[j].Player {
			return rows[i].Player < rows[j].Player
		}
		return rows[i].PlayerRef < rows[j].PlayerRef
	})

	assignRanks(rows)

	total := len(rows)
	pageCount := (total + PageSize - 1) / PageSize
	if page < 0 {
		page = 0
	}

	start := page * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return Leaderboard{
		Category:  category,
		Page:      page,
		PageCount: pageCount,
		Total:     total,
		Rows:      rows[start:end],
	}
}

func assignRanks(rows []Row) {
	for idx := range rows {
		if idx > 0 && rows[idx].Primary == rows[idx-1].Primary {
			rows[idx].Rank = rows[idx-1].Rank
		} else {
			rows[idx].Rank = idx + 1
		}
	}
	for idx := range rows {
		tied := (idx > 0 && rows[idx-1].Rank == rows[idx].Rank) ||
			(idx+1 < len(rows) && rows[idx+1].Rank == rows[idx].Rank)
		if tied {
			rows[idx].RankLabel = "T" + strconv.Itoa(rows[idx].Rank)
		} else {
			rows[idx].RankLabel = strconv.Itoa(rows[idx].Rank)
		}
	}
}
