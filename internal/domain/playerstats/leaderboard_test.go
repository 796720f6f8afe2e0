package playerstats

import (
	"reflect"
	"testing"
)

func scorer(ref, first, last string, goals float64) PlayerStats {
	return PlayerStats{
		PlayerRef: ref,
		FirstName: first,
		LastName:  last,
		Position:  "Forward",
		Values:    map[string]float64{StatGoals: goals, StatShots: goals * 2},
	}
}

func sampleTeams() []TeamStats {
	return []TeamStats{
		{
			TeamRef:  "1",
			TeamName: "North FC",
			Players: []PlayerStats{
				scorer("11", "Ada", "Hegarty", 5),
				scorer("12", "Beth", "Ennis", 4),
				{PlayerRef: "13", FirstName: "Cora", LastName: "Quinn", Position: PositionGoalkeeper,
					Values: map[string]float64{StatSaves: 9, StatCleanSheets: 2}},
				{PlayerRef: "14", FirstName: "Dee", LastName: "Mason", Position: "Defender",
					Values: map[string]float64{StatTackles: 7}},
			},
		},
		{
			TeamRef:  "2",
			TeamName: "South FC",
			Players: []PlayerStats{
				scorer("21", "Eve", "Marsh", 5),
				scorer("22", "Fay", "Otieno", 0),
			},
		},
	}
}

func TestBuildLeaderboardTieLabels(t *testing.T) {
	t.Parallel()

	board := BuildLeaderboard(sampleTeams(), CategoryScorers, "", 0)
	if board.Total != 3 {
		t.Fatalf("expected 3 scorers (zero-goal player dropped), got %d", board.Total)
	}

	// Two players tied at 5 goals, next at 4: T1, T1, 3.
	labels := []string{board.Rows[0].RankLabel, board.Rows[1].RankLabel, board.Rows[2].RankLabel}
	if labels[0] != "T1" || labels[1] != "T1" || labels[2] != "3" {
		t.Fatalf("unexpected rank labels: %v", labels)
	}
	if board.Rows[2].Rank != 3 {
		t.Fatalf("rank after tie must resume at list index, got %d", board.Rows[2].Rank)
	}
}

func TestBuildLeaderboardRoundTripStability(t *testing.T) {
	t.Parallel()

	teams := sampleTeams()

	first := BuildLeaderboard(teams, CategoryScorers, "", 0)
	BuildLeaderboard(teams, CategoryGoalkeepers, "", 0)
	second := BuildLeaderboard(teams, CategoryScorers, "", 0)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("switching categories changed the scorers board:\n%+v\n%+v", first, second)
	}
}

func TestBuildLeaderboardGoalkeeperFilter(t *testing.T) {
	t.Parallel()

	board := BuildLeaderboard(sampleTeams(), CategoryGoalkeepers, "", 0)
	if board.Total != 1 || board.Rows[0].PlayerRef != "13" {
		t.Fatalf("expected only the goalkeeper, got %+v", board.Rows)
	}
	if board.Rows[0].Values[StatCleanSheets] != 2 {
		t.Fatalf("expected clean sheets column, got %+v", board.Rows[0].Values)
	}
}

func TestBuildLeaderboardTeamFilter(t *testing.T) {
	t.Parallel()

	board := BuildLeaderboard(sampleTeams(), CategoryScorers, "2", 0)
	if board.Total != 1 || board.Rows[0].PlayerRef != "21" {
		t.Fatalf("expected only the south scorer, got %+v", board.Rows)
	}
	if board.Rows[0].RankLabel != "1" {
		t.Fatalf("filtered board re-ranks from 1, got %q", board.Rows[0].RankLabel)
	}
}

func TestBuildLeaderboardPagination(t *testing.T) {
	t.Parallel()

	var players []PlayerStats
	for i := 0; i < 23; i++ {
		players = append(players, PlayerStats{
			PlayerRef: "p" + string(rune('a'+i)),
			FirstName: "Player",
			LastName:  string(rune('a' + i)),
			Values:    map[string]float64{StatGoals: float64(100 - i)},
		})
	}
	teams := []TeamStats{{TeamRef: "1", TeamName: "North FC", Players: players}}

	page0 := BuildLeaderboard(teams, CategoryScorers, "", 0)
	page2 := BuildLeaderboard(teams, CategoryScorers, "", 2)
	beyond := BuildLeaderboard(teams, CategoryScorers, "", 9)

	if len(page0.Rows) != PageSize || page0.PageCount != 3 {
		t.Fatalf("unexpected first page: len=%d pages=%d", len(page0.Rows), page0.PageCount)
	}
	if len(page2.Rows) != 3 {
		t.Fatalf("expected 3 rows on last page, got %d", len(page2.Rows))
	}
	if page2.Rows[0].Rank != 21 {
		t.Fatalf("ranks must continue across pages, got %d", page2.Rows[0].Rank)
	}
	if len(beyond.Rows) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d rows", len(beyond.Rows))
	}
}

func TestBuildLeaderboardUnknownCategory(t *testing.T) {
	t.Parallel()

	board := BuildLeaderboard(sampleTeams(), Category("coaches"), "", 0)
	if board.Total != 0 || len(board.Rows) != 0 {
		t.Fatalf("unknown category must yield an empty board, got %+v", board)
	}
}

func TestNormalizeStatName(t *testing.T) {
	t.Parallel()

	if key, ok := NormalizeStatName("Goal Assists"); !ok || key != StatAssists {
		t.Fatalf("unexpected mapping: %q %v", key, ok)
	}
	if _, ok := NormalizeStatName("Left-Foot Step-Overs"); ok {
		t.Fatal("unexpected mapping for unknown stat name")
	}
}
