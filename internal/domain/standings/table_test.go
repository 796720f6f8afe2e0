package standings

import (
	"testing"

	"github.com/sevens-series/tournament-api/internal/domain/match"
)

func intPtr(v int) *int { return &v }

func finished(id, group, home, away string, homeScore, awayScore int) match.Match {
	m := match.Match{
		ID:         id,
		Stage:      match.StageGroup,
		Group:      group,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
		Status:     match.StatusFinished,
	}
	if homeScore > awayScore {
		m.WinnerTeamID = home
	} else if awayScore > homeScore {
		m.WinnerTeamID = away
	}
	return m
}

func TestAggregateFourTeamGroup(t *testing.T) {
	t.Parallel()

	// Full round of 6 decided matches; team-a wins all three of its games.
	matches := []match.Match{
		finished("m1", "1", "a", "b", 2, 0),
		finished("m2", "1", "a", "c", 3, 1),
		finished("m3", "1", "a", "d", 1, 0),
		finished("m4", "1", "b", "c", 2, 1),
		finished("m5", "1", "b", "d", 0, 1),
		finished("m6", "1", "c", "d", 2, 3),
	}

	records := Aggregate(matches, "1")
	if len(records) != 4 {
		t.Fatalf("expected 4 teams, got %d", len(records))
	}
	if a := records["a"]; a.Won != 3 || a.Lost != 0 || a.Points != 9 {
		t.Fatalf("unexpected record for a: %+v", a)
	}

	rows := RankRecords("trn-1", "1", records)
	if rows[0].TeamID != "a" || rows[0].Position != 1 {
		t.Fatalf("expected a ranked first, got %+v", rows[0])
	}
	for idx, row := range rows {
		if row.Position != idx+1 {
			t.Fatalf("positions not dense: %+v", rows)
		}
	}
}

func TestAggregateConservation(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		finished("m1", "1", "a", "b", 1, 1),
		finished("m2", "1", "c", "d", 0, 0),
		finished("m3", "1", "a", "c", 4, 2),
	}

	records := Aggregate(matches, "")

	var wins, draws, goalsFor, goalsAgainst int
	for _, record := range records {
		wins += record.Won
		draws += record.Drawn
		goalsFor += record.GoalsFor
		goalsAgainst += record.GoalsAgainst
	}
	// Each draw is counted once per side.
	if wins+draws/2 != len(matches) {
		t.Fatalf("wins=%d draws=%d do not account for %d matches", wins, draws, len(matches))
	}
	if goalsFor != goalsAgainst {
		t.Fatalf("goals for (%d) != goals against (%d)", goalsFor, goalsAgainst)
	}
}

func TestAggregateSkipsPlaceholderAndUnfinished(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: "m1", Stage: match.StageSemiFinal, HomeName: "Group 1 Winner", AwayTeamID: "b", Status: match.StatusScheduled},
		{ID: "m2", Stage: match.StageGroup, Group: "1", HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusLive, HomeScore: intPtr(1), AwayScore: intPtr(0)},
	}

	if records := Aggregate(matches, ""); len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
}

func TestAggregateGroupFilterExcludesKnockout(t *testing.T) {
	t.Parallel()

	semi := finished("m9", "", "a", "b", 2, 1)
	semi.Stage = match.StageSemiFinal
	matches := []match.Match{
		finished("m1", "1", "a", "b", 1, 0),
		finished("m2", "2", "c", "d", 1, 0),
		semi,
	}

	records := Aggregate(matches, "1")
	if len(records) != 2 {
		t.Fatalf("expected only group 1 teams, got %+v", records)
	}
	if a := records["a"]; a.Played != 1 || a.Points != 3 {
		t.Fatalf("knockout match leaked into group table: %+v", a)
	}
}

func TestAggregateKeepsGroupTagAcrossStages(t *testing.T) {
	t.Parallel()

	// Unfiltered fold: the semi final comes after the group game but must
	// not blank the record's group tag.
	semi := finished("m2", "", "a", "c", 2, 0)
	semi.Stage = match.StageSemiFinal
	matches := []match.Match{
		finished("m1", "1", "a", "b", 1, 0),
		semi,
	}

	records := Aggregate(matches, "")
	if a := records["a"]; a.Group != "1" {
		t.Fatalf("group tag lost after knockout fold: %+v", a)
	}
	if a := records["a"]; a.Played != 2 || a.Points != 6 {
		t.Fatalf("both stages must fold into the record: %+v", a)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finished("m1", "1", "a", "b", 1, 0)}
	before := matches[0]

	first := Aggregate(matches, "")
	second := Aggregate(matches, "")

	if matches[0] != before {
		t.Fatal("input slice mutated")
	}
	if len(first) != len(second) || first["a"] != second["a"] {
		t.Fatalf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}
