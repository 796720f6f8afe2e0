package bracket

import (
	"testing"
	"time"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Placeholder
		ok   bool
	}{
		{"Group 1 Winner", Placeholder{Kind: KindGroupPosition, Group: "1", Position: 1}, true},
		{"Group 2 Runner-Up", Placeholder{Kind: KindGroupPosition, Group: "2", Position: 2}, true},
		{"Semi-Final 1 Winner", Placeholder{Kind: KindSemiFinal, Ordinal: 1, WantWinner: true}, true},
		{"Semi-Final 2 Loser", Placeholder{Kind: KindSemiFinal, Ordinal: 2}, true},
		{"Final Winner", Placeholder{Kind: KindFinal, Ordinal: 1, WantWinner: true}, true},
		{"Final Loser", Placeholder{Kind: KindFinal, Ordinal: 1}, true},
		{"Manchester City", Placeholder{}, false},
		{"group 1 winner", Placeholder{}, false},
		{"", Placeholder{}, false},
	}

	for _, tc := range cases {
		got, ok := Parse(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Parse(%q) = %+v,%v want %+v,%v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestResolveGroupPosition(t *testing.T) {
	t.Parallel()

	tables := map[string][]standings.Standing{
		"1": {
			{TeamID: "a", Position: 1},
			{TeamID: "b", Position: 2},
		},
	}

	if got := Resolve("Group 1 Winner", nil, tables); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := Resolve("Group 1 Runner-Up", nil, tables); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := Resolve("Group 2 Winner", nil, tables); got != "" {
		t.Fatalf("expected empty for missing group table, got %q", got)
	}
}

func TestResolveSemiFinalMonotonic(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 6, 6, 13, 0, 0, 0, time.UTC)
	semis := []match.Match{
		{ID: "m10", Stage: match.StageSemiFinal, MatchNumber: 10, HomeTeamID: "a", AwayTeamID: "d", KickoffUTC: kickoff, Status: match.StatusScheduled},
		{ID: "m11", Stage: match.StageSemiFinal, MatchNumber: 11, HomeTeamID: "b", AwayTeamID: "c", KickoffUTC: kickoff.Add(time.Hour), Status: match.StatusScheduled},
	}

	if got := Resolve("Semi-Final 1 Winner", semis, nil); got != "" {
		t.Fatalf("expected empty before the match is decided, got %q", got)
	}

	semis[0].Status = match.StatusFinished
	semis[0].WinnerTeamID = "a"

	if got := Resolve("Semi-Final 1 Winner", semis, nil); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := Resolve("Semi-Final 1 Loser", semis, nil); got != "d" {
		t.Fatalf("expected d, got %q", got)
	}
	if got := Resolve("Semi-Final 2 Winner", semis, nil); got != "" {
		t.Fatalf("second semi is undecided, got %q", got)
	}

	// Deciding more matches never changes an already-resolved answer.
	semis[1].Status = match.StatusFinished
	semis[1].WinnerTeamID = "c"
	if got := Resolve("Semi-Final 1 Winner", semis, nil); got != "a" {
		t.Fatalf("resolution changed after more results: %q", got)
	}
}

func TestResolveFinal(t *testing.T) {
	t.Parallel()

	final := match.Match{
		ID: "m13", Stage: match.StageFinal, HomeTeamID: "a", AwayTeamID: "c",
		Status: match.StatusFinished, WinnerTeamID: "c", Penalties: true,
	}

	if got := Resolve("Final Winner", []match.Match{final}, nil); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if got := Resolve("Final Loser", []match.Match{final}, nil); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestResolveDrawnBracketMatchStaysUnresolved(t *testing.T) {
	t.Parallel()

	// A finished bracket match with no declared winner cannot fill a slot.
	semi := match.Match{ID: "m10", Stage: match.StageSemiFinal, HomeTeamID: "a", AwayTeamID: "b", Status: match.StatusFinished}

	if got := Resolve("Semi-Final 1 Winner", []match.Match{semi}, nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
