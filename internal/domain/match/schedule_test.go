package match

import (
	"testing"
	"time"
)

func TestGroupByDateUsesLocalCalendarDay(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on June 1st is already June 2nd in a UTC+2 zone.
	loc := time.FixedZone("UTC+2", 2*60*60)
	matches := []Match{
		{ID: "m1", KickoffUTC: time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC)},
		{ID: "m2", KickoffUTC: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "m3", KickoffUTC: time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)},
	}

	days := GroupByDate(matches, loc)
	if len(days) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(days))
	}
	if days[0].Date != "2026-06-01" || len(days[0].Matches) != 1 || days[0].Matches[0].ID != "m2" {
		t.Fatalf("unexpected first day: %+v", days[0])
	}
	if days[1].Date != "2026-06-02" || len(days[1].Matches) != 2 {
		t.Fatalf("unexpected second day: %+v", days[1])
	}
	if days[1].Matches[0].ID != "m1" || days[1].Matches[1].ID != "m3" {
		t.Fatalf("matches not ordered by kickoff inside bucket: %+v", days[1].Matches)
	}
}

func TestGroupByDateGlobalOrdering(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 6, 5, 10, 0, 0, 0, time.UTC)
	matches := []Match{
		{ID: "m4", KickoffUTC: base.Add(73 * time.Hour)},
		{ID: "m1", KickoffUTC: base},
		{ID: "m3", KickoffUTC: base.Add(26 * time.Hour)},
		{ID: "m2", KickoffUTC: base.Add(3 * time.Hour)},
	}

	days := GroupByDate(matches, time.UTC)

	var flat []Match
	for _, day := range days {
		flat = append(flat, day.Matches...)
	}
	if len(flat) != len(matches) {
		t.Fatalf("expected %d matches total, got %d", len(matches), len(flat))
	}
	for i := 1; i < len(flat); i++ {
		if flat[i].KickoffUTC.Before(flat[i-1].KickoffUTC) {
			t.Fatalf("kickoff order regressed at index %d", i)
		}
	}
}

func TestGroupByDateSimultaneousKickoffs(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, 6, 5, 10, 0, 0, 0, time.UTC)
	matches := []Match{
		{ID: "m2", MatchNumber: 2, KickoffUTC: kickoff},
		{ID: "m1", MatchNumber: 1, KickoffUTC: kickoff},
	}

	days := GroupByDate(matches, time.UTC)
	if len(days) != 1 {
		t.Fatalf("expected 1 day group, got %d", len(days))
	}
	if days[0].Matches[0].ID != "m1" {
		t.Fatalf("expected match number to break kickoff ties, got %+v", days[0].Matches)
	}
}

func TestGroupByDateEmptyInput(t *testing.T) {
	t.Parallel()

	if got := GroupByDate(nil, time.UTC); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %d groups", len(got))
	}
	if got := GroupByDate([]Match{}, nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d groups", len(got))
	}
}
