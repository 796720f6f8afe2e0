package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

func intPtr(v int) *int { return &v }

func scheduleFixtures(t *testing.T) (*stubTournamentRepo, *stubMatchRepo, *stubTeamRepo, *stubStandingRepo) {
	t.Helper()

	tournamentRepo := newStubTournamentRepo(tournament.Tournament{
		ID:     "tour-1",
		Title:  "Summer Sevens",
		Groups: []string{"Group 1"},
	})

	teamRepo := newStubTeamRepo()
	if err := teamRepo.UpsertTeams(context.Background(), []team.Team{
		{ID: "1", TournamentID: "tour-1", Name: "North FC"},
		{ID: "2", TournamentID: "tour-1", Name: "South FC"},
	}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}

	matchRepo := newStubMatchRepo()
	if err := matchRepo.UpsertMatches(context.Background(), []match.Match{
		{
			ID: "101", TournamentID: "tour-1",
			Stage: match.StageGroup, Group: "Group 1", MatchNumber: 1,
			HomeTeamID: "1", AwayTeamID: "2",
			HomeName: "North FC", AwayName: "South FC",
			KickoffUTC: time.Date(2026, 5, 28, 17, 30, 0, 0, time.UTC),
			HomeScore:  intPtr(2), AwayScore: intPtr(0),
			Status: match.StatusFinished, WinnerTeamID: "1",
		},
		{
			ID: "201", TournamentID: "tour-1",
			Stage: match.StageSemiFinal, MatchNumber: 2,
			HomeName: "Group 1 Winner", AwayName: "Group 2 Winner",
			KickoffUTC: time.Date(2026, 5, 28, 22, 30, 0, 0, time.UTC),
			Status:     match.StatusScheduled,
		},
	}); err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	return tournamentRepo, matchRepo, teamRepo, newStubStandingRepo()
}

func TestGetScheduleResolvesCompletedGroupPlaceholder(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)

	days, err := service.GetSchedule(context.Background(), "tour-1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(days) != 1 || len(days[0].Matches) != 2 {
		t.Fatalf("unexpected schedule shape: %+v", days)
	}

	semi := days[0].Matches[1]
	if semi.HomeTeamID != "1" || semi.HomeName != "North FC" {
		t.Fatalf("group winner placeholder must resolve, got %+v", semi)
	}
	if semi.AwayTeamID != "" || semi.AwayName != "Group 2 Winner" {
		t.Fatalf("placeholder without a finished group must stay symbolic, got %+v", semi)
	}
}

func TestGetSchedulePlaceholderStaysWhileGroupUnfinished(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	if err := matchRepo.UpsertMatches(context.Background(), []match.Match{
		{
			ID: "102", TournamentID: "tour-1",
			Stage: match.StageGroup, Group: "Group 1", MatchNumber: 3,
			HomeTeamID: "1", AwayTeamID: "2",
			KickoffUTC: time.Date(2026, 5, 29, 11, 0, 0, 0, time.UTC),
			Status:     match.StatusScheduled,
		},
	}); err != nil {
		t.Fatalf("seed extra match: %v", err)
	}

	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)
	days, err := service.GetSchedule(context.Background(), "tour-1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}

	semi := days[0].Matches[1]
	if semi.HomeTeamID != "" || semi.HomeName != "Group 1 Winner" {
		t.Fatalf("a group with matches left must not feed the bracket, got %+v", semi)
	}
}

func TestGetScheduleUsesLocalCalendarDays(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	loc := time.FixedZone("UTC+2", 2*60*60)
	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, loc)

	days, err := service.GetSchedule(context.Background(), "tour-1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}

	// 22:30 UTC is already past midnight locally, so the semi moves to the
	// next calendar day.
	if len(days) != 2 {
		t.Fatalf("expected two local days, got %d", len(days))
	}
	if days[0].Date != "2026-05-28" || days[1].Date != "2026-05-29" {
		t.Fatalf("unexpected day keys: %s, %s", days[0].Date, days[1].Date)
	}
}

func TestGetMatchesRejectsUnknownStage(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)

	if _, err := service.GetMatches(context.Background(), "tour-1", "Quarter-Final"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	groupMatches, err := service.GetMatches(context.Background(), "tour-1", match.StageGroup)
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(groupMatches) != 1 || groupMatches[0].ID != "101" {
		t.Fatalf("unexpected group stage filter result: %+v", groupMatches)
	}
}

func TestGetMatchNormalizesFeedRef(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)

	found, err := service.GetMatch(context.Background(), "tour-1", "g101")
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if found.ID != "101" {
		t.Fatalf("prefixed ref must resolve to the stored match, got %+v", found)
	}

	if _, err := service.GetMatch(context.Background(), "tour-1", "999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSchedulePrefersFeedTableForPlaceholders(t *testing.T) {
	t.Parallel()

	tournamentRepo := newStubTournamentRepo(tournament.Tournament{
		ID:     "tour-1",
		Title:  "Summer Sevens",
		Groups: []string{"Group 1"},
	})

	teamRepo := newStubTeamRepo()
	if err := teamRepo.UpsertTeams(context.Background(), []team.Team{
		{ID: "1", TournamentID: "tour-1", Name: "North FC"},
		{ID: "2", TournamentID: "tour-1", Name: "South FC"},
		{ID: "3", TournamentID: "tour-1", Name: "East FC"},
	}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}

	// A three-way cycle of 1-0 wins: every team on 3 points, goal
	// difference 0, one goal scored. Score arithmetic cannot split them.
	matchRepo := newStubMatchRepo()
	if err := matchRepo.UpsertMatches(context.Background(), []match.Match{
		{
			ID: "101", TournamentID: "tour-1",
			Stage: match.StageGroup, Group: "Group 1", MatchNumber: 1,
			HomeTeamID: "1", AwayTeamID: "2",
			KickoffUTC: time.Date(2026, 5, 28, 12, 0, 0, 0, time.UTC),
			HomeScore:  intPtr(1), AwayScore: intPtr(0),
			Status: match.StatusFinished, WinnerTeamID: "1",
		},
		{
			ID: "102", TournamentID: "tour-1",
			Stage: match.StageGroup, Group: "Group 1", MatchNumber: 2,
			HomeTeamID: "2", AwayTeamID: "3",
			KickoffUTC: time.Date(2026, 5, 28, 14, 0, 0, 0, time.UTC),
			HomeScore:  intPtr(1), AwayScore: intPtr(0),
			Status: match.StatusFinished, WinnerTeamID: "2",
		},
		{
			ID: "103", TournamentID: "tour-1",
			Stage: match.StageGroup, Group: "Group 1", MatchNumber: 3,
			HomeTeamID: "3", AwayTeamID: "1",
			KickoffUTC: time.Date(2026, 5, 28, 16, 0, 0, 0, time.UTC),
			HomeScore:  intPtr(1), AwayScore: intPtr(0),
			Status: match.StatusFinished, WinnerTeamID: "3",
		},
		{
			ID: "201", TournamentID: "tour-1",
			Stage: match.StageSemiFinal, MatchNumber: 4,
			HomeName: "Group 1 Winner", AwayName: "Group 2 Winner",
			KickoffUTC: time.Date(2026, 5, 28, 20, 0, 0, 0, time.UTC),
			Status:     match.StatusScheduled,
		},
	}); err != nil {
		t.Fatalf("seed matches: %v", err)
	}

	// The published table ranks East FC first on an official tie-break the
	// scores alone cannot reproduce.
	standingRepo := newStubStandingRepo()
	if err := standingRepo.ReplaceByTournament(context.Background(), "tour-1", []standings.Standing{
		{TournamentID: "tour-1", Group: "Group 1", TeamID: "3", Position: 1, Points: 3, FromFeed: true},
		{TournamentID: "tour-1", Group: "Group 1", TeamID: "1", Position: 2, Points: 3, FromFeed: true},
		{TournamentID: "tour-1", Group: "Group 1", TeamID: "2", Position: 3, Points: 3, FromFeed: true},
	}); err != nil {
		t.Fatalf("seed standings: %v", err)
	}

	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)
	days, err := service.GetSchedule(context.Background(), "tour-1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}

	semi := days[0].Matches[3]
	if semi.HomeTeamID != "3" || semi.HomeName != "East FC" {
		t.Fatalf("published table must decide the group winner, got %+v", semi)
	}
}

func TestGetScheduleUnknownTournament(t *testing.T) {
	t.Parallel()

	tournamentRepo, matchRepo, teamRepo, standingRepo := scheduleFixtures(t)
	service := NewScheduleService(tournamentRepo, matchRepo, teamRepo, standingRepo, time.UTC)

	if _, err := service.GetSchedule(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
