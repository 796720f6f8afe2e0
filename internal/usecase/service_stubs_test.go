package usecase

import (
	"context"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

type stubTournamentRepo struct {
	items map[string]tournament.Tournament
}

func newStubTournamentRepo(items ...tournament.Tournament) *stubTournamentRepo {
	repo := &stubTournamentRepo{items: make(map[string]tournament.Tournament, len(items))}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *stubTournamentRepo) List(context.Context) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *stubTournamentRepo) GetByID(_ context.Context, id string) (tournament.Tournament, bool, error) {
	item, ok := r.items[id]
	return item, ok, nil
}

func (r *stubTournamentRepo) UpsertTournaments(_ context.Context, items []tournament.Tournament) error {
	for _, item := range items {
		r.items[item.ID] = item
	}
	return nil
}

type stubMatchRepo struct {
	byTournament map[string][]match.Match
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{byTournament: make(map[string][]match.Match)}
}

func (r *stubMatchRepo) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	return r.byTournament[tournamentID], nil
}

func (r *stubMatchRepo) GetByID(_ context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	for _, item := range r.byTournament[tournamentID] {
		if item.ID == matchID {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *stubMatchRepo) UpsertMatches(_ context.Context, items []match.Match) error {
	for _, item := range items {
		existing := r.byTournament[item.TournamentID]
		replaced := false
		for idx := range existing {
			if existing[idx].ID == item.ID {
				existing[idx] = item
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, item)
		}
		r.byTournament[item.TournamentID] = existing
	}
	return nil
}

type stubTeamRepo struct {
	byTournament map[string][]team.Team
}

func newStubTeamRepo() *stubTeamRepo {
	return &stubTeamRepo{byTournament: make(map[string][]team.Team)}
}

func (r *stubTeamRepo) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	return r.byTournament[tournamentID], nil
}

func (r *stubTeamRepo) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	for _, item := range r.byTournament[tournamentID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepo) UpsertTeams(_ context.Context, items []team.Team) error {
	for _, item := range items {
		existing := r.byTournament[item.TournamentID]
		replaced := false
		for idx := range existing {
			if existing[idx].ID == item.ID {
				existing[idx] = item
				replaced = true
				break
			}
		}
		if !replaced {
			existing = append(existing, item)
		}
		r.byTournament[item.TournamentID] = existing
	}
	return nil
}

type stubStandingRepo struct {
	byTournament map[string][]standings.Standing
}

func newStubStandingRepo() *stubStandingRepo {
	return &stubStandingRepo{byTournament: make(map[string][]standings.Standing)}
}

func (r *stubStandingRepo) ListByTournament(_ context.Context, tournamentID string) ([]standings.Standing, error) {
	return r.byTournament[tournamentID], nil
}

func (r *stubStandingRepo) ReplaceByTournament(_ context.Context, tournamentID string, rows []standings.Standing) error {
	r.byTournament[tournamentID] = rows
	return nil
}

type stubStatsRepo struct {
	byTournament map[string][]playerstats.TeamStats
}

func newStubStatsRepo() *stubStatsRepo {
	return &stubStatsRepo{byTournament: make(map[string][]playerstats.TeamStats)}
}

func (r *stubStatsRepo) ListByTournament(_ context.Context, tournamentID string) ([]playerstats.TeamStats, error) {
	return r.byTournament[tournamentID], nil
}

func (r *stubStatsRepo) ReplaceByTournament(_ context.Context, tournamentID string, items []playerstats.TeamStats) error {
	r.byTournament[tournamentID] = items
	return nil
}
