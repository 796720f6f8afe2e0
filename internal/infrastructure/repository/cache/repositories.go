package cache

import (
	"context"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	basecache "github.com/sevens-series/tournament-api/internal/platform/cache"
)

// Read-through decorators over the persistence repositories. Sync writes
// invalidate by key prefix so public reads pick up fresh data on the next
// request instead of waiting out the TTL.

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	v, err := r.cache.GetOrLoad(ctx, "tournament:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]tournament.Tournament(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]tournament.Tournament)
	return append([]tournament.Tournament(nil), items...), nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	key := "tournament:id:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	cached, _ := v.(cachedTournamentByID)
	return cached.value, cached.exists, nil
}

func (r *TournamentRepository) UpsertTournaments(ctx context.Context, items []tournament.Tournament) error {
	if err := r.next.UpsertTournaments(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "tournament:")
	return nil
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID string) ([]team.Team, error) {
	key := "team:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	key := "team:id:" + tournamentID + ":" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertTeams(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID string) ([]match.Match, error) {
	key := "match:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	key := "match:id:" + tournamentID + ":" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, items []match.Match) error {
	if err := r.next.UpsertMatches(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

type StandingsRepository struct {
	next  standings.Repository
	cache *basecache.Store
}

func NewStandingsRepository(next standings.Repository, cache *basecache.Store) *StandingsRepository {
	return &StandingsRepository{next: next, cache: cache}
}

func (r *StandingsRepository) ListByTournament(ctx context.Context, tournamentID string) ([]standings.Standing, error) {
	key := "standings:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]standings.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standings.Standing)
	return append([]standings.Standing(nil), items...), nil
}

func (r *StandingsRepository) ReplaceByTournament(ctx context.Context, tournamentID string, rows []standings.Standing) error {
	if err := r.next.ReplaceByTournament(ctx, tournamentID, rows); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "standings:")
	return nil
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListByTournament(ctx context.Context, tournamentID string) ([]playerstats.TeamStats, error) {
	key := "playerstats:list:" + tournamentID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.TeamStats(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.TeamStats)
	return append([]playerstats.TeamStats(nil), items...), nil
}

func (r *PlayerStatsRepository) ReplaceByTournament(ctx context.Context, tournamentID string, items []playerstats.TeamStats) error {
	if err := r.next.ReplaceByTournament(ctx, tournamentID, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "playerstats:")
	return nil
}
