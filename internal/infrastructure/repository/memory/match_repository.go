package memory

import (
	"context"
	"sync"

	"github.com/sevens-series/tournament-api/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]map[string]match.Match
	orders map[string][]string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{
		items:  make(map[string]map[string]match.Match),
		orders: make(map[string][]string),
	}
	for _, m := range matches {
		r.put(m)
	}

	return r
}

func (r *MatchRepository) put(m match.Match) {
	byID, ok := r.items[m.TournamentID]
	if !ok {
		byID = make(map[string]match.Match)
		r.items[m.TournamentID] = byID
	}
	if _, exists := byID[m.ID]; !exists {
		r.orders[m.TournamentID] = append(r.orders[m.TournamentID], m.ID)
	}
	byID[m.ID] = m
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.orders[tournamentID]
	out := make([]match.Match, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[tournamentID][id])
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, tournamentID, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[tournamentID][matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) UpsertMatches(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range items {
		r.put(m)
	}

	return nil
}
