package memory

import (
	"context"
	"sync"

	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[string]tournament.Tournament
	orders []string
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	r := &TournamentRepository{
		items: make(map[string]tournament.Tournament, len(tournaments)),
	}
	for _, t := range tournaments {
		r.items[t.ID] = t
		r.orders = append(r.orders, t.ID)
	}

	return r
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tournamentID]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return t, true, nil
}

func (r *TournamentRepository) UpsertTournaments(_ context.Context, items []tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range items {
		if _, ok := r.items[t.ID]; !ok {
			r.orders = append(r.orders, t.ID)
		}
		r.items[t.ID] = t
	}

	return nil
}
