package memory

import (
	"context"
	"sync"

	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu    sync.RWMutex
	items map[string][]playerstats.TeamStats
}

func NewPlayerStatsRepository(items []playerstats.TeamStats, tournamentID string) *PlayerStatsRepository {
	r := &PlayerStatsRepository{items: make(map[string][]playerstats.TeamStats)}
	if tournamentID != "" && len(items) > 0 {
		r.items[tournamentID] = items
	}

	return r
}

func (r *PlayerStatsRepository) ListByTournament(_ context.Context, tournamentID string) ([]playerstats.TeamStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.TeamStats, len(r.items[tournamentID]))
	copy(out, r.items[tournamentID])

	return out, nil
}

func (r *PlayerStatsRepository) ReplaceByTournament(_ context.Context, tournamentID string, items []playerstats.TeamStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]playerstats.TeamStats, len(items))
	copy(next, items)
	r.items[tournamentID] = next

	return nil
}
