package memory

import (
	"context"
	"sync"

	"github.com/sevens-series/tournament-api/internal/domain/standings"
)

type StandingsRepository struct {
	mu   sync.RWMutex
	rows map[string][]standings.Standing
}

func NewStandingsRepository(rows []standings.Standing) *StandingsRepository {
	r := &StandingsRepository{rows: make(map[string][]standings.Standing)}
	for _, row := range rows {
		r.rows[row.TournamentID] = append(r.rows[row.TournamentID], row)
	}

	return r
}

func (r *StandingsRepository) ListByTournament(_ context.Context, tournamentID string) ([]standings.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standings.Standing, len(r.rows[tournamentID]))
	copy(out, r.rows[tournamentID])

	return out, nil
}

func (r *StandingsRepository) ReplaceByTournament(_ context.Context, tournamentID string, rows []standings.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]standings.Standing, len(rows))
	copy(next, rows)
	r.rows[tournamentID] = next

	return nil
}
