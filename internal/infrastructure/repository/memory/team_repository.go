package memory

import (
	"context"
	"sync"

	"github.com/sevens-series/tournament-api/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]map[string]team.Team
	orders map[string][]string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		items:  make(map[string]map[string]team.Team),
		orders: make(map[string][]string),
	}
	for _, t := range teams {
		r.put(t)
	}

	return r
}

func (r *TeamRepository) put(t team.Team) {
	byID, ok := r.items[t.TournamentID]
	if !ok {
		byID = make(map[string]team.Team)
		r.items[t.TournamentID] = byID
	}
	if _, exists := byID[t.ID]; !exists {
		r.orders[t.TournamentID] = append(r.orders[t.TournamentID], t.ID)
	}
	byID[t.ID] = t
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.orders[tournamentID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[tournamentID][id])
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, tournamentID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[tournamentID][teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range items {
		r.put(t)
	}

	return nil
}
