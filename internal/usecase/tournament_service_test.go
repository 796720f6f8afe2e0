package usecase

import (
	"context"
	"testing"

	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	"github.com/stretchr/testify/require"
)

func TestListTournaments_Ordering(t *testing.T) {
	t.Parallel()

	repo := &stubTournamentRepo{items: map[string]tournament.Tournament{
		"lisbon-2025": {ID: "lisbon-2025", Title: "Lisbon 2025", Season: "2025"},
		"london-2026": {ID: "london-2026", Title: "London 2026", Season: "2026", IsCurrent: true},
		"milan-2024":  {ID: "milan-2024", Title: "Milan 2024", Season: "2024"},
	}}

	got, err := NewTournamentService(repo).ListTournaments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "london-2026", got[0].ID, "current tournament must lead")
	require.Equal(t, "lisbon-2025", got[1].ID)
	require.Equal(t, "milan-2024", got[2].ID)
}

func TestGetTournament_Validation(t *testing.T) {
	t.Parallel()

	repo := &stubTournamentRepo{items: map[string]tournament.Tournament{
		"london-2026": {ID: "london-2026", Title: "London 2026"},
	}}
	svc := NewTournamentService(repo)

	_, err := svc.GetTournament(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetTournament(context.Background(), "unknown")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetTournament(context.Background(), "london-2026")
	require.NoError(t, err)
	require.Equal(t, "London 2026", got.Title)
}
