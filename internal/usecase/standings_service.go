package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

// GroupTable is one group's table ready for display. FromFeed marks rows
// copied verbatim from the data feed; otherwise the table was computed from
// the finished results on record.
type GroupTable struct {
	Group    string
	FromFeed bool
	Rows     []standings.Standing
}

type StandingsService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	standingRepo   standings.Repository
}

func NewStandingsService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	standingRepo standings.Repository,
) *StandingsService {
	return &StandingsService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
	}
}

// GetStandings returns one table per group in the tournament's configured
// group order. Feed-published rows win over computed ones when both exist;
// the feed table carries official tie-break decisions the site cannot derive
// from scores alone.
func (s *StandingsService) GetStandings(ctx context.Context, tournamentID string) ([]GroupTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.GetStandings")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	doc, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%s", ErrNotFound, tournamentID)
	}

	feedRows, err := s.standingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list feed standings: %w", err)
	}
	feedByGroup := make(map[string][]standings.Standing, len(doc.Groups))
	for _, row := range feedRows {
		feedByGroup[row.Group] = append(feedByGroup[row.Group], row)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	tables := make([]GroupTable, 0, len(doc.Groups))
	for _, group := range doc.Groups {
		if rows := feedByGroup[group]; len(rows) > 0 {
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
			tables = append(tables, GroupTable{Group: group, FromFeed: true, Rows: rows})
			continue
		}
		rows := standings.RankRecords(tournamentID, group, standings.Aggregate(matches, group))
		tables = append(tables, GroupTable{Group: group, Rows: rows})
	}
	return tables, nil
}
