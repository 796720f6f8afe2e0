package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sevens-series/tournament-api/internal/domain/bracket"
	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
)

// ScheduleService serves the fixture list grouped by local calendar day and
// single match lookups. Bracket placeholder names ("Group 1 Winner") are
// swapped for real team names as soon as the results on record decide them.
type ScheduleService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	teamRepo       team.Repository
	standingRepo   standings.Repository
	loc            *time.Location
}

func NewScheduleService(
	tournamentRepo tournament.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	standingRepo standings.Repository,
	loc *time.Location,
) *ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		standingRepo:   standingRepo,
		loc:            loc,
	}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, tournamentID string) ([]match.DayGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetSchedule")
	defer span.End()

	matches, err := s.loadResolvedMatches(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return match.GroupByDate(matches, s.loc), nil
}

// GetMatches lists the tournament's fixtures, optionally narrowed to one
// stage. An unknown stage name is an input error rather than an empty list.
func (s *ScheduleService) GetMatches(ctx context.Context, tournamentID, stage string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetMatches")
	defer span.End()

	matches, err := s.loadResolvedMatches(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	stage = strings.TrimSpace(stage)
	switch stage {
	case "":
		return matches, nil
	case match.StageGroup:
		return match.GroupStage(matches), nil
	case match.StageSemiFinal:
		return match.SemiFinals(matches), nil
	case match.StageThirdPlace:
		return match.ThirdPlace(matches), nil
	case match.StageFinal:
		return match.Finals(matches), nil
	default:
		return nil, fmt.Errorf("%w: unknown stage=%s", ErrInvalidInput, stage)
	}
}

func (s *ScheduleService) GetMatch(ctx context.Context, tournamentID, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetMatch")
	defer span.End()

	matchID = match.NormalizeRef(strings.TrimSpace(matchID))
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	matches, err := s.loadResolvedMatches(ctx, tournamentID)
	if err != nil {
		return match.Match{}, err
	}
	for _, item := range matches {
		if item.ID == matchID {
			return item, nil
		}
	}
	return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
}

func (s *ScheduleService) loadResolvedMatches(ctx context.Context, tournamentID string) ([]match.Match, error) {
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

	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	feedRows, err := s.standingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list feed standings: %w", err)
	}

	return resolveBracketNames(doc, matches, teams, feedRows), nil
}

// resolveBracketNames fills knockout sides whose team is still a placeholder.
// Resolution is recomputed from the results on record every time, so a
// corrected score upstream never leaves a stale name behind.
func resolveBracketNames(doc tournament.Tournament, matches []match.Match, teams []team.Team, feedRows []standings.Standing) []match.Match {
	feedByGroup := make(map[string][]standings.Standing, len(doc.Groups))
	for _, row := range feedRows {
		feedByGroup[row.Group] = append(feedByGroup[row.Group], row)
	}

	// A group feeds the bracket only once every one of its matches is
	// finished; a leader after two of three games is not a group winner.
	// The feed's published table decides positions when it exists, since it
	// carries official tie-break outcomes a recomputed table cannot know.
	tables := make(map[string][]standings.Standing, len(doc.Groups))
	for _, group := range doc.Groups {
		if !groupComplete(matches, group) {
			continue
		}
		if rows := feedByGroup[group]; len(rows) > 0 {
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
			tables[group] = rows
			continue
		}
		tables[group] = standings.RankRecords(doc.ID, group, standings.Aggregate(matches, group))
	}

	namesByID := make(map[string]string, len(teams))
	for _, item := range teams {
		namesByID[item.ID] = item.Name
	}

	out := make([]match.Match, len(matches))
	copy(out, matches)
	for idx := range out {
		if out[idx].HomeTeamID == "" {
			if teamID := bracket.Resolve(out[idx].HomeName, matches, tables); teamID != "" {
				out[idx].HomeTeamID = teamID
				if name := namesByID[teamID]; name != "" {
					out[idx].HomeName = name
				}
			}
		}
		if out[idx].AwayTeamID == "" {
			if teamID := bracket.Resolve(out[idx].AwayName, matches, tables); teamID != "" {
				out[idx].AwayTeamID = teamID
				if name := namesByID[teamID]; name != "" {
					out[idx].AwayName = name
				}
			}
		}
	}
	return out
}

func groupComplete(matches []match.Match, group string) bool {
	total := 0
	for _, m := range matches {
		if m.Stage != match.StageGroup || m.Group != group {
			continue
		}
		total++
		if !match.IsFinishedStatus(m.Status) {
			return false
		}
	}
	return total > 0
}
