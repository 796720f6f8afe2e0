package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	"github.com/sevens-series/tournament-api/internal/platform/logging"
)

type SyncConfig struct {
	Enabled      bool
	StatsWorkers int
}

// SyncReport summarizes one sync run for the job endpoint response.
type SyncReport struct {
	Tournaments   int      `json:"tournaments"`
	Teams         int      `json:"teams"`
	Matches       int      `json:"matches"`
	StandingsRows int      `json:"standingsRows"`
	StatTeams     int      `json:"statTeams"`
	Failures      []string `json:"failures,omitempty"`
}

// SyncService pulls the content repository and the results feed and writes a
// reconciled copy into the repositories the read services serve from. The CMS
// is authoritative for editorial data (titles, groups, placeholder fixtures);
// the feed is authoritative for anything decided on the pitch.
type SyncService struct {
	feed           MatchFeedProvider
	content        ContentProvider
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	matchRepo      match.Repository
	standingRepo   standings.Repository
	statsRepo      playerstats.Repository
	cfg            SyncConfig
	logger         *logging.Logger
}

func NewSyncService(
	feed MatchFeedProvider,
	content ContentProvider,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	standingRepo standings.Repository,
	statsRepo playerstats.Repository,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.StatsWorkers <= 0 {
		cfg.StatsWorkers = 4
	}
	return &SyncService{
		feed:           feed,
		content:        content,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		statsRepo:      statsRepo,
		cfg:            cfg,
		logger:         logger,
	}
}

// SyncAll refreshes every tournament the CMS knows about. A tournament that
// fails to sync is reported and skipped; the rest still complete.
func (s *SyncService) SyncAll(ctx context.Context) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	if !s.cfg.Enabled {
		return SyncReport{}, fmt.Errorf("%w: data sync is disabled (SYNC_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.feed == nil || s.content == nil {
		return SyncReport{}, fmt.Errorf("%w: data sync providers are not fully configured", ErrDependencyUnavailable)
	}

	docs, err := s.content.FetchTournaments(ctx)
	if err != nil {
		return SyncReport{}, fmt.Errorf("fetch tournaments from cms: %w", err)
	}

	tournaments := make([]tournament.Tournament, 0, len(docs))
	for _, doc := range docs {
		mapped := mapTournamentDoc(doc)
		if err := mapped.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip malformed tournament document", "tournament_id", doc.ID, "error", err)
			continue
		}
		tournaments = append(tournaments, mapped)
	}
	if err := s.tournamentRepo.UpsertTournaments(ctx, tournaments); err != nil {
		return SyncReport{}, fmt.Errorf("upsert tournaments: %w", err)
	}

	report := SyncReport{Tournaments: len(tournaments)}
	for _, item := range tournaments {
		if err := s.syncTournament(ctx, item, &report); err != nil {
			s.logger.ErrorContext(ctx, "tournament sync failed", "tournament_id", item.ID, "error", err)
			report.Failures = append(report.Failures, fmt.Sprintf("tournament=%s: %v", item.ID, err))
		}
	}
	return report, nil
}

func (s *SyncService) syncTournament(ctx context.Context, doc tournament.Tournament, report *SyncReport) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.syncTournament")
	defer span.End()

	feedEnabled := doc.FeedCompetitionID != "" && doc.FeedSeasonID != ""

	var (
		teamDocs  []ExternalTeamDoc
		matchDocs []ExternalMatchDoc
		results   []ExternalMatchResult
		feedRows  []ExternalStandingRow
		squads    []ExternalSquad
	)

	fetchers := pool.New().WithContext(ctx)
	fetchers.Go(func(ctx context.Context) error {
		var err error
		teamDocs, err = s.content.FetchTeams(ctx, doc.ID)
		return err
	})
	fetchers.Go(func(ctx context.Context) error {
		var err error
		matchDocs, err = s.content.FetchMatches(ctx, doc.ID)
		return err
	})
	if feedEnabled {
		fetchers.Go(func(ctx context.Context) error {
			var err error
			results, err = s.feed.FetchMatchResults(ctx, doc.FeedCompetitionID, doc.FeedSeasonID)
			return err
		})
		fetchers.Go(func(ctx context.Context) error {
			var err error
			feedRows, err = s.feed.FetchStandings(ctx, doc.FeedCompetitionID, doc.FeedSeasonID)
			return err
		})
		fetchers.Go(func(ctx context.Context) error {
			var err error
			squads, err = s.feed.FetchSquads(ctx, doc.FeedCompetitionID, doc.FeedSeasonID)
			return err
		})
	}
	if err := fetchers.Wait(); err != nil {
		return err
	}

	teams := buildTeams(doc, teamDocs, squads)
	if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	report.Teams += len(teams)

	matches := mergeMatches(doc, matchDocs, results)
	if err := s.matchRepo.UpsertMatches(ctx, matches); err != nil {
		return fmt.Errorf("upsert matches: %w", err)
	}
	report.Matches += len(matches)

	rows := mapFeedStandings(doc.ID, feedRows)
	if err := s.standingRepo.ReplaceByTournament(ctx, doc.ID, rows); err != nil {
		return fmt.Errorf("replace standings: %w", err)
	}
	report.StandingsRows += len(rows)

	if feedEnabled {
		statTeams, err := s.collectTeamStats(ctx, doc, squads)
		if err != nil {
			return err
		}
		if err := s.statsRepo.ReplaceByTournament(ctx, doc.ID, statTeams); err != nil {
			return fmt.Errorf("replace player stats: %w", err)
		}
		report.StatTeams += len(statTeams)
	}
	return nil
}

// collectTeamStats fans one season-stats request per squad out over a bounded
// worker pool. A team whose document fails to download is logged and skipped;
// leaderboards degrade per team instead of disappearing wholesale.
func (s *SyncService) collectTeamStats(ctx context.Context, doc tournament.Tournament, squads []ExternalSquad) ([]playerstats.TeamStats, error) {
	workers, err := ants.NewPool(s.cfg.StatsWorkers)
	if err != nil {
		return nil, fmt.Errorf("create stats worker pool: %w", err)
	}
	defer workers.Release()

	var (
		mu        sync.Mutex
		collected = make([]playerstats.TeamStats, 0, len(squads))
		waiter    sync.WaitGroup
	)
	for _, squad := range squads {
		squad := squad
		waiter.Add(1)
		if err := workers.Submit(func() {
			defer waiter.Done()

			stats, fetchErr := s.feed.FetchTeamSeasonStats(ctx, doc.FeedCompetitionID, doc.FeedSeasonID, squad.TeamRef)
			if fetchErr != nil {
				s.logger.WarnContext(ctx, "skip season stats for team",
					"tournament_id", doc.ID,
					"team_ref", squad.TeamRef,
					"error", fetchErr,
				)
				return
			}

			mapped := mapTeamSeasonStats(squad, stats)
			mu.Lock()
			collected = append(collected, mapped)
			mu.Unlock()
		}); err != nil {
			waiter.Done()
			return nil, fmt.Errorf("submit stats task team=%s: %w", squad.TeamRef, err)
		}
	}
	waiter.Wait()

	return collected, nil
}

func mapTournamentDoc(doc ExternalTournamentDoc) tournament.Tournament {
	return tournament.Tournament{
		ID:                doc.ID,
		Title:             doc.Title,
		Season:            doc.Season,
		Venue:             doc.Venue,
		Groups:            doc.Groups,
		FeedCompetitionID: doc.FeedCompetitionID,
		FeedSeasonID:      doc.FeedSeasonID,
		IsCurrent:         doc.IsCurrent,
	}
}

func buildTeams(doc tournament.Tournament, teamDocs []ExternalTeamDoc, squads []ExternalSquad) []team.Team {
	shortNames := make(map[string]string, len(squads))
	for _, squad := range squads {
		shortNames[match.NormalizeRef(squad.TeamRef)] = squad.ShortName
	}

	out := make([]team.Team, 0, len(teamDocs))
	for _, item := range teamDocs {
		id := match.NormalizeRef(item.FeedRef)
		if id == "" {
			id = item.ID
		}
		out = append(out, team.Team{
			ID:            id,
			TournamentID:  doc.ID,
			Name:          item.Name,
			ShortName:     item.ShortName,
			FeedShortName: shortNames[id],
			Group:         item.Group,
			CrestURL:      item.CrestURL,
		})
	}
	return out
}

// mergeMatches builds the fixture list from the editorial schedule and lays
// feed results over it by normalized ref. Fixtures only the feed knows about
// are appended; dropping them would hide real results from the standings.
func mergeMatches(doc tournament.Tournament, matchDocs []ExternalMatchDoc, results []ExternalMatchResult) []match.Match {
	resultsByRef := make(map[string]ExternalMatchResult, len(results))
	for _, result := range results {
		resultsByRef[match.NormalizeRef(result.Ref)] = result
	}

	out := make([]match.Match, 0, len(matchDocs)+len(results))
	seen := make(map[string]bool, len(matchDocs))
	for _, item := range matchDocs {
		merged := match.Match{
			ID:           item.ID,
			TournamentID: doc.ID,
			Stage:        item.Stage,
			Group:        item.Group,
			MatchNumber:  item.MatchNumber,
			HomeName:     item.HomeName,
			AwayName:     item.AwayName,
			KickoffUTC:   item.KickoffUTC,
			Status:       match.StatusScheduled,
		}
		if ref := match.NormalizeRef(item.FeedRef); ref != "" {
			merged.ID = ref
			if result, ok := resultsByRef[ref]; ok {
				applyResult(&merged, result)
			}
		}
		seen[merged.ID] = true
		out = append(out, merged)
	}

	for _, result := range results {
		ref := match.NormalizeRef(result.Ref)
		if seen[ref] {
			continue
		}
		merged := match.Match{
			ID:           ref,
			TournamentID: doc.ID,
			Stage:        result.Stage,
			Group:        result.Group,
			MatchNumber:  result.MatchNumber,
			HomeName:     result.HomeName,
			AwayName:     result.AwayName,
			KickoffUTC:   result.KickoffUTC,
			Status:       match.StatusScheduled,
		}
		applyResult(&merged, result)
		out = append(out, merged)
	}
	return out
}

func applyResult(target *match.Match, result ExternalMatchResult) {
	target.HomeTeamID = match.NormalizeRef(result.HomeRef)
	target.AwayTeamID = match.NormalizeRef(result.AwayRef)
	if result.HomeName != "" {
		target.HomeName = result.HomeName
	}
	if result.AwayName != "" {
		target.AwayName = result.AwayName
	}
	if !result.KickoffUTC.IsZero() {
		target.KickoffUTC = result.KickoffUTC
	}
	target.Status = match.NormalizeStatus(result.Status)
	target.HomeScore = result.HomeScore
	target.AwayScore = result.AwayScore
	target.Penalties = result.Penalties

	// The feed only names a winner when the scoreline alone cannot, so a
	// regular-time win derives its winner here.
	target.WinnerTeamID = match.NormalizeRef(result.WinnerRef)
	if target.WinnerTeamID == "" && result.HomeScore != nil && result.AwayScore != nil {
		switch {
		case *result.HomeScore > *result.AwayScore:
			target.WinnerTeamID = target.HomeTeamID
		case *result.AwayScore > *result.HomeScore:
			target.WinnerTeamID = target.AwayTeamID
		}
	}
}

func mapFeedStandings(tournamentID string, rows []ExternalStandingRow) []standings.Standing {
	out := make([]standings.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Standing{
			TournamentID:    tournamentID,
			Group:           row.Group,
			TeamID:          match.NormalizeRef(row.TeamRef),
			Position:        row.Position,
			Played:          row.Played,
			Won:             row.Won,
			Drawn:           row.Drawn,
			Lost:            row.Lost,
			GoalsFor:        row.GoalsFor,
			GoalsAgainst:    row.GoalsAgainst,
			GoalDifference:  row.GoalsFor - row.GoalsAgainst,
			Points:          row.Points,
			FromFeed:        true,
			SourceUpdatedAt: row.SourceUpdatedAt,
		})
	}
	return out
}

// mapTeamSeasonStats translates feed stat names into the site's normalized
// keys. Unmapped names are dropped here so the read path never sees them.
func mapTeamSeasonStats(squad ExternalSquad, stats ExternalTeamSeasonStats) playerstats.TeamStats {
	out := playerstats.TeamStats{
		TeamRef:  match.NormalizeRef(firstNonEmptyString(stats.TeamRef, squad.TeamRef)),
		TeamName: firstNonEmptyString(stats.TeamName, squad.TeamName),
		Players:  make([]playerstats.PlayerStats, 0, len(stats.Players)),
	}
	for _, player := range stats.Players {
		values := make(map[string]float64, len(player.Stats))
		for name, value := range player.Stats {
			if key, ok := playerstats.NormalizeStatName(name); ok {
				values[key] = value
			}
		}
		out.Players = append(out.Players, playerstats.PlayerStats{
			PlayerRef: match.NormalizeRef(player.PlayerRef),
			FirstName: player.FirstName,
			LastName:  player.LastName,
			Position:  player.Position,
			Values:    values,
		})
	}
	return out
}

func firstNonEmptyString(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
