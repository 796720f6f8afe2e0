package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/sevens-series/tournament-api/external/opta"
	"github.com/sevens-series/tournament-api/external/prismic"
	"github.com/sevens-series/tournament-api/internal/config"
	"github.com/sevens-series/tournament-api/internal/domain/match"
	"github.com/sevens-series/tournament-api/internal/domain/playerstats"
	"github.com/sevens-series/tournament-api/internal/domain/standings"
	"github.com/sevens-series/tournament-api/internal/domain/team"
	"github.com/sevens-series/tournament-api/internal/domain/tournament"
	cacherepo "github.com/sevens-series/tournament-api/internal/infrastructure/repository/cache"
	"github.com/sevens-series/tournament-api/internal/infrastructure/repository/memory"
	"github.com/sevens-series/tournament-api/internal/infrastructure/repository/postgres"
	"github.com/sevens-series/tournament-api/internal/interfaces/httpapi"
	basecache "github.com/sevens-series/tournament-api/internal/platform/cache"
	"github.com/sevens-series/tournament-api/internal/platform/logging"
	"github.com/sevens-series/tournament-api/internal/platform/resilience"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

type repositories struct {
	tournaments tournament.Repository
	teams       team.Repository
	matches     match.Repository
	standings   standings.Repository
	playerStats playerstats.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repositories{
			tournaments: cacherepo.NewTournamentRepository(repos.tournaments, store),
			teams:       cacherepo.NewTeamRepository(repos.teams, store),
			matches:     cacherepo.NewMatchRepository(repos.matches, store),
			standings:   cacherepo.NewStandingsRepository(repos.standings, store),
			playerStats: cacherepo.NewPlayerStatsRepository(repos.playerStats, store),
		}
	}

	tournamentSvc := usecase.NewTournamentService(repos.tournaments)
	scheduleSvc := usecase.NewScheduleService(repos.tournaments, repos.matches, repos.teams, repos.standings, cfg.ScheduleLocation)
	standingsSvc := usecase.NewStandingsService(repos.tournaments, repos.matches, repos.standings)
	leaderboardSvc := usecase.NewLeaderboardService(repos.tournaments, repos.playerStats)
	syncSvc := usecase.NewSyncService(
		buildFeedProvider(cfg, logger),
		buildContentProvider(cfg, logger),
		repos.tournaments,
		repos.teams,
		repos.matches,
		repos.standings,
		repos.playerStats,
		usecase.SyncConfig{
			Enabled:      cfg.SyncEnabled,
			StatsWorkers: cfg.SyncStatsWorkers,
		},
		logger,
	)

	handler := httpapi.NewHandler(tournamentSvc, scheduleSvc, standingsSvc, leaderboardSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildRepositories picks the storage backend. Without DB_URL the service
// runs entirely from the in-memory demo dataset.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("storage backend", "driver", "memory", "reason", "DB_URL empty")
		return repositories{
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			standings:   memory.NewStandingsRepository(nil),
			playerStats: memory.NewPlayerStatsRepository(memory.SeedTeamStats(), memory.TournamentIDLondon2026),
		}, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, err
	}
	logger.Info("storage backend", "driver", "postgres", "database", dbNameFromURL(cfg.DBURL))

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
		return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
	}

	return repositories{
		tournaments: postgres.NewTournamentRepository(db),
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		standings:   postgres.NewStandingsRepository(db),
		playerStats: postgres.NewPlayerStatsRepository(db),
	}, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func buildFeedProvider(cfg config.Config, logger *logging.Logger) usecase.MatchFeedProvider {
	if !cfg.OptaEnabled {
		return nil
	}

	return opta.NewClient(opta.ClientConfig{
		BaseURL:    cfg.OptaBaseURL,
		APIKey:     cfg.OptaAPIKey,
		Timeout:    cfg.OptaTimeout,
		MaxRetries: cfg.OptaMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OptaCircuitEnabled,
			FailureThreshold: cfg.OptaCircuitFailureCount,
			OpenTimeout:      cfg.OptaCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OptaCircuitHalfOpenMaxReq,
		},
	})
}

func buildContentProvider(cfg config.Config, logger *logging.Logger) usecase.ContentProvider {
	if strings.TrimSpace(cfg.PrismicRepositoryURL) == "" {
		return nil
	}

	return prismic.NewClient(prismic.ClientConfig{
		RepositoryURL: cfg.PrismicRepositoryURL,
		AccessToken:   cfg.PrismicAccessToken,
		Timeout:       cfg.PrismicTimeout,
		Logger:        logger,
	})
}
