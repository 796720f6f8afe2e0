package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_OptaRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("OPTA_ENABLED", "true")
	t.Setenv("OPTA_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when OPTA_ENABLED=true without OPTA_API_KEY")
	}
}

func TestLoad_OptaConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("OPTA_ENABLED", "true")
	t.Setenv("OPTA_API_KEY", "key-123")
	t.Setenv("OPTA_BASE_URL", "https://feeds.example.org/soccerdata")
	t.Setenv("OPTA_TIMEOUT", "7s")
	t.Setenv("OPTA_MAX_RETRIES", "3")
	t.Setenv("OPTA_CIRCUIT_FAILURE_COUNT", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.OptaEnabled {
		t.Fatalf("expected OptaEnabled=true")
	}
	if cfg.OptaBaseURL != "https://feeds.example.org/soccerdata" {
		t.Fatalf("unexpected OptaBaseURL: %q", cfg.OptaBaseURL)
	}
	if cfg.OptaAPIKey != "key-123" {
		t.Fatalf("unexpected OptaAPIKey")
	}
	if cfg.OptaTimeout != 7*time.Second {
		t.Fatalf("unexpected OptaTimeout: %s", cfg.OptaTimeout)
	}
	if cfg.OptaMaxRetries != 3 {
		t.Fatalf("unexpected OptaMaxRetries: %d", cfg.OptaMaxRetries)
	}
	if cfg.OptaCircuitFailureCount != 9 {
		t.Fatalf("unexpected OptaCircuitFailureCount: %d", cfg.OptaCircuitFailureCount)
	}
}

func TestLoad_SyncRequiresFeedAndCMS(t *testing.T) {
	t.Run("missing prismic repository", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SYNC_ENABLED", "true")
		t.Setenv("PRISMIC_REPOSITORY_URL", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SYNC_ENABLED=true without PRISMIC_REPOSITORY_URL")
		}
	})

	t.Run("missing feed", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SYNC_ENABLED", "true")
		t.Setenv("PRISMIC_REPOSITORY_URL", "https://sevens.cdn.prismic.io/api/v2")
		t.Setenv("OPTA_ENABLED", "false")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SYNC_ENABLED=true without OPTA_ENABLED=true")
		}
	})

	t.Run("missing internal job token", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SYNC_ENABLED", "true")
		t.Setenv("PRISMIC_REPOSITORY_URL", "https://sevens.cdn.prismic.io/api/v2")
		t.Setenv("OPTA_ENABLED", "true")
		t.Setenv("OPTA_API_KEY", "key-123")
		t.Setenv("INTERNAL_JOB_TOKEN", "")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error when SYNC_ENABLED=true without INTERNAL_JOB_TOKEN")
		}
	})
}

func TestLoad_ScheduleTimezone(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ScheduleTimezone != "Europe/London" {
			t.Fatalf("unexpected ScheduleTimezone: %q", cfg.ScheduleTimezone)
		}
		if cfg.ScheduleLocation == nil {
			t.Fatalf("expected ScheduleLocation to be loaded")
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SCHEDULE_TIMEZONE", "Atlantis/Nowhere")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown SCHEDULE_TIMEZONE")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_SyncStatsWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SYNC_STATS_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SYNC_STATS_WORKERS < 1")
	}
}
