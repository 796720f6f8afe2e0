package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sevens-series/tournament-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	OptaEnabled                bool
	OptaBaseURL                string
	OptaAPIKey                 string
	OptaTimeout                time.Duration
	OptaMaxRetries             int
	OptaCircuitEnabled         bool
	OptaCircuitFailureCount    int
	OptaCircuitOpenTimeout     time.Duration
	OptaCircuitHalfOpenMaxReq  int
	PrismicRepositoryURL       string
	PrismicAccessToken         string
	PrismicTimeout             time.Duration
	SyncEnabled                bool
	SyncStatsWorkers           int
	ScheduleTimezone           string
	ScheduleLocation           *time.Location
	InternalJobToken           string
	LogLevel                   logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	optaEnabled, err := strconv.ParseBool(getEnv("OPTA_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_ENABLED: %w", err)
	}
	optaTimeout, err := time.ParseDuration(getEnv("OPTA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_TIMEOUT: %w", err)
	}
	if optaTimeout <= 0 {
		return Config{}, fmt.Errorf("OPTA_TIMEOUT must be > 0")
	}
	optaMaxRetries, err := getEnvAsInt("OPTA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_MAX_RETRIES: %w", err)
	}
	if optaMaxRetries < 0 {
		return Config{}, fmt.Errorf("OPTA_MAX_RETRIES must be >= 0")
	}
	optaCircuitEnabled, err := strconv.ParseBool(getEnv("OPTA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_CIRCUIT_ENABLED: %w", err)
	}
	optaCircuitFailureCount, err := getEnvAsInt("OPTA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if optaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("OPTA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	optaCircuitOpenTimeout, err := time.ParseDuration(getEnv("OPTA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if optaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("OPTA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	optaCircuitHalfOpenMaxReq, err := getEnvAsInt("OPTA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse OPTA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if optaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("OPTA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	optaBaseURL := strings.TrimSpace(getEnv("OPTA_BASE_URL", "https://api.performfeeds.example.com/soccerdata"))
	optaAPIKey := strings.TrimSpace(getEnv("OPTA_API_KEY", ""))
	if optaEnabled && optaAPIKey == "" {
		return Config{}, fmt.Errorf("OPTA_API_KEY is required when OPTA_ENABLED=true")
	}

	prismicTimeout, err := time.ParseDuration(getEnv("PRISMIC_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PRISMIC_TIMEOUT: %w", err)
	}
	if prismicTimeout <= 0 {
		return Config{}, fmt.Errorf("PRISMIC_TIMEOUT must be > 0")
	}
	prismicRepositoryURL := strings.TrimSpace(getEnv("PRISMIC_REPOSITORY_URL", ""))

	syncEnabled, err := strconv.ParseBool(getEnv("SYNC_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_ENABLED: %w", err)
	}
	syncStatsWorkers, err := getEnvAsInt("SYNC_STATS_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_STATS_WORKERS: %w", err)
	}
	if syncStatsWorkers < 1 {
		return Config{}, fmt.Errorf("SYNC_STATS_WORKERS must be >= 1")
	}
	internalJobToken := strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", ""))
	if syncEnabled {
		if prismicRepositoryURL == "" {
			return Config{}, fmt.Errorf("PRISMIC_REPOSITORY_URL is required when SYNC_ENABLED=true")
		}
		if !optaEnabled {
			return Config{}, fmt.Errorf("OPTA_ENABLED=true is required when SYNC_ENABLED=true")
		}
		if internalJobToken == "" {
			return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when SYNC_ENABLED=true")
		}
	}

	scheduleTimezone := strings.TrimSpace(getEnv("SCHEDULE_TIMEZONE", "Europe/London"))
	scheduleLocation, err := time.LoadLocation(scheduleTimezone)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULE_TIMEZONE: %w", err)
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "tournament-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      getEnv("DB_URL", ""),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		OptaEnabled:                optaEnabled,
		OptaBaseURL:                optaBaseURL,
		OptaAPIKey:                 optaAPIKey,
		OptaTimeout:                optaTimeout,
		OptaMaxRetries:             optaMaxRetries,
		OptaCircuitEnabled:         optaCircuitEnabled,
		OptaCircuitFailureCount:    optaCircuitFailureCount,
		OptaCircuitOpenTimeout:     optaCircuitOpenTimeout,
		OptaCircuitHalfOpenMaxReq:  optaCircuitHalfOpenMaxReq,
		PrismicRepositoryURL:       prismicRepositoryURL,
		PrismicAccessToken:         strings.TrimSpace(getEnv("PRISMIC_ACCESS_TOKEN", "")),
		PrismicTimeout:             prismicTimeout,
		SyncEnabled:                syncEnabled,
		SyncStatsWorkers:           syncStatsWorkers,
		ScheduleTimezone:           scheduleTimezone,
		ScheduleLocation:           scheduleLocation,
		InternalJobToken:           internalJobToken,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.LogLevel = parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
