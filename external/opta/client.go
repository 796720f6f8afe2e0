package opta

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sevens-series/tournament-api/internal/platform/logging"
	"github.com/sevens-series/tournament-api/internal/platform/resilience"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

const defaultBaseURL = "https://api.performfeeds.example.com/soccerdata"

var apiKeyParamRegex = regexp.MustCompile(`apiKey=[^&\s"']+`)
var errOptaTransient = crerr.New("opta transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchMatchResults downloads the season's fixture and result document.
func (c *Client) FetchMatchResults(ctx context.Context, competitionID, seasonID string) ([]usecase.ExternalMatchResult, error) {
	path, err := seasonPath(competitionID, seasonID, "matches")
	if err != nil {
		return nil, err
	}

	var envelope matchResultsEnvelope
	if err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch match results competition=%s season=%s: %w", competitionID, seasonID, err)
	}

	return mapFeedMatches(envelope.Matches), nil
}

// FetchStandings downloads the feed-published group tables.
func (c *Client) FetchStandings(ctx context.Context, competitionID, seasonID string) ([]usecase.ExternalStandingRow, error) {
	path, err := seasonPath(competitionID, seasonID, "standings")
	if err != nil {
		return nil, err
	}

	var envelope standingsEnvelope
	if err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings competition=%s season=%s: %w", competitionID, seasonID, err)
	}

	rows := make([]usecase.ExternalStandingRow, 0, 16)
	for _, group := range envelope.Groups {
		rows = append(rows, parseStandingRows(group.Name, group.Rows)...)
	}
	return rows, nil
}

// FetchTeamSeasonStats downloads one team's cumulative player statistics.
func (c *Client) FetchTeamSeasonStats(ctx context.Context, competitionID, seasonID, teamRef string) (usecase.ExternalTeamSeasonStats, error) {
	path, err := seasonPath(competitionID, seasonID, "teams")
	if err != nil {
		return usecase.ExternalTeamSeasonStats{}, err
	}
	teamRef = strings.TrimSpace(teamRef)
	if teamRef == "" {
		return usecase.ExternalTeamSeasonStats{}, fmt.Errorf("team ref is required")
	}
	path += "/" + url.PathEscape(teamRef) + "/stats"

	var envelope teamStatsEnvelope
	if err := c.doJSON(ctx, path, map[string]string{"detailed": "yes"}, &envelope); err != nil {
		return usecase.ExternalTeamSeasonStats{}, fmt.Errorf("fetch season stats competition=%s season=%s team=%s: %w", competitionID, seasonID, teamRef, err)
	}

	return mapFeedTeamStats(teamRef, envelope), nil
}

// FetchSquads downloads the competition squad list, the only feed document
// that carries the editorial short names for every team.
func (c *Client) FetchSquads(ctx context.Context, competitionID, seasonID string) ([]usecase.ExternalSquad, error) {
	path, err := seasonPath(competitionID, seasonID, "squads")
	if err != nil {
		return nil, err
	}

	var envelope squadsEnvelope
	if err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch squads competition=%s season=%s: %w", competitionID, seasonID, err)
	}

	out := make([]usecase.ExternalSquad, 0, len(envelope.Squads))
	for _, squad := range envelope.Squads {
		ref := firstNonEmpty(squad.TeamRef, squad.ID)
		if strings.TrimSpace(ref) == "" {
			continue
		}
		out = append(out, usecase.ExternalSquad{
			TeamRef:   strings.TrimSpace(ref),
			TeamName:  strings.TrimSpace(squad.Name),
			ShortName: firstNonEmpty(squad.ShortName, squad.TeamCode),
		})
	}
	return out, nil
}

func seasonPath(competitionID, seasonID, resource string) (string, error) {
	competitionID = strings.TrimSpace(competitionID)
	seasonID = strings.TrimSpace(seasonID)
	if competitionID == "" || seasonID == "" {
		return "", fmt.Errorf("competition id and season id are required")
	}
	return "/competitions/" + url.PathEscape(competitionID) + "/seasons/" + url.PathEscape(seasonID) + "/" + resource, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "opta circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: results feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("_fmt", "json")
	values.Set("apiKey", c.apiKey)

	fullURL := c.baseURL + path + "?" + values.Encode()

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isOptaCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errOptaTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errOptaTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errOptaTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "opta request failed", "url", redactFeedURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isOptaCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errOptaTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "apiKey=REDACTED")
}

func redactFeedURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("apiKey") {
		query.Set("apiKey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
