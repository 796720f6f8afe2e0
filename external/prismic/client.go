package prismic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/sevens-series/tournament-api/internal/platform/cache"
	"github.com/sevens-series/tournament-api/internal/platform/logging"
	"github.com/sevens-series/tournament-api/internal/usecase"
)

const (
	docTypeTournament = "tournament"
	docTypeTeam       = "team"
	docTypeMatch      = "match"

	searchPageSize = 100
	masterRefTTL   = 30 * time.Second
)

type ClientConfig struct {
	HTTPClient    *http.Client
	RepositoryURL string
	AccessToken   string
	Timeout       time.Duration
	Logger        *logging.Logger
}

// Client reads the editorial content repository. The master ref identifies
// the currently published release and is refreshed on a short TTL so edits
// show up without a restart.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *logging.Logger
	refCache    *cache.Store
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
		httpClient.Timeout = 15 * time.Second
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.RepositoryURL), "/"),
		accessToken: strings.TrimSpace(cfg.AccessToken),
		logger:      logger,
		refCache:    cache.NewStore(masterRefTTL),
	}
}

func (c *Client) FetchTournaments(ctx context.Context) ([]usecase.ExternalTournamentDoc, error) {
	docs, err := c.searchDocuments(ctx, buildPredicates(docTypeTournament, "", ""))
	if err != nil {
		return nil, fmt.Errorf("fetch tournament documents: %w", err)
	}
	return mapTournamentDocs(docs), nil
}

func (c *Client) FetchTeams(ctx context.Context, tournamentID string) ([]usecase.ExternalTeamDoc, error) {
	docs, err := c.searchDocuments(ctx, buildPredicates(docTypeTeam, "my.team.tournament", tournamentID))
	if err != nil {
		return nil, fmt.Errorf("fetch team documents tournament=%s: %w", tournamentID, err)
	}
	return mapTeamDocs(docs), nil
}

func (c *Client) FetchMatches(ctx context.Context, tournamentID string) ([]usecase.ExternalMatchDoc, error) {
	docs, err := c.searchDocuments(ctx, buildPredicates(docTypeMatch, "my.match.tournament", tournamentID))
	if err != nil {
		return nil, fmt.Errorf("fetch match documents tournament=%s: %w", tournamentID, err)
	}
	return mapMatchDocs(docs), nil
}

// buildPredicates renders the repository query language, for example
// [[at(document.type,"match")][at(my.match.tournament,"abc")]].
func buildPredicates(docType, linkPath, linkValue string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('[')
	_, _ = buf.WriteString(`[at(document.type,"`)
	_, _ = buf.WriteString(docType)
	_, _ = buf.WriteString(`")]`)
	if linkPath != "" && strings.TrimSpace(linkValue) != "" {
		_, _ = buf.WriteString(`[at(`)
		_, _ = buf.WriteString(linkPath)
		_, _ = buf.WriteString(`,"`)
		_, _ = buf.WriteString(strings.TrimSpace(linkValue))
		_, _ = buf.WriteString(`")]`)
	}
	_ = buf.WriteByte(']')

	return buf.String()
}

func (c *Client) searchDocuments(ctx context.Context, predicates string) ([]document, error) {
	masterRef, err := c.masterRef(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]document, 0, searchPageSize)
	for page := 1; ; page++ {
		values := url.Values{}
		values.Set("ref", masterRef)
		values.Set("q", predicates)
		values.Set("pageSize", strconv.Itoa(searchPageSize))
		values.Set("page", strconv.Itoa(page))
		if c.accessToken != "" {
			values.Set("access_token", c.accessToken)
		}

		var envelope searchEnvelope
		if err := c.getJSON(ctx, c.baseURL+"/documents/search?"+values.Encode(), &envelope); err != nil {
			return nil, err
		}
		docs = append(docs, envelope.Results...)

		if envelope.TotalPages <= page {
			return docs, nil
		}
	}
}

func (c *Client) masterRef(ctx context.Context) (string, error) {
	out, err := c.refCache.GetOrLoad(ctx, "master-ref", func(ctx context.Context) (any, error) {
		endpoint := c.baseURL
		if c.accessToken != "" {
			endpoint += "?access_token=" + url.QueryEscape(c.accessToken)
		}

		var envelope apiEnvelope
		if err := c.getJSON(ctx, endpoint, &envelope); err != nil {
			return nil, err
		}
		for _, ref := range envelope.Refs {
			if ref.IsMasterRef && strings.TrimSpace(ref.Ref) != "" {
				return ref.Ref, nil
			}
		}
		return nil, fmt.Errorf("repository api response carries no master ref")
	})
	if err != nil {
		return "", err
	}

	ref, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected master ref type %T", out)
	}
	return ref, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, target any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: content repository url is not configured", usecase.ErrDependencyUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: content repository request: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read content repository response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("content repository status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode content repository payload: %w", err)
	}
	return nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
