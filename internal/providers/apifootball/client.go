package apifootball

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reyes-code/football-stats-service/internal/domain/stats"
	"github.com/reyes-code/football-stats-service/internal/domain/teams"
	"github.com/reyes-code/football-stats-service/internal/logging"
	"github.com/reyes-code/football-stats-service/internal/providers"
)

// Config controls how the client reaches API-Football.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client issues one GET per call against API-Football and maps the payloads to
// domain models. It never retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchTeams lists the teams of a league season in upstream order.
// An absent or null response is an empty roster.
func (c *Client) FetchTeams(ctx context.Context, league, season int) ([]teams.Team, error) {
	q := map[string]int{"league": league, "season": season}
	env, err := c.get(ctx, teamsPath, q)
	if err != nil {
		return nil, err
	}
	if isEmptyJSON(env.Response) {
		return []teams.Team{}, nil
	}

	var entries []teamEntry
	if err := json.Unmarshal(env.Response, &entries); err != nil {
		return nil, fmt.Errorf("%s: decode teams: %w", providerName, err)
	}
	return mapTeams(entries), nil
}

// FetchTeamStatistics returns one team's season statistics. An absent, null or
// non-object response decodes to an empty payload rather than an error.
func (c *Client) FetchTeamStatistics(ctx context.Context, league, season, teamID int) (*stats.TeamStatistics, error) {
	q := map[string]int{"league": league, "season": season, "team": teamID}
	env, err := c.get(ctx, statisticsPath, q)
	if err != nil {
		return nil, err
	}

	ts := &stats.TeamStatistics{}
	if !isObject(env.Response) {
		return ts, nil
	}
	if err := json.Unmarshal(env.Response, ts); err != nil {
		return nil, fmt.Errorf("%s: decode statistics: %w", providerName, err)
	}
	return ts, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]int) (envelope, error) {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return envelope{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: request %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return envelope{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get(headerRetryAfter), c.now()),
			Remaining:  resp.Header.Get(headerDailyRemaining),
			Message:    "api-football rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return envelope{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("%s: decode envelope: %w", providerName, err)
	}
	if !isEmptyJSON(env.Errors) {
		logger := logging.FromContext(ctx, c.logger)
		logging.Warn(logger, "api-football reported errors",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldPath, path),
			slog.String("errors", string(env.Errors)),
		)
	}
	return env, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query map[string]int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for k, v := range query {
		q.Set(k, strconv.Itoa(v))
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	return req, nil
}
