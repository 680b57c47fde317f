package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MrSnakeDoc/prepscout/internal/domain"
	"github.com/MrSnakeDoc/prepscout/internal/logger"
	"github.com/MrSnakeDoc/prepscout/internal/utils"
)

const (
	DefaultTimeout = 5 * time.Second
	DefaultPause   = 200 * time.Millisecond
	perPage        = "10"
	apiVersion     = "2022-11-28"
	userAgent      = "prepscout"
)

// ErrQuotaExceeded is returned for a query refused by the shared quota.
var ErrQuotaExceeded = errors.New("github search quota exceeded")

// QuotaGuard reserves one search slot before each request.
type QuotaGuard interface {
	Reserve(ctx context.Context) (bool, error)
}

// Client searches repositories one query at a time.
// A single Client is shared by every run, so its pacer bounds the
// request rate of the whole process.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
	pacer   *rate.Limiter
	quota   QuotaGuard
	log     logger.Logger
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds each individual search request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithPause sets the minimum gap between two requests. Zero disables pacing.
func WithPause(d time.Duration) Option {
	return func(c *Client) {
		if d <= 0 {
			c.pacer = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.pacer = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithQuota(q QuotaGuard) Option {
	return func(c *Client) { c.quota = q }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		http:    &http.Client{},
		pacer:   rate.NewLimiter(rate.Every(DefaultPause), 1),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Items []domain.RepoRecord `json:"items"`
}

// Search runs every query in order and concatenates their items.
// A failing query contributes nothing; the next one is still tried.
// Cancelling ctx stops the loop and returns what was collected so far.
func (c *Client) Search(ctx context.Context, queries []string) []domain.RepoRecord {
	var all []domain.RepoRecord

	for _, q := range queries {
		if err := c.pacer.Wait(ctx); err != nil {
			c.log.Warn("repository search interrupted", logger.String("query", q), logger.Error(err))
			break
		}

		items, err := c.searchOne(ctx, q)
		if err != nil {
			c.log.Warn("repository search failed", logger.String("query", q), logger.Error(err))
			continue
		}

		c.log.Debug("repository search done", logger.String("query", q), logger.Int("items", len(items)))
		all = append(all, items...)
	}

	return all
}

func (c *Client) searchOne(ctx context.Context, query string) ([]domain.RepoRecord, error) {
	if c.quota != nil {
		ok, err := c.quota.Reserve(ctx)
		switch {
		case err != nil:
			// the guard is best effort: an unreachable store never blocks searches
			c.log.Debug("search quota unavailable", logger.Error(err))
		case !ok:
			return nil, ErrQuotaExceeded
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{
		"q":        {query},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {perPage},
	}
	apiURL := c.baseURL + "/search/repositories?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github search status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return data.Items, nil
}
