// Package sanity is the read-only client for the headless content store:
// a typed GROQ query catalog, the HTTP fetch layer, and the image URL
// resolver. Writes never happen here; authoring lives in the CMS studio.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/izumi-ne/portfolio-core/internal/config"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	// RevalidateList bounds staleness for document list and detail queries.
	RevalidateList = time.Minute
	// RevalidateSingleton bounds staleness for the about singleton and slug
	// enumeration, which change rarely.
	RevalidateSingleton = time.Hour

	requestTimeout = 10 * time.Second
)

// ErrNotConfigured is returned by Fetch when the store has no project ID.
// The query services translate it into empty results before it can surface.
var ErrNotConfigured = errors.New("content store not configured")

// Querier is the fetch interface the query services depend on. *Client is
// the production implementation; tests substitute fakes.
type Querier interface {
	Configured() bool
	Fetch(ctx context.Context, query string, ttl time.Duration, out interface{}) error
}

// Client issues GROQ queries against the store's HTTP query API. Results are
// memoized in a process-local cache for the revalidation interval; a stale
// read within the interval is an accepted tradeoff for store load.
type Client struct {
	cfg        config.SanityConfig
	preview    bool
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *zap.Logger
}

// New creates a published-perspective client.
func New(cfg config.SanityConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      gocache.New(RevalidateList, 10*time.Minute),
		logger:     logger,
	}
}

// Preview returns a draft-inclusive client sharing nothing with the
// published cache. It requires the server-held API token; without one the
// published client is returned unchanged.
func (c *Client) Preview() *Client {
	if c.cfg.Token == "" {
		return c
	}
	return &Client{
		cfg:        c.cfg,
		preview:    true,
		httpClient: c.httpClient,
		cache:      gocache.New(RevalidateList, 10*time.Minute),
		logger:     c.logger,
	}
}

// Configured reports whether a real project ID is set. Everything
// short-circuits to empty results when it is not.
func (c *Client) Configured() bool {
	return c.cfg.ProjectID != "" && c.cfg.ProjectID != config.PlaceholderProjectID
}

func (c *Client) perspective() string {
	if c.preview {
		return "previewDrafts"
	}
	return "published"
}

func (c *Client) queryURL(query string) string {
	base := c.cfg.Endpoint
	if base == "" {
		host := "api.sanity.io"
		if c.cfg.UseCDN && !c.preview {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", c.cfg.ProjectID, host)
	}
	return fmt.Sprintf("%s/v%s/data/query/%s?query=%s&perspective=%s",
		base, c.cfg.APIVersion, c.cfg.Dataset,
		url.QueryEscape(query), c.perspective())
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch runs a query and decodes its result into out, serving from the
// revalidation cache when a result younger than ttl exists. A null result
// (single-document query with no match) leaves out untouched.
func (c *Client) Fetch(ctx context.Context, query string, ttl time.Duration, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	cacheKey := c.perspective() + "|" + query
	if !c.preview {
		if raw, ok := c.cache.Get(cacheKey); ok {
			return decodeResult(raw.(json.RawMessage), out)
		}
	}

	raw, err := c.execute(ctx, query)
	if err != nil {
		return err
	}

	if !c.preview {
		if ttl <= 0 {
			ttl = RevalidateList
		}
		c.cache.Set(cacheKey, raw, ttl)
	}
	return decodeResult(raw, out)
}

func (c *Client) execute(ctx context.Context, query string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.preview {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content store fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("content store returned %d: %s", resp.StatusCode, body)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("content store decode: %w", err)
	}
	return decoded.Result, nil
}

func decodeResult(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, out)
}
