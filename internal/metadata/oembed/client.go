package oembed

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/ratelimit"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRPS     = 10.0
	defaultBurst   = 20

	userAgent = "bookmarks/1.0"
)

// Config tunes the metadata client.
type Config struct {
	// Timeout bounds every outbound request so a stuck provider cannot
	// wedge a read.
	Timeout time.Duration
	// RequestsPerSecond and Burst configure outbound rate limiting,
	// applied per provider.
	RequestsPerSecond float64
	Burst             int
}

// Client fetches oembed metadata from provider endpoints.
// It issues a single GET per fetch, no retries.
type Client struct {
	http     *http.Client
	limiter  *ratelimit.KeyedRateLimiter
	registry *Registry
	logger   *slog.Logger
}

// NewClient creates a rate-limited metadata client.
func NewClient(registry *Registry, cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:  ratelimit.New(cfg.RequestsPerSecond, cfg.Burst),
		registry: registry,
		logger:   logger,
	}
}

// Fetch retrieves the oembed metadata for a bookmarked URL.
// Any transport failure or non-2xx status is reported as a *FetchError
// carrying the bookmark type and target URL.
func (c *Client) Fetch(ctx context.Context, t domain.Type, target string) (*Response, error) {
	adapter, err := c.registry.Lookup(t)
	if err != nil {
		return nil, err
	}

	// One bucket per provider: a slow photo host must not starve video
	// fetches.
	if err := c.limiter.Wait(ctx, string(t)); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	metadataURL := adapter.MetadataURL(target)

	c.logger.Debug("oembed request",
		"type", t,
		"url", target,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Type: t, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Type: t, URL: target, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out Response
	if err := json.UnmarshalRead(resp.Body, &out); err != nil {
		return nil, &FetchError{Type: t, URL: target, Err: fmt.Errorf("parse response: %w", err)}
	}

	return &out, nil
}

// CheckURL verifies that the provider knows the target URL: the fetch must
// succeed with a 200-class response. Used to validate bookmarks at creation.
func (c *Client) CheckURL(ctx context.Context, t domain.Type, target string) error {
	_, err := c.Fetch(ctx, t, target)
	return err
}

// Enrich merges a stored bookmark with its fetched metadata using the
// adapter for the bookmark's type.
func (c *Client) Enrich(b *domain.Bookmark, raw *Response) (*domain.EnrichedBookmark, error) {
	adapter, err := c.registry.Lookup(b.Type)
	if err != nil {
		return nil, err
	}
	return adapter.Enrich(b, raw), nil
}
