package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/rshade/holocron/internal/catalog"
)

// Client defaults.
const (
	DefaultBaseURL   = "https://swapi.dev/api/people/"
	DefaultTimeout   = 30 * time.Second
	DefaultMaxPages  = 100
	DefaultUserAgent = "holocron"

	// maxBodyBytes caps a single page response.
	maxBodyBytes = 10 << 20
)

// ErrPagesConsumed is yielded when a page sequence is ranged over a second time.
var ErrPagesConsumed = errors.New("page sequence already consumed")

// Config holds the client settings.
type Config struct {
	// BaseURL is the first page of the collection.
	BaseURL string

	// Timeout bounds each page request. Zero uses DefaultTimeout.
	Timeout time.Duration

	// MaxPages bounds the cursor chain. Zero uses DefaultMaxPages.
	MaxPages int

	// RequestsPerSecond paces page requests. Zero disables pacing.
	RequestsPerSecond float64

	// UserAgent is sent with every request.
	UserAgent string
}

// Page is one decoded response of the cursor chain.
type Page struct {
	// Number is the 1-based position in the chain.
	Number int

	// URL is the address the page was fetched from.
	URL string

	// Next is the resolved next-page URL, empty on the last page.
	Next string

	// Count is the collection size reported by the endpoint, or 0 if absent.
	Count int

	// Entities holds the page's items in arrival order.
	Entities []catalog.Entity
}

// pageResponse mirrors the wire format. Pointers distinguish absent fields.
type pageResponse struct {
	Count   *int              `json:"count"`
	Next    *string           `json:"next"`
	Results *[]catalog.Entity `json:"results"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client (tests, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithProgressCallback registers a callback invoked after each page.
func WithProgressCallback(cb ProgressCallback) Option {
	return func(c *Client) {
		c.onProgress = cb
	}
}

// Client walks a cursor-paginated collection endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxPages   int
	limiter    *rate.Limiter
	userAgent  string
	onProgress ProgressCallback
}

// NewClient validates cfg and creates a Client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := parseHTTPURL(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidBaseURL, cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxPages:   cfg.MaxPages,
		userAgent:  cfg.UserAgent,
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the first page URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pages returns the cursor walk as a single-use iterator. Iteration stops
// after the last page, on the first error (yielded once), or when the
// consumer stops ranging. Ranging a second time yields ErrPagesConsumed.
func (c *Client) Pages(ctx context.Context) iter.Seq2[Page, error] {
	var used atomic.Bool

	return func(yield func(Page, error) bool) {
		if used.Swap(true) {
			yield(Page{}, ErrPagesConsumed)
			return
		}

		seen := make(map[string]bool)
		next := c.baseURL
		for number := 1; next != ""; number++ {
			if number > c.maxPages {
				yield(Page{}, &FetchError{
					URL:  next,
					Page: number,
					Kind: ErrPageLimit,
					Err:  fmt.Errorf("stopped after %d pages", c.maxPages),
				})
				return
			}
			seen[next] = true

			page, err := c.FetchPage(ctx, next, number)
			if err != nil {
				yield(Page{}, err)
				return
			}
			if page.Next != "" && seen[page.Next] {
				yield(Page{}, malformedError(page.URL, number, fmt.Errorf("next cursor loops back to %s", page.Next)))
				return
			}
			if !yield(page, nil) {
				return
			}
			next = page.Next
		}
	}
}

// FetchAll follows the cursor chain to the end and returns every entity in
// arrival order. Any failure discards what was accumulated and returns a nil
// slice with the error.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Entity, error) {
	logger := zerolog.Ctx(ctx).With().Str("component", "source").Logger()
	progress := NewProgress()

	var all []catalog.Entity
	for page, err := range c.Pages(ctx) {
		if err != nil {
			logger.Warn().Ctx(ctx).Err(err).
				Int("pages_fetched", progress.Snapshot().FetchedPages).
				Msg("collection fetch aborted, discarding partial results")
			return nil, err
		}

		all = append(all, page.Entities...)
		progress.AddPage(len(page.Entities), page.Count)
		if c.onProgress != nil {
			c.onProgress(progress.Snapshot())
		}
	}

	if all == nil {
		all = []catalog.Entity{}
	}

	snap := progress.Snapshot()
	logger.Info().Ctx(ctx).
		Int("pages", snap.FetchedPages).
		Int("entities", len(all)).
		Dur("elapsed", snap.ElapsedTime).
		Msg("collection fetched")
	return all, nil
}

// FetchPage requests and decodes a single page.
func (c *Client) FetchPage(ctx context.Context, pageURL string, number int) (Page, error) {
	logger := zerolog.Ctx(ctx)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Page{}, networkError(pageURL, number, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Page{}, networkError(pageURL, number, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, networkError(pageURL, number, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Debug().Err(closeErr).Str("url", pageURL).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return Page{}, networkError(pageURL, number, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body pageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return Page{}, networkError(pageURL, number, err)
		}
		return Page{}, malformedError(pageURL, number, fmt.Errorf("decoding response: %w", err))
	}
	if body.Results == nil {
		return Page{}, malformedError(pageURL, number, errors.New(`response has no "results" array`))
	}

	page := Page{
		Number:   number,
		URL:      pageURL,
		Entities: *body.Results,
	}
	if body.Count != nil {
		page.Count = *body.Count
	}
	if body.Next != nil && *body.Next != "" {
		next, resolveErr := resolveNext(pageURL, *body.Next)
		if resolveErr != nil {
			return Page{}, malformedError(pageURL, number, resolveErr)
		}
		page.Next = next
	}

	logger.Debug().Ctx(ctx).
		Str("url", pageURL).
		Int("page", number).
		Int("items", len(page.Entities)).
		Bool("has_next", page.Next != "").
		Dur("duration", time.Since(start)).
		Msg("page fetched")

	return page, nil
}

// resolveNext resolves a next-page reference against the current page URL.
func resolveNext(current, next string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("invalid page URL %q: %w", current, err)
	}
	ref, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("invalid next cursor %q: %w", next, err)
	}
	resolved := base.ResolveReference(ref)
	if _, err := parseHTTPURL(resolved.String()); err != nil {
		return "", fmt.Errorf("invalid next cursor %q: %w", next, err)
	}
	return resolved.String(), nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}
