// Package fetcher retrieves firstcycling.com pages as parsed markup trees,
// with retrying, rate limiting and a short-lived page cache.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/baronet2/FirstCyclingScraper/internal/config"
)

// Client fetches pages politely: requests are rate limited, transient
// failures retried, and identical URLs served from cache within the TTL.
type Client struct {
	http      *retryablehttp.Client
	limiter   *rate.Limiter
	pages     *cache.Cache
	baseURL   string
	userAgent string
	log       *logrus.Logger
}

// New creates a fetcher from configuration.
func New(cfg config.FetcherConfig, log *logrus.Logger) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.RetryMax
	httpClient.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	httpClient.Logger = nil

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &Client{
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		pages:     cache.New(ttl, 2*ttl),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// RiderPage fetches a rider page. A zero year fetches the default (latest)
// year.
func (c *Client) RiderPage(ctx context.Context, riderID, year int) (*goquery.Document, error) {
	return c.document(ctx, c.riderURL(riderID, year))
}

// RacePage fetches a race edition page.
func (c *Client) RacePage(ctx context.Context, raceID, year int) (*goquery.Document, error) {
	return c.document(ctx, c.raceURL(raceID, year))
}

// RankingPage fetches one page of a rankings listing and returns the URL it
// was fetched from.
func (c *Client) RankingPage(ctx context.Context, query RankingQuery) (*goquery.Document, string, error) {
	pageURL := c.rankingURL(query)
	doc, err := c.document(ctx, pageURL)
	return doc, pageURL, err
}

func (c *Client) document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if cached, ok := c.pages.Get(pageURL); ok {
		return goquery.NewDocumentFromReader(bytes.NewReader(cached.([]byte)))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}
	c.pages.SetDefault(pageURL, body)
	c.log.WithFields(logrus.Fields{"url": pageURL, "bytes": len(body)}).Debug("fetched page")

	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}
