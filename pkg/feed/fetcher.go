// Package feed retrieves release feeds from nyaa and SubsPlease and converts
// them into release items. Two provider shapes are supported: a per-show
// search feed queried by uploader and title, and a global firehose feed
// filtered client-side by show title.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/episodarr/episodarr/pkg/domain"
)

// default provider endpoints, overridable for tests
const (
	defaultNyaaURL       = "https://nyaa.si"
	defaultSubsPleaseURL = "https://subsplease.org"
)

// Config defines fetcher parameters, zero values fall back to defaults
type Config struct {
	NyaaURL       string
	SubsPleaseURL string
	Timeout       time.Duration
	UserAgent     string
}

// Fetcher retrieves release feeds over HTTP. A single pooled client is shared
// across all requests, safe for concurrent use.
type Fetcher struct {
	client        *http.Client
	nyaaURL       string
	subspleaseURL string
	userAgent     string
}

// NewFetcher creates a feed fetcher
func NewFetcher(cfg Config) *Fetcher {
	if cfg.NyaaURL == "" {
		cfg.NyaaURL = defaultNyaaURL
	}
	if cfg.SubsPleaseURL == "" {
		cfg.SubsPleaseURL = defaultSubsPleaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "episodarr/1.0"
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		nyaaURL:       strings.TrimRight(cfg.NyaaURL, "/"),
		subspleaseURL: strings.TrimRight(cfg.SubsPleaseURL, "/"),
		userAgent:     cfg.UserAgent,
	}
}

// Fetch retrieves release items for a show, picking the provider from the
// show's source tag. Transport and parse failures come back as errors; the
// caller treats them as zero items for this cycle, not as fatal.
func (f *Fetcher) Fetch(ctx context.Context, show *domain.Show) ([]domain.ReleaseItem, error) {
	if strings.EqualFold(show.Source, domain.SourceSubsPleaseDirect) {
		return f.fetchSubsPlease(ctx, show)
	}
	return f.fetchNyaa(ctx, show)
}

// fetchDocument retrieves a feed document from the given URL and parses it
func (f *Fetcher) fetchDocument(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}
