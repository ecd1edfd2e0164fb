// Package scheduler drives the poll cycle: on a cadence derived from the
// polling configuration it fetches release feeds for tracked shows, runs the
// filter rules, dispatches new episodes to the download client and advances
// per-show watermarks.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/pkg/filter"
	"github.com/episodarr/episodarr/pkg/release"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher

// ErrCycleRunning is returned by RunOnce when a poll cycle is already in progress
var ErrCycleRunning = errors.New("poll cycle already running")

// Database interface for tracker operations
type Database interface {
	GetTrackedShows(ctx context.Context) ([]*domain.Show, error)
	GetGlobalRules(ctx context.Context) ([]domain.FilterRule, error)
	GetShowOverrides(ctx context.Context, showID int64) ([]domain.ShowOverride, error)
	IsDownloaded(ctx context.Context, fingerprint string) (bool, error)
	RecordDownload(ctx context.Context, record *domain.DownloadRecord) error
	UpdateWatermark(ctx context.Context, showID int64, episode int, hash string) error
	GetPollConfig(ctx context.Context) (*domain.PollConfig, error)
	TouchLastPoll(ctx context.Context) error
}

// Fetcher interface for release feed retrieval
type Fetcher interface {
	Fetch(ctx context.Context, show *domain.Show) ([]domain.ReleaseItem, error)
}

// Dispatcher interface for handing releases to the download client
type Dispatcher interface {
	Dispatch(ctx context.Context, show *domain.Show, locator string) error
}

// Tracker polls release feeds for tracked shows and dispatches new episodes
type Tracker struct {
	db         Database
	fetcher    Fetcher
	dispatcher Dispatcher

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	running atomic.Bool

	mu       sync.Mutex
	nextPoll time.Time
}

// NewTracker creates a new tracker instance
func NewTracker(database Database, fetcher Fetcher, dispatcher Dispatcher) *Tracker {
	return &Tracker{
		db:         database,
		fetcher:    fetcher,
		dispatcher: dispatcher,
	}
}

// Start begins the poll loop
func (t *Tracker) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)

	t.wg.Add(1)
	go t.loop(ctx)

	lgr.Printf("[INFO] tracker started")
}

// Stop gracefully stops the poll loop
func (t *Tracker) Stop() {
	lgr.Printf("[INFO] stopping tracker...")
	if t.cancel != nil {
		t.cancel()
	}
	t.wg.Wait()
	lgr.Printf("[INFO] tracker stopped")
}

// Running reports whether a poll cycle is currently in progress
func (t *Tracker) Running() bool {
	return t.running.Load()
}

// NextPoll returns when the next scheduled cycle fires, zero before Start
func (t *Tracker) NextPoll() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nextPoll
}

// RunOnce triggers a poll cycle immediately and reports how many episodes were
// dispatched. Only one cycle runs at a time; a concurrent call gets
// ErrCycleRunning instead of a second cycle.
func (t *Tracker) RunOnce(ctx context.Context) (int, error) {
	if !t.running.CompareAndSwap(false, true) {
		return 0, ErrCycleRunning
	}
	defer t.running.Store(false)

	return t.runCycle(ctx)
}

// loop sleeps until the next scheduled poll moment, runs a cycle and repeats
func (t *Tracker) loop(ctx context.Context) {
	defer t.wg.Done()

	for {
		next, mode := t.scheduleNext(ctx)
		wait := time.Until(next)
		if wait <= 0 {
			// past-due schedule runs almost immediately
			wait = time.Second
		}
		t.setNextPoll(time.Now().Add(wait))
		lgr.Printf("[INFO] next poll in %v (%s mode)", wait.Round(time.Second), mode)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if _, err := t.RunOnce(ctx); err != nil {
			if errors.Is(err, ErrCycleRunning) {
				lgr.Printf("[WARN] scheduled poll skipped, a cycle is already running")
				continue
			}
			if ctx.Err() != nil {
				return
			}
			lgr.Printf("[ERROR] poll cycle failed: %v", err)
		}
	}
}

// scheduleNext picks the next poll moment. Polling disabled or a config read
// failure falls back to the fixed morning/evening schedule.
func (t *Tracker) scheduleNext(ctx context.Context) (next time.Time, mode string) {
	cfg, err := t.db.GetPollConfig(ctx)
	if err != nil {
		lgr.Printf("[ERROR] read poll config: %v", err)
		return fallbackRunTime(time.Now()), "fallback"
	}
	if !cfg.Enabled || cfg.TimesPerDay <= 0 {
		return fallbackRunTime(time.Now()), "fallback"
	}
	return nextRunTime(time.Now(), cfg.TimesPerDay), "interval"
}

// nextRunTime derives the next poll moment from the times-per-day cadence.
// The day is split evenly, with the interval decomposed into whole hours and
// minutes: 4 polls a day is every 6h, 5 polls every 4h48m.
func nextRunTime(now time.Time, timesPerDay int) time.Time {
	interval := 24.0 / float64(timesPerDay)
	hours := int(interval)
	minutes := int((interval - float64(hours)) * 60)
	return now.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
}

// fallbackRunTime picks the next 05:00 or 17:00 local, rolling over to
// tomorrow morning once the evening slot has passed
func fallbackRunTime(now time.Time) time.Time {
	morning := time.Date(now.Year(), now.Month(), now.Day(), 5, 0, 0, 0, now.Location())
	evening := time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, now.Location())

	switch {
	case now.Before(morning):
		return morning
	case now.Before(evening):
		return evening
	default:
		return morning.AddDate(0, 0, 1)
	}
}

// runCycle polls every tracked show once. A failing show is logged and skipped
// so the rest of the cycle still runs.
func (t *Tracker) runCycle(ctx context.Context) (int, error) {
	shows, err := t.db.GetTrackedShows(ctx)
	if err != nil {
		return 0, fmt.Errorf("get tracked shows: %w", err)
	}
	if len(shows) == 0 {
		lgr.Printf("[INFO] no tracked shows")
		return 0, nil
	}

	lgr.Printf("[INFO] polling %d tracked show(s)", len(shows))

	total := 0
	for _, show := range shows {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		count, err := t.processShow(ctx, show)
		if err != nil {
			lgr.Printf("[ERROR] process show %q: %v", show.Title, err)
			continue
		}
		total += count
	}

	// informational timestamp, the cycle already succeeded
	if err := t.db.TouchLastPoll(ctx); err != nil {
		lgr.Printf("[ERROR] update last poll time: %v", err)
	}

	lgr.Printf("[INFO] poll complete, dispatched %d new episode(s)", total)
	return total, nil
}

// processShow fetches the release feed for one show, filters it and dispatches
// everything newer than the show's watermark
func (t *Tracker) processShow(ctx context.Context, show *domain.Show) (int, error) {
	lgr.Printf("[DEBUG] checking %q (%s, source %s)", show.Title, show.Quality, show.Source)

	items, err := t.fetcher.Fetch(ctx, show)
	if err != nil {
		// a dead feed shouldn't take the cycle down
		lgr.Printf("[ERROR] fetch feed for %q: %v", show.SearchTitle(), err)
		return 0, nil
	}
	if len(items) == 0 {
		lgr.Printf("[DEBUG] no feed items for %q", show.SearchTitle())
		return 0, nil
	}

	rules, err := t.db.GetGlobalRules(ctx)
	if err != nil {
		return 0, fmt.Errorf("get global rules: %w", err)
	}
	overrides, err := t.db.GetShowOverrides(ctx, show.ID)
	if err != nil {
		return 0, fmt.Errorf("get show overrides: %w", err)
	}

	results := filter.Apply(rules, overrides, items)
	if len(results) == 0 {
		// nothing acceptable this cycle is a normal outcome
		lgr.Printf("[DEBUG] no items passed filters for %q", show.SearchTitle())
		return 0, nil
	}

	// gate against the watermark as loaded, so a catch-up cycle can pick up
	// several episodes in one pass
	watermark := show.LastEpisode
	highest := show.LastEpisode

	count := 0
	for _, result := range results {
		if len(result.Matched) > 0 {
			lgr.Printf("[DEBUG] %q matched rules: %v", result.Item.Title, result.Matched)
		}

		info, ok := release.ParseEpisode(result.Item.Title)
		if !ok {
			lgr.Printf("[DEBUG] no episode info in %q", result.Item.Title)
			continue
		}
		if info.Episode <= watermark {
			continue
		}

		fingerprint := result.Item.Fingerprint()
		downloaded, err := t.db.IsDownloaded(ctx, fingerprint)
		if err != nil {
			return count, fmt.Errorf("check ledger: %w", err)
		}
		if downloaded {
			lgr.Printf("[DEBUG] already downloaded: %s", result.Item.Title)
			continue
		}

		// magnet preferred, direct torrent link otherwise
		locator := result.Item.DownloadURL
		if result.Item.MagnetURL != "" {
			locator = result.Item.MagnetURL
		}

		if err := t.dispatcher.Dispatch(ctx, show, locator); err != nil {
			lgr.Printf("[ERROR] dispatch %q: %v", result.Item.Title, err)
			continue
		}
		lgr.Printf("[INFO] dispatched: %s", result.Item.Title)

		record := &domain.DownloadRecord{
			ShowID:     show.ID,
			Episode:    info.Episode,
			Hash:       fingerprint,
			TorrentURL: result.Item.DownloadURL,
		}
		if err := t.db.RecordDownload(ctx, record); err != nil && !errors.Is(err, domain.ErrAlreadyDownloaded) {
			// the episode is already on its way, losing the ledger entry is
			// not worth failing the show for
			lgr.Printf("[ERROR] record download for %q: %v", result.Item.Title, err)
		}

		// results arrive in score order, not episode order, so only a new
		// high episode moves the watermark
		if info.Episode > highest {
			highest = info.Episode
			if err := t.db.UpdateWatermark(ctx, show.ID, info.Episode, fingerprint); err != nil {
				lgr.Printf("[ERROR] advance watermark for %q: %v", show.Title, err)
			}
		}
		count++
	}

	return count, nil
}

func (t *Tracker) setNextPoll(ts time.Time) {
	t.mu.Lock()
	t.nextPoll = ts
	t.mu.Unlock()
}
