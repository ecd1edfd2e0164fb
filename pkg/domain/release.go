package domain

import "time"

// ReleaseItem is a single entry from a fetched feed. Items live only for the
// duration of one poll cycle and are never persisted.
type ReleaseItem struct {
	Title       string
	Source      string // provider tag, set by the feed fetcher
	InfoHash    string // provider-reported content hash, may be empty
	DownloadURL string // direct .torrent locator
	MagnetURL   string // derived from InfoHash, empty when no hash is known
	Link        string // permalink to the release page
	PublishedAt time.Time
	Seeders     int
	Leechers    int
	Size        string // provider-formatted, e.g. "1.4 GiB"
}

// Fingerprint returns the unique identity of the release. Providers that don't
// expose an info hash get a deterministic synthetic fingerprint so the download
// ledger's uniqueness constraint still applies.
func (r *ReleaseItem) Fingerprint() string {
	if r.InfoHash != "" {
		return r.InfoHash
	}
	return r.Source + ":" + r.DownloadURL
}

// EpisodeInfo is the structured metadata extracted from a release title.
// Season 0 means no season marker was found.
type EpisodeInfo struct {
	ShowTitle string
	Season    int
	Episode   int
	Quality   string
}

// FilterResult is a release that survived filtering, with its accumulated
// score and the rules that matched it. Ephemeral, produced per poll cycle.
type FilterResult struct {
	Item    ReleaseItem
	Score   int
	Matched []string
}
