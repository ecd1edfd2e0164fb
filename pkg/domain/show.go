package domain

import "time"

// feed source tags. Show.Source normally holds the uploader name that goes
// into search queries ("subsplease", "Erai-raws"); the special
// "subsplease_direct" value switches the show to the global SubsPlease
// release feed instead of a per-show search. SourceNyaa tags release items
// produced by the search feed.
const (
	SourceSubsPlease       = "subsplease"
	SourceSubsPleaseDirect = "subsplease_direct"
	SourceNyaa             = "nyaa"
)

// Show represents a tracked series. The scheduler owns only the watermark pair
// (LastEpisode, LastHash); every other field is managed through the API.
type Show struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	AlternateTitle string     `json:"alternate_title,omitempty"` // preferred query title for feed search, falls back to Title
	Season         int        `json:"season"`
	Source         string     `json:"source"`
	Quality        string     `json:"quality"`
	DownloadPath   string     `json:"download_path,omitempty"`
	LastEpisode    int        `json:"last_episode"`         // highest episode dispatched so far
	LastHash       string     `json:"last_hash,omitempty"`  // fingerprint of the last dispatched release
	Tracked        bool       `json:"tracked"`
	LatestEpisode  int        `json:"latest_episode,omitempty"` // most recent episode known to exist, from catalog metadata
	NextAirDate    *time.Time `json:"next_air_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SearchTitle returns the title used for feed queries
func (s *Show) SearchTitle() string {
	if s.AlternateTitle != "" {
		return s.AlternateTitle
	}
	return s.Title
}

// PollConfig is the singleton polling configuration read before each cycle
type PollConfig struct {
	TimesPerDay  int        `json:"times_per_day"`
	LastPollTime *time.Time `json:"last_poll_time,omitempty"`
	Enabled      bool       `json:"enabled"`
}
