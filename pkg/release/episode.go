// Package release extracts structured metadata from free-text release titles.
// The parsers are ordered regex cascades evaluated first-match-wins, kept as
// data-driven tables so each pattern family stays independently testable.
package release

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/episodarr/episodarr/pkg/domain"
)

// episodePattern couples one title shape with the position of its capture
// groups. Season-bearing patterns must come before the no-season fallback,
// otherwise the season marker is swallowed into the show-title group.
type episodePattern struct {
	re        *regexp.Regexp
	hasSeason bool
}

var episodePatterns = []episodePattern{
	// [Group] Show S2 - 02 (1080p)
	{re: regexp.MustCompile(`\[.*?\]\s*(.*?)\s+S(\d+)\s*-\s*(\d+)\s*.*?(\d{3,4}p)`), hasSeason: true},
	// [Group] Show 2nd Season - 01 [1080p]
	{re: regexp.MustCompile(`\[.*?\]\s*(.*?)\s+(\d+)(?:st|nd|rd|th)\s+Season\s*-\s*(\d+)\s*.*?(\d{3,4}p)`), hasSeason: true},
	// [Group] Show Season 2 - 01 [1080p]
	{re: regexp.MustCompile(`\[.*?\]\s*(.*?)\s+Season\s+(\d+)\s*-\s*(\d+)\s*.*?(\d{3,4}p)`), hasSeason: true},
	// [Group] Show - 28 (1080p), season unknown
	{re: regexp.MustCompile(`\[.*?\]\s*(.*?)\s*-\s*(\d+)\s*.*?(\d{3,4}p)`), hasSeason: false},
}

// ParseEpisode extracts show title, season, episode and quality from a release
// title. The first matching pattern wins. Season is 0 when the title carries no
// season marker. Returns ok=false for titles that fit none of the known shapes;
// callers must discard such items rather than guess.
func ParseEpisode(title string) (info domain.EpisodeInfo, ok bool) {
	for _, p := range episodePatterns {
		m := p.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}

		info.ShowTitle = strings.TrimSpace(m[1])
		next := 2
		if p.hasSeason {
			season, err := strconv.Atoi(m[2])
			if err != nil {
				return domain.EpisodeInfo{}, false
			}
			info.Season = season
			next = 3
		}

		episode, err := strconv.Atoi(m[next])
		if err != nil {
			return domain.EpisodeInfo{}, false
		}
		info.Episode = episode
		info.Quality = m[next+1]
		return info, true
	}
	return domain.EpisodeInfo{}, false
}
