package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisode(t *testing.T) {
	t.Run("no season marker", func(t *testing.T) {
		info, ok := ParseEpisode("[SubsPlease] One Piece - 1060 (1080p) [37A98D45].mkv")
		require.True(t, ok)
		assert.Equal(t, "One Piece", info.ShowTitle)
		assert.Equal(t, 0, info.Season)
		assert.Equal(t, 1060, info.Episode)
		assert.Equal(t, "1080p", info.Quality)
	})

	t.Run("explicit S-prefix season", func(t *testing.T) {
		info, ok := ParseEpisode("[SubsPlease] Show Name S2 - 02 (1080p) [ABCD1234].mkv")
		require.True(t, ok)
		assert.Equal(t, "Show Name", info.ShowTitle)
		assert.Equal(t, 2, info.Season)
		assert.Equal(t, 2, info.Episode)
		assert.Equal(t, "1080p", info.Quality)
	})

	t.Run("ordinal season", func(t *testing.T) {
		info, ok := ParseEpisode("[Erai-raws] Show Name 3rd Season - 01 [1080p]")
		require.True(t, ok)
		assert.Equal(t, "Show Name", info.ShowTitle)
		assert.Equal(t, 3, info.Season)
		assert.Equal(t, 1, info.Episode)
	})

	t.Run("spelled season", func(t *testing.T) {
		info, ok := ParseEpisode("[Group] Show Name Season 2 - 05 [720p]")
		require.True(t, ok)
		assert.Equal(t, "Show Name", info.ShowTitle)
		assert.Equal(t, 2, info.Season)
		assert.Equal(t, 5, info.Episode)
		assert.Equal(t, "720p", info.Quality)
	})

	t.Run("episode number that looks like a resolution", func(t *testing.T) {
		// episode 1080 of a long-running show must not be confused with the quality tag
		info, ok := ParseEpisode("[Group] Show - 1080 (1080p)")
		require.True(t, ok)
		assert.Equal(t, "Show", info.ShowTitle)
		assert.Equal(t, 0, info.Season)
		assert.Equal(t, 1080, info.Episode)
		assert.Equal(t, "1080p", info.Quality)
	})

	t.Run("season marker not swallowed into title", func(t *testing.T) {
		info, ok := ParseEpisode("[Group] Show S2 - 05 (1080p)")
		require.True(t, ok)
		assert.Equal(t, "Show", info.ShowTitle, "S2 must be parsed as season, not kept in the title")
		assert.Equal(t, 2, info.Season)
		assert.Equal(t, 5, info.Episode)
	})

	t.Run("quality variants", func(t *testing.T) {
		for title, want := range map[string]string{
			"[SubsPlease] Show - 01 (480p) [x].mkv":  "480p",
			"[SubsPlease] Show - 01 (720p) [x].mkv":  "720p",
			"[SubsPlease] Show - 01 (1080p) [x].mkv": "1080p",
			"[Group] Show - 01 [2160p]":              "2160p",
		} {
			info, ok := ParseEpisode(title)
			require.True(t, ok, title)
			assert.Equal(t, want, info.Quality, title)
		}
	})

	t.Run("unparseable titles rejected", func(t *testing.T) {
		for _, title := range []string{
			"",
			"One Piece 1060",                      // no group tag
			"[SubsPlease] Movie Title (1080p)",    // no episode number
			"[SubsPlease] Show - 05",              // no quality tag
			"random text without any conventions", // nothing at all
		} {
			_, ok := ParseEpisode(title)
			assert.False(t, ok, title)
		}
	})
}
