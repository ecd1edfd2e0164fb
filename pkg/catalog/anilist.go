// Package catalog resolves show titles against the AniList catalog, so shows
// can be registered under their canonical names with airing info attached.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultAniListURL = "https://graphql.anilist.co"

// searchQuery pages through anime matching a title, with next-airing info.
const searchQuery = `query ($search: String, $perPage: Int) {
  Page(perPage: $perPage) {
    media(search: $search, type: ANIME) {
      id
      title { romaji english native }
      episodes
      status
      format
      nextAiringEpisode { airingAt episode }
    }
  }
}`

// Media is one catalog entry from a title search.
type Media struct {
	ID           int64      `json:"id"`
	TitleRomaji  string     `json:"title_romaji"`
	TitleEnglish string     `json:"title_english,omitempty"`
	TitleNative  string     `json:"title_native,omitempty"`
	Episodes     int        `json:"episodes,omitempty"` // 0 when the run length is not announced
	Status       string     `json:"status"`             // RELEASING, FINISHED, NOT_YET_RELEASED, ...
	Format       string     `json:"format"`             // TV, MOVIE, OVA, ...
	NextEpisode  int        `json:"next_episode,omitempty"`
	NextAiring   *time.Time `json:"next_airing,omitempty"`
}

// Config defines client parameters, zero values fall back to defaults
type Config struct {
	URL     string
	Timeout time.Duration
	PerPage int
}

// Client queries the AniList GraphQL API. Interactive path, no retries;
// failures surface to the caller as plain errors.
type Client struct {
	url     string
	client  *http.Client
	perPage int
}

// NewClient creates a catalog client
func NewClient(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = defaultAniListURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PerPage == 0 {
		cfg.PerPage = 10
	}

	return &Client{
		url:     cfg.URL,
		client:  &http.Client{Timeout: cfg.Timeout},
		perPage: cfg.PerPage,
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlResponse struct {
	Data struct {
		Page struct {
			Media []gqlMedia `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type gqlMedia struct {
	ID    int64 `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native"`
	} `json:"title"`
	Episodes          int    `json:"episodes"`
	Status            string `json:"status"`
	Format            string `json:"format"`
	NextAiringEpisode *struct {
		AiringAt int64 `json:"airingAt"`
		Episode  int   `json:"episode"`
	} `json:"nextAiringEpisode"`
}

// Search looks up anime by title and returns matches in the API's relevance
// order. An unknown title is an empty result, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Media, error) {
	body, err := json.Marshal(gqlRequest{
		Query:     searchQuery,
		Variables: map[string]any{"search": query, "perPage": c.perPage},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query anilist: %w", err)
	}
	defer resp.Body.Close()

	var out gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("anilist: %s", out.Errors[0].Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	media := make([]Media, 0, len(out.Data.Page.Media))
	for _, m := range out.Data.Page.Media {
		entry := Media{
			ID:           m.ID,
			TitleRomaji:  m.Title.Romaji,
			TitleEnglish: m.Title.English,
			TitleNative:  m.Title.Native,
			Episodes:     m.Episodes,
			Status:       m.Status,
			Format:       m.Format,
		}
		if m.NextAiringEpisode != nil {
			at := time.Unix(m.NextAiringEpisode.AiringAt, 0)
			entry.NextAiring = &at
			entry.NextEpisode = m.NextAiringEpisode.Episode
		}
		media = append(media, entry)
	}
	return media, nil
}
