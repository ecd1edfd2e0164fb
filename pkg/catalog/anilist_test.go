package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "media(search: $search, type: ANIME)")
		assert.Equal(t, "frieren", req.Variables["search"])
		assert.Equal(t, float64(10), req.Variables["perPage"])

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"data": {
				"Page": {
					"media": [
						{
							"id": 154587,
							"title": {"romaji": "Sousou no Frieren", "english": "Frieren: Beyond Journey's End", "native": "葬送のフリーレン"},
							"episodes": 28,
							"status": "FINISHED",
							"format": "TV"
						},
						{
							"id": 182255,
							"title": {"romaji": "Sousou no Frieren 2nd Season", "english": null, "native": null},
							"episodes": null,
							"status": "RELEASING",
							"format": "TV",
							"nextAiringEpisode": {"airingAt": 1717200000, "episode": 5}
						}
					]
				}
			}
		}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	media, err := client.Search(context.Background(), "frieren")
	require.NoError(t, err)
	require.Len(t, media, 2)

	assert.Equal(t, int64(154587), media[0].ID)
	assert.Equal(t, "Sousou no Frieren", media[0].TitleRomaji)
	assert.Equal(t, "Frieren: Beyond Journey's End", media[0].TitleEnglish)
	assert.Equal(t, 28, media[0].Episodes)
	assert.Equal(t, "FINISHED", media[0].Status)
	assert.Nil(t, media[0].NextAiring, "finished show has no airing schedule")

	assert.Equal(t, int64(182255), media[1].ID)
	assert.Empty(t, media[1].TitleEnglish, "null title maps to empty string")
	assert.Zero(t, media[1].Episodes, "unannounced run length maps to zero")
	require.NotNil(t, media[1].NextAiring)
	assert.Equal(t, int64(1717200000), media[1].NextAiring.Unix())
	assert.Equal(t, 5, media[1].NextEpisode)
}

func TestClient_Search_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{"data": {"Page": {"media": []}}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	client := NewClient(Config{URL: srv.URL})
	media, err := client.Search(context.Background(), "definitely not an anime")
	require.NoError(t, err)
	assert.Empty(t, media)
}

func TestClient_Search_Errors(t *testing.T) {
	t.Run("graphql error surfaces with its message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, err := w.Write([]byte(`{"errors": [{"message": "Syntax Error: Unexpected Name"}], "data": null}`))
			require.NoError(t, err)
		}))
		defer srv.Close()

		client := NewClient(Config{URL: srv.URL})
		_, err := client.Search(context.Background(), "frieren")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Syntax Error")
	})

	t.Run("bad status without graphql payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, err := w.Write([]byte(`{}`))
			require.NoError(t, err)
		}))
		defer srv.Close()

		client := NewClient(Config{URL: srv.URL})
		_, err := client.Search(context.Background(), "frieren")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewClient(Config{URL: "http://127.0.0.1:1"})
		_, err := client.Search(context.Background(), "frieren")
		require.Error(t, err)
	})
}
