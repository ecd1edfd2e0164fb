package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/episodarr/episodarr/pkg/catalog"
	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/pkg/scheduler"
	"github.com/episodarr/episodarr/server/mocks"
)

func TestServer_syncHandler(t *testing.T) {
	t.Run("cycle completed", func(t *testing.T) {
		tracker := &mocks.TrackerMock{
			RunOnceFunc: func(ctx context.Context) (int, error) { return 2, nil },
		}

		srv := testServer(&mocks.DatabaseMock{}, tracker, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/sync", http.NoBody)
		w := httptest.NewRecorder()

		srv.syncHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "completed", resp["status"])
		assert.Equal(t, float64(2), resp["dispatched"])
		assert.Len(t, tracker.RunOnceCalls(), 1)
	})

	t.Run("cycle already running is 409", func(t *testing.T) {
		tracker := &mocks.TrackerMock{
			RunOnceFunc: func(ctx context.Context) (int, error) { return 0, scheduler.ErrCycleRunning },
		}

		srv := testServer(&mocks.DatabaseMock{}, tracker, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/sync", http.NoBody)
		w := httptest.NewRecorder()

		srv.syncHandler(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("cycle failure is 500", func(t *testing.T) {
		tracker := &mocks.TrackerMock{
			RunOnceFunc: func(ctx context.Context) (int, error) { return 0, fmt.Errorf("feed unreachable") },
		}

		srv := testServer(&mocks.DatabaseMock{}, tracker, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/sync", http.NoBody)
		w := httptest.NewRecorder()

		srv.syncHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "feed unreachable")
	})
}

func TestServer_historyHandler(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			GetRecentHistoryFunc: func(ctx context.Context, limit int) ([]domain.DownloadRecord, error) {
				assert.Equal(t, 50, limit)
				return []domain.DownloadRecord{{ID: 1, ShowID: 2, Episode: 5, Hash: "hash05"}}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/history", http.NoBody)
		w := httptest.NewRecorder()

		srv.historyHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var records []domain.DownloadRecord
		err := json.Unmarshal(w.Body.Bytes(), &records)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "hash05", records[0].Hash)
	})

	t.Run("explicit limit", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			GetRecentHistoryFunc: func(ctx context.Context, limit int) ([]domain.DownloadRecord, error) {
				assert.Equal(t, 10, limit)
				return []domain.DownloadRecord{}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/history?limit=10", http.NoBody)
		w := httptest.NewRecorder()

		srv.historyHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		for _, limit := range []string{"abc", "0", "-5"} {
			req := httptest.NewRequest("GET", "/history?limit="+limit, http.NoBody)
			w := httptest.NewRecorder()

			srv.historyHandler(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "limit %q", limit)
			assert.Contains(t, w.Body.String(), "invalid limit")
		}
	})
}

func TestServer_pollHandlers(t *testing.T) {
	t.Run("get config", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			GetPollConfigFunc: func(ctx context.Context) (*domain.PollConfig, error) {
				return &domain.PollConfig{TimesPerDay: 4, Enabled: true}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/poll", http.NoBody)
		w := httptest.NewRecorder()

		srv.getPollHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var cfg domain.PollConfig
		err := json.Unmarshal(w.Body.Bytes(), &cfg)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.TimesPerDay)
		assert.True(t, cfg.Enabled)
	})

	t.Run("update config", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			UpdatePollConfigFunc: func(ctx context.Context, timesPerDay int, enabled bool) error {
				assert.Equal(t, 8, timesPerDay)
				assert.False(t, enabled)
				return nil
			},
			GetPollConfigFunc: func(ctx context.Context) (*domain.PollConfig, error) {
				return &domain.PollConfig{TimesPerDay: 8, Enabled: false}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("PUT", "/poll", strings.NewReader(`{"times_per_day":8,"enabled":false}`))
		w := httptest.NewRecorder()

		srv.updatePollHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, database.UpdatePollConfigCalls(), 1)

		var cfg domain.PollConfig
		err := json.Unmarshal(w.Body.Bytes(), &cfg)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.TimesPerDay)
	})

	t.Run("zero times_per_day rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("PUT", "/poll", strings.NewReader(`{"times_per_day":0,"enabled":true}`))
		w := httptest.NewRecorder()

		srv.updatePollHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "times_per_day must be at least 1")
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("PUT", "/poll", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		srv.updatePollHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_searchHandler(t *testing.T) {
	t.Run("results returned", func(t *testing.T) {
		cat := &mocks.CatalogMock{
			SearchFunc: func(ctx context.Context, query string) ([]catalog.Media, error) {
				assert.Equal(t, "frieren", query)
				return []catalog.Media{
					{ID: 154587, TitleRomaji: "Sousou no Frieren", TitleEnglish: "Frieren: Beyond Journey's End", Status: "FINISHED", Format: "TV"},
				}, nil
			},
		}

		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, cat, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/search?q=frieren", http.NoBody)
		w := httptest.NewRecorder()

		srv.searchHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var results []catalog.Media
		err := json.Unmarshal(w.Body.Bytes(), &results)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(154587), results[0].ID)
		assert.Len(t, cat.SearchCalls(), 1)
	})

	t.Run("missing query rejected", func(t *testing.T) {
		cat := &mocks.CatalogMock{}
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, cat, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/search", http.NoBody)
		w := httptest.NewRecorder()

		srv.searchHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "search query is required")
		assert.Empty(t, cat.SearchCalls())
	})

	t.Run("catalog failure is 500", func(t *testing.T) {
		cat := &mocks.CatalogMock{
			SearchFunc: func(ctx context.Context, query string) ([]catalog.Media, error) {
				return nil, fmt.Errorf("anilist down")
			},
		}

		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, cat, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("GET", "/search?q=frieren", http.NoBody)
		w := httptest.NewRecorder()

		srv.searchHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_clearTorrentsHandler(t *testing.T) {
	t.Run("empty body keeps data", func(t *testing.T) {
		torrents := &mocks.TorrentClientMock{
			RemoveAllFunc: func(ctx context.Context, deleteData bool) (int, error) {
				assert.False(t, deleteData)
				return 3, nil
			},
		}

		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, torrents)

		req := httptest.NewRequest("POST", "/transmission/clear", http.NoBody)
		w := httptest.NewRecorder()

		srv.clearTorrentsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]int
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 3, resp["removed"])
	})

	t.Run("delete_data passed through", func(t *testing.T) {
		torrents := &mocks.TorrentClientMock{
			RemoveAllFunc: func(ctx context.Context, deleteData bool) (int, error) {
				assert.True(t, deleteData)
				return 0, nil
			},
		}

		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, torrents)

		req := httptest.NewRequest("POST", "/transmission/clear", strings.NewReader(`{"delete_data":true}`))
		w := httptest.NewRecorder()

		srv.clearTorrentsHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, torrents.RemoveAllCalls(), 1)
	})

	t.Run("client failure is 500", func(t *testing.T) {
		torrents := &mocks.TorrentClientMock{
			RemoveAllFunc: func(ctx context.Context, deleteData bool) (int, error) {
				return 0, fmt.Errorf("transmission unreachable")
			},
		}

		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, torrents)

		req := httptest.NewRequest("POST", "/transmission/clear", http.NoBody)
		w := httptest.NewRecorder()

		srv.clearTorrentsHandler(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
