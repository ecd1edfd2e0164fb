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

	"github.com/episodarr/episodarr/pkg/domain"
	"github.com/episodarr/episodarr/server/mocks"
)

func TestServer_listRulesHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetAllRulesFunc: func(ctx context.Context) ([]domain.FilterRule, error) {
			return []domain.FilterRule{
				{ID: 1, Name: "prefer 1080p", Type: domain.FilterResolution, Pattern: "1080p", Action: domain.ActionPrefer, Priority: 10, IsGlobal: true, Enabled: true},
				{ID: 2, Name: "no batches", Type: domain.FilterTitleExclude, Pattern: "batch", Action: domain.ActionExclude, Priority: 5, IsGlobal: true, Enabled: false},
			}, nil
		},
	}

	srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

	req := httptest.NewRequest("GET", "/rules", http.NoBody)
	w := httptest.NewRecorder()

	srv.listRulesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rules []domain.FilterRule
	err := json.Unmarshal(w.Body.Bytes(), &rules)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "prefer 1080p", rules[0].Name)
	assert.False(t, rules[1].Enabled)
}

func TestServer_createRuleHandler(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			CreateRuleFunc: func(ctx context.Context, rule *domain.FilterRule) error {
				assert.Equal(t, "prefer subsplease", rule.Name)
				assert.Equal(t, domain.FilterGroup, rule.Type)
				assert.Equal(t, domain.ActionPrefer, rule.Action) // default action
				assert.True(t, rule.IsGlobal)
				assert.True(t, rule.Enabled)
				rule.ID = 3
				return nil
			},
			GetRuleFunc: func(ctx context.Context, id int64) (*domain.FilterRule, error) {
				require.Equal(t, int64(3), id)
				return &domain.FilterRule{ID: 3, Name: "prefer subsplease", Type: domain.FilterGroup, Pattern: "SubsPlease", Action: domain.ActionPrefer, IsGlobal: true, Enabled: true}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		body := `{"name":"prefer subsplease","type":"group","pattern":"SubsPlease"}`
		req := httptest.NewRequest("POST", "/rules", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.createRuleHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.FilterRule
		err := json.Unmarshal(w.Body.Bytes(), &created)
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
		assert.Len(t, database.CreateRuleCalls(), 1)
	})

	t.Run("explicit flags kept", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			CreateRuleFunc: func(ctx context.Context, rule *domain.FilterRule) error {
				assert.False(t, rule.IsGlobal)
				assert.False(t, rule.Enabled)
				assert.Equal(t, domain.ActionRequire, rule.Action)
				return nil
			},
			GetRuleFunc: func(ctx context.Context, id int64) (*domain.FilterRule, error) {
				return &domain.FilterRule{ID: id}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		body := `{"name":"hd only","type":"resolution","pattern":"1080p","action":"require","is_global":false,"enabled":false}`
		req := httptest.NewRequest("POST", "/rules", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.createRuleHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/rules", strings.NewReader(`{"type":"group","pattern":"x"}`))
		w := httptest.NewRecorder()

		srv.createRuleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "rule name is required")
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		body := `{"name":"x","type":"codec","pattern":"x265"}`
		req := httptest.NewRequest("POST", "/rules", strings.NewReader(body))
		w := httptest.NewRecorder()

		srv.createRuleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown filter type")
	})

	t.Run("invalid body rejected", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/rules", strings.NewReader("{"))
		w := httptest.NewRecorder()

		srv.createRuleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_updateRuleHandler(t *testing.T) {
	t.Run("path id wins", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			UpdateRuleFunc: func(ctx context.Context, rule *domain.FilterRule) error {
				assert.Equal(t, int64(3), rule.ID)
				assert.Equal(t, 20, rule.Priority)
				return nil
			},
			GetRuleFunc: func(ctx context.Context, id int64) (*domain.FilterRule, error) {
				return &domain.FilterRule{ID: 3, Name: "prefer subsplease", Priority: 20}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		body := `{"name":"prefer subsplease","type":"group","pattern":"SubsPlease","priority":20}`
		req := httptest.NewRequest("PUT", "/rules/3", strings.NewReader(body))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		srv.updateRuleHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, database.UpdateRuleCalls(), 1)

		var updated domain.FilterRule
		err := json.Unmarshal(w.Body.Bytes(), &updated)
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Priority)
	})

	t.Run("missing rule is 404", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			UpdateRuleFunc: func(ctx context.Context, rule *domain.FilterRule) error {
				return fmt.Errorf("rule %d: %w", rule.ID, domain.ErrNotFound)
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		body := `{"name":"x","type":"group","pattern":"y"}`
		req := httptest.NewRequest("PUT", "/rules/99", strings.NewReader(body))
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()

		srv.updateRuleHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		srv := testServer(&mocks.DatabaseMock{}, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("PUT", "/rules/abc", strings.NewReader(`{}`))
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		srv.updateRuleHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid rule ID")
	})
}

func TestServer_deleteRuleHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		DeleteRuleFunc: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(3), id)
			return nil
		},
	}

	srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

	req := httptest.NewRequest("DELETE", "/rules/3", http.NoBody)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	srv.deleteRuleHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
	assert.Len(t, database.DeleteRuleCalls(), 1)
}

func TestServer_toggleRuleHandler(t *testing.T) {
	t.Run("toggled and reloaded", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			ToggleRuleFunc: func(ctx context.Context, id int64) error {
				assert.Equal(t, int64(3), id)
				return nil
			},
			GetRuleFunc: func(ctx context.Context, id int64) (*domain.FilterRule, error) {
				return &domain.FilterRule{ID: 3, Name: "prefer subsplease", Enabled: false}, nil
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/rules/3/toggle", http.NoBody)
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		srv.toggleRuleHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, database.ToggleRuleCalls(), 1)
		assert.Len(t, database.GetRuleCalls(), 1)

		var rule domain.FilterRule
		err := json.Unmarshal(w.Body.Bytes(), &rule)
		require.NoError(t, err)
		assert.False(t, rule.Enabled)
	})

	t.Run("missing rule is 404", func(t *testing.T) {
		database := &mocks.DatabaseMock{
			ToggleRuleFunc: func(ctx context.Context, id int64) error {
				return fmt.Errorf("rule %d: %w", id, domain.ErrNotFound)
			},
		}

		srv := testServer(database, &mocks.TrackerMock{}, &mocks.CatalogMock{}, &mocks.TorrentClientMock{})

		req := httptest.NewRequest("POST", "/rules/99/toggle", http.NoBody)
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()

		srv.toggleRuleHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
