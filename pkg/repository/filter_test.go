package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/episodarr/episodarr/pkg/domain"
)

func TestFilterRepository_Rules(t *testing.T) {
	// setup test database
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	t.Run("fresh database is seeded", func(t *testing.T) {
		rules, err := repos.Filter.GetGlobalRules(context.Background())
		require.NoError(t, err)
		require.Len(t, rules, 3)

		// evaluation order is priority descending
		assert.Equal(t, "Exclude batches", rules[0].Name)
		assert.Equal(t, 100, rules[0].Priority)
		assert.Equal(t, domain.ActionExclude, rules[0].Action)
		assert.Equal(t, "Prefer 1080p", rules[1].Name)
		assert.Equal(t, domain.FilterResolution, rules[1].Type)
		assert.Equal(t, "Prefer SubsPlease", rules[2].Name)
		assert.Equal(t, domain.FilterGroup, rules[2].Type)
	})

	t.Run("seeding does not repeat", func(t *testing.T) {
		err := repos.Filter.EnsureDefaultRules(context.Background())
		require.NoError(t, err)

		rules, err := repos.Filter.GetAllRules(context.Background())
		require.NoError(t, err)
		assert.Len(t, rules, 3)
	})

	t.Run("create get update delete", func(t *testing.T) {
		rule := &domain.FilterRule{
			Name:     "Exclude v0 releases",
			Type:     domain.FilterTitleExclude,
			Pattern:  "v0",
			Action:   domain.ActionExclude,
			Priority: 50,
			IsGlobal: true,
			Enabled:  true,
		}

		err := repos.Filter.CreateRule(context.Background(), rule)
		require.NoError(t, err)
		assert.NotZero(t, rule.ID)

		retrieved, err := repos.Filter.GetRule(context.Background(), rule.ID)
		require.NoError(t, err)
		assert.Equal(t, "Exclude v0 releases", retrieved.Name)
		assert.Equal(t, domain.FilterTitleExclude, retrieved.Type)
		assert.Equal(t, 50, retrieved.Priority)
		assert.False(t, retrieved.CreatedAt.IsZero())

		retrieved.Pattern = "v0 "
		retrieved.Priority = 60
		err = repos.Filter.UpdateRule(context.Background(), retrieved)
		require.NoError(t, err)

		updated, err := repos.Filter.GetRule(context.Background(), rule.ID)
		require.NoError(t, err)
		assert.Equal(t, "v0 ", updated.Pattern)
		assert.Equal(t, 60, updated.Priority)

		err = repos.Filter.DeleteRule(context.Background(), rule.ID)
		require.NoError(t, err)

		_, err = repos.Filter.GetRule(context.Background(), rule.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("toggle flips enabled", func(t *testing.T) {
		rules, err := repos.Filter.GetGlobalRules(context.Background())
		require.NoError(t, err)
		ruleID := rules[0].ID
		require.True(t, rules[0].Enabled)

		err = repos.Filter.ToggleRule(context.Background(), ruleID)
		require.NoError(t, err)

		toggled, err := repos.Filter.GetRule(context.Background(), ruleID)
		require.NoError(t, err)
		assert.False(t, toggled.Enabled)

		// disabled rules stay visible so per-show toggles can re-enable them
		global, err := repos.Filter.GetGlobalRules(context.Background())
		require.NoError(t, err)
		assert.Len(t, global, 3)

		err = repos.Filter.ToggleRule(context.Background(), ruleID)
		require.NoError(t, err)

		back, err := repos.Filter.GetRule(context.Background(), ruleID)
		require.NoError(t, err)
		assert.True(t, back.Enabled)
	})

	t.Run("missing rule errors", func(t *testing.T) {
		_, err := repos.Filter.GetRule(context.Background(), 99999)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		err = repos.Filter.ToggleRule(context.Background(), 99999)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		err = repos.Filter.DeleteRule(context.Background(), 99999)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		err = repos.Filter.UpdateRule(context.Background(), &domain.FilterRule{
			ID: 99999, Name: "x", Type: domain.FilterGroup, Pattern: "x", Action: domain.ActionPrefer,
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestFilterRepository_Overrides(t *testing.T) {
	// setup test database
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	testShow := &domain.Show{Title: "Override Target", Source: "subsplease", Quality: "1080p", Tracked: true}
	require.NoError(t, repos.Show.CreateShow(context.Background(), testShow))

	t.Run("rule toggle round trip", func(t *testing.T) {
		rules, err := repos.Filter.GetGlobalRules(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, rules)

		toggle := domain.NewRuleToggle(testShow.ID, rules[0].ID, false)
		err = repos.Filter.CreateOverride(context.Background(), &toggle)
		require.NoError(t, err)
		assert.NotZero(t, toggle.ID)

		overrides, err := repos.Filter.GetShowOverrides(context.Background(), testShow.ID)
		require.NoError(t, err)
		require.Len(t, overrides, 1)
		assert.Equal(t, domain.OverrideRuleToggle, overrides[0].Kind)
		assert.Equal(t, rules[0].ID, overrides[0].RuleID)
		assert.False(t, overrides[0].Enabled)
		assert.Empty(t, overrides[0].Pattern)

		require.NoError(t, repos.Filter.DeleteOverride(context.Background(), testShow.ID, toggle.ID))
	})

	t.Run("custom rule round trip", func(t *testing.T) {
		custom := domain.NewCustomOverride(testShow.ID, domain.FilterGroup, "Erai-raws", domain.ActionPrefer)
		err := repos.Filter.CreateOverride(context.Background(), &custom)
		require.NoError(t, err)

		overrides, err := repos.Filter.GetShowOverrides(context.Background(), testShow.ID)
		require.NoError(t, err)
		require.Len(t, overrides, 1)
		assert.Equal(t, domain.OverrideCustomRule, overrides[0].Kind)
		assert.Zero(t, overrides[0].RuleID)
		assert.Equal(t, domain.FilterGroup, overrides[0].Type)
		assert.Equal(t, "Erai-raws", overrides[0].Pattern)
		assert.Equal(t, domain.ActionPrefer, overrides[0].Action)
		assert.True(t, overrides[0].Enabled)

		require.NoError(t, repos.Filter.DeleteOverride(context.Background(), testShow.ID, custom.ID))
	})

	t.Run("overrides come back in creation order", func(t *testing.T) {
		first := domain.NewCustomOverride(testShow.ID, domain.FilterTitleInclude, "1080p", domain.ActionPrefer)
		require.NoError(t, repos.Filter.CreateOverride(context.Background(), &first))
		second := domain.NewCustomOverride(testShow.ID, domain.FilterTitleExclude, "HEVC", domain.ActionExclude)
		require.NoError(t, repos.Filter.CreateOverride(context.Background(), &second))

		overrides, err := repos.Filter.GetShowOverrides(context.Background(), testShow.ID)
		require.NoError(t, err)
		require.Len(t, overrides, 2)
		assert.Equal(t, "1080p", overrides[0].Pattern)
		assert.Equal(t, "HEVC", overrides[1].Pattern)

		require.NoError(t, repos.Filter.DeleteOverride(context.Background(), testShow.ID, first.ID))
		require.NoError(t, repos.Filter.DeleteOverride(context.Background(), testShow.ID, second.ID))
	})

	t.Run("invalid shapes rejected", func(t *testing.T) {
		// toggle carrying a custom pattern
		bad := domain.ShowOverride{
			ShowID:  testShow.ID,
			Kind:    domain.OverrideRuleToggle,
			RuleID:  1,
			Pattern: "sneaky",
		}
		err := repos.Filter.CreateOverride(context.Background(), &bad)
		require.Error(t, err)

		// custom missing its action
		bad = domain.ShowOverride{
			ShowID:  testShow.ID,
			Kind:    domain.OverrideCustomRule,
			Type:    domain.FilterGroup,
			Pattern: "Erai-raws",
		}
		err = repos.Filter.CreateOverride(context.Background(), &bad)
		require.Error(t, err)

		overrides, err := repos.Filter.GetShowOverrides(context.Background(), testShow.ID)
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("database enforces the shape too", func(t *testing.T) {
		// bypass CreateOverride and hit the CHECK constraint directly
		_, err := repos.DB.ExecContext(context.Background(),
			"INSERT INTO show_filter_overrides (show_id, filter_rule_id, pattern) VALUES (?, ?, ?)",
			testShow.ID, 1, "both shapes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "constraint")
	})

	t.Run("deleting a rule removes its toggles", func(t *testing.T) {
		rule := &domain.FilterRule{
			Name: "Short lived", Type: domain.FilterGroup, Pattern: "ASW",
			Action: domain.ActionExclude, Priority: 1, IsGlobal: true, Enabled: true,
		}
		require.NoError(t, repos.Filter.CreateRule(context.Background(), rule))

		toggle := domain.NewRuleToggle(testShow.ID, rule.ID, false)
		require.NoError(t, repos.Filter.CreateOverride(context.Background(), &toggle))

		require.NoError(t, repos.Filter.DeleteRule(context.Background(), rule.ID))

		overrides, err := repos.Filter.GetShowOverrides(context.Background(), testShow.ID)
		require.NoError(t, err)
		assert.Empty(t, overrides, "toggles must go with the rule they reference")
	})

	t.Run("delete requires matching show", func(t *testing.T) {
		custom := domain.NewCustomOverride(testShow.ID, domain.FilterGroup, "SubsPlease", domain.ActionPrefer)
		require.NoError(t, repos.Filter.CreateOverride(context.Background(), &custom))

		err := repos.Filter.DeleteOverride(context.Background(), testShow.ID+1, custom.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		require.NoError(t, repos.Filter.DeleteOverride(context.Background(), testShow.ID, custom.ID))
	})
}
