package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/episodarr/episodarr/pkg/domain"
)

// FilterRepository handles filter rule and override database operations
type FilterRepository struct {
	db *sqlx.DB
}

// filterRuleSQL represents a filter rule for SQL operations
type filterRuleSQL struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	FilterType string    `db:"filter_type"`
	Pattern    string    `db:"pattern"`
	Action     string    `db:"action"`
	Priority   int       `db:"priority"`
	IsGlobal   bool      `db:"is_global"`
	Enabled    bool      `db:"enabled"`
	CreatedAt  time.Time `db:"created_at"`
}

// overrideSQL represents a show filter override for SQL operations. Exactly one
// of the two column groups is populated, enforced by a CHECK constraint.
type overrideSQL struct {
	ID      int64   `db:"id"`
	ShowID  int64   `db:"show_id"`
	RuleID  *int64  `db:"filter_rule_id"`
	Type    *string `db:"filter_type"`
	Pattern *string `db:"pattern"`
	Action  *string `db:"action"`
	Enabled bool    `db:"enabled"`
}

// NewFilterRepository creates a new filter repository
func NewFilterRepository(database *sqlx.DB) *FilterRepository {
	return &FilterRepository{db: database}
}

// CreateRule inserts a new filter rule
func (r *FilterRepository) CreateRule(ctx context.Context, rule *domain.FilterRule) error {
	sqlRule := &filterRuleSQL{
		Name:       rule.Name,
		FilterType: string(rule.Type),
		Pattern:    rule.Pattern,
		Action:     string(rule.Action),
		Priority:   rule.Priority,
		IsGlobal:   rule.IsGlobal,
		Enabled:    rule.Enabled,
	}

	query := `
		INSERT INTO filter_rules (name, filter_type, pattern, action, priority, is_global, enabled)
		VALUES (:name, :filter_type, :pattern, :action, :priority, :is_global, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlRule)
	if err != nil {
		return fmt.Errorf("create rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	rule.ID = id
	return nil
}

// GetRule retrieves a filter rule by ID
func (r *FilterRepository) GetRule(ctx context.Context, id int64) (*domain.FilterRule, error) {
	var sqlRule filterRuleSQL
	err := r.db.GetContext(ctx, &sqlRule, "SELECT * FROM filter_rules WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rule %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get rule: %w", err)
	}
	return r.toDomainRule(&sqlRule), nil
}

// GetAllRules retrieves every filter rule in evaluation order
func (r *FilterRepository) GetAllRules(ctx context.Context) ([]domain.FilterRule, error) {
	var sqlRules []filterRuleSQL
	err := r.db.SelectContext(ctx, &sqlRules, "SELECT * FROM filter_rules ORDER BY priority DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	rules := make([]domain.FilterRule, len(sqlRules))
	for i, sqlRule := range sqlRules {
		rules[i] = *r.toDomainRule(&sqlRule)
	}
	return rules, nil
}

// GetGlobalRules retrieves global rules in evaluation order, disabled ones
// included so per-show toggles can re-enable them
func (r *FilterRepository) GetGlobalRules(ctx context.Context) ([]domain.FilterRule, error) {
	var sqlRules []filterRuleSQL
	err := r.db.SelectContext(ctx, &sqlRules, "SELECT * FROM filter_rules WHERE is_global = 1 ORDER BY priority DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("get global rules: %w", err)
	}

	rules := make([]domain.FilterRule, len(sqlRules))
	for i, sqlRule := range sqlRules {
		rules[i] = *r.toDomainRule(&sqlRule)
	}
	return rules, nil
}

// UpdateRule replaces all editable fields of a rule
func (r *FilterRepository) UpdateRule(ctx context.Context, rule *domain.FilterRule) error {
	query := `
		UPDATE filter_rules
		SET name = ?, filter_type = ?, pattern = ?, action = ?, priority = ?, is_global = ?, enabled = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		rule.Name, string(rule.Type), rule.Pattern, string(rule.Action),
		rule.Priority, rule.IsGlobal, rule.Enabled, rule.ID)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("rule %d: %w", rule.ID, domain.ErrNotFound)
	}
	return nil
}

// ToggleRule flips the enabled flag of a rule
func (r *FilterRepository) ToggleRule(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "UPDATE filter_rules SET enabled = NOT enabled WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("toggle rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("rule %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteRule removes a rule; show toggles referencing it go with it by cascade
func (r *FilterRepository) DeleteRule(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM filter_rules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("rule %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetShowOverrides retrieves overrides for a show in creation order, which is
// also the order custom overrides are applied in
func (r *FilterRepository) GetShowOverrides(ctx context.Context, showID int64) ([]domain.ShowOverride, error) {
	var sqlOverrides []overrideSQL
	err := r.db.SelectContext(ctx, &sqlOverrides,
		"SELECT * FROM show_filter_overrides WHERE show_id = ? ORDER BY id", showID)
	if err != nil {
		return nil, fmt.Errorf("get show overrides: %w", err)
	}

	overrides := make([]domain.ShowOverride, len(sqlOverrides))
	for i, sqlOverride := range sqlOverrides {
		overrides[i] = r.toDomainOverride(&sqlOverride)
	}
	return overrides, nil
}

// CreateOverride stores a show override after checking its shape. The database
// CHECK constraint backs the same invariant.
func (r *FilterRepository) CreateOverride(ctx context.Context, override *domain.ShowOverride) error {
	if err := override.Validate(); err != nil {
		return fmt.Errorf("validate override: %w", err)
	}

	var result sql.Result
	var err error
	switch override.Kind {
	case domain.OverrideRuleToggle:
		result, err = r.db.ExecContext(ctx,
			"INSERT INTO show_filter_overrides (show_id, filter_rule_id, enabled) VALUES (?, ?, ?)",
			override.ShowID, override.RuleID, override.Enabled)
	case domain.OverrideCustomRule:
		result, err = r.db.ExecContext(ctx,
			"INSERT INTO show_filter_overrides (show_id, filter_type, pattern, action, enabled) VALUES (?, ?, ?, ?, ?)",
			override.ShowID, string(override.Type), override.Pattern, string(override.Action), override.Enabled)
	default:
		return fmt.Errorf("unknown override kind %q", override.Kind)
	}
	if err != nil {
		return fmt.Errorf("create override: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	override.ID = id
	return nil
}

// DeleteOverride removes one override of a show
func (r *FilterRepository) DeleteOverride(ctx context.Context, showID, overrideID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM show_filter_overrides WHERE id = ? AND show_id = ?", overrideID, showID)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("override %d: %w", overrideID, domain.ErrNotFound)
	}
	return nil
}

// EnsureDefaultRules seeds the starter rule set when the table is empty, so a
// fresh install filters sensibly before anyone configures it
func (r *FilterRepository) EnsureDefaultRules(ctx context.Context) error {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM filter_rules"); err != nil {
		return fmt.Errorf("count rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []domain.FilterRule{
		{Name: "Prefer 1080p", Type: domain.FilterResolution, Pattern: "1080p", Action: domain.ActionPrefer, Priority: 10, IsGlobal: true, Enabled: true},
		{Name: "Prefer SubsPlease", Type: domain.FilterGroup, Pattern: "SubsPlease", Action: domain.ActionPrefer, Priority: 5, IsGlobal: true, Enabled: true},
		{Name: "Exclude batches", Type: domain.FilterTitleExclude, Pattern: "batch", Action: domain.ActionExclude, Priority: 100, IsGlobal: true, Enabled: true},
	}
	for i := range defaults {
		if err := r.CreateRule(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("seed rule %q: %w", defaults[i].Name, err)
		}
	}
	return nil
}

// toDomainRule converts filterRuleSQL to domain.FilterRule
func (r *FilterRepository) toDomainRule(sqlRule *filterRuleSQL) *domain.FilterRule {
	return &domain.FilterRule{
		ID:        sqlRule.ID,
		Name:      sqlRule.Name,
		Type:      domain.FilterType(sqlRule.FilterType),
		Pattern:   sqlRule.Pattern,
		Action:    domain.FilterAction(sqlRule.Action),
		Priority:  sqlRule.Priority,
		IsGlobal:  sqlRule.IsGlobal,
		Enabled:   sqlRule.Enabled,
		CreatedAt: sqlRule.CreatedAt,
	}
}

// toDomainOverride converts overrideSQL to domain.ShowOverride
func (r *FilterRepository) toDomainOverride(sqlOverride *overrideSQL) domain.ShowOverride {
	override := domain.ShowOverride{
		ID:      sqlOverride.ID,
		ShowID:  sqlOverride.ShowID,
		Enabled: sqlOverride.Enabled,
	}
	if sqlOverride.RuleID != nil {
		override.Kind = domain.OverrideRuleToggle
		override.RuleID = *sqlOverride.RuleID
		return override
	}

	override.Kind = domain.OverrideCustomRule
	if sqlOverride.Type != nil {
		override.Type = domain.FilterType(*sqlOverride.Type)
	}
	if sqlOverride.Pattern != nil {
		override.Pattern = *sqlOverride.Pattern
	}
	if sqlOverride.Action != nil {
		override.Action = domain.FilterAction(*sqlOverride.Action)
	}
	return override
}
