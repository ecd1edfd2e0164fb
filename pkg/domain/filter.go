package domain

import (
	"fmt"
	"time"
)

// FilterType defines what part of a release title a rule inspects
type FilterType string

// filter types
const (
	FilterResolution   FilterType = "resolution"
	FilterGroup        FilterType = "group"
	FilterTitleExclude FilterType = "title_exclude"
	FilterTitleInclude FilterType = "title_include"
)

// Valid reports whether the filter type is one of the known variants
func (t FilterType) Valid() bool {
	switch t {
	case FilterResolution, FilterGroup, FilterTitleExclude, FilterTitleInclude:
		return true
	}
	return false
}

// FilterAction defines what happens when a rule matches
type FilterAction string

// filter actions
const (
	ActionPrefer  FilterAction = "prefer"
	ActionRequire FilterAction = "require"
	ActionExclude FilterAction = "exclude"
)

// Valid reports whether the action is one of the known variants
func (a FilterAction) Valid() bool {
	switch a {
	case ActionPrefer, ActionRequire, ActionExclude:
		return true
	}
	return false
}

// FilterRule is a global filtering rule. Rules are evaluated in priority
// descending order, ties broken by ascending id (insertion order).
type FilterRule struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Type      FilterType   `json:"type"`
	Pattern   string       `json:"pattern"`
	Action    FilterAction `json:"action"`
	Priority  int          `json:"priority"`
	IsGlobal  bool         `json:"is_global"`
	Enabled   bool         `json:"enabled"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate checks the rule fields before it is stored
func (r *FilterRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}
	if r.Pattern == "" {
		return fmt.Errorf("rule pattern is required")
	}
	if !r.Type.Valid() {
		return fmt.Errorf("unknown filter type %q", r.Type)
	}
	if !r.Action.Valid() {
		return fmt.Errorf("unknown filter action %q", r.Action)
	}
	return nil
}

// OverrideKind discriminates the two shapes a show override can take
type OverrideKind string

// override kinds
const (
	OverrideRuleToggle OverrideKind = "rule_toggle" // toggles a global rule for one show
	OverrideCustomRule OverrideKind = "custom"      // show-private rule, never ranked against global priorities
)

// ShowOverride adjusts filtering for a single show. An override has exactly one
// of two shapes, discriminated by Kind: a toggle referencing a global rule by id
// (RuleID meaningful), or a custom show-private rule (Type/Pattern/Action
// meaningful). Enabled applies to both shapes: a toggle with Enabled=false
// suppresses the referenced global rule for this show, a custom rule with
// Enabled=false is inert. Construct via NewRuleToggle or NewCustomOverride;
// Validate enforces the shape invariant before storage.
type ShowOverride struct {
	ID      int64        `json:"id"`
	ShowID  int64        `json:"show_id"`
	Kind    OverrideKind `json:"kind"`
	Enabled bool         `json:"enabled"`

	// rule_toggle shape
	RuleID int64 `json:"rule_id,omitempty"`

	// custom shape
	Type    FilterType   `json:"type,omitempty"`
	Pattern string       `json:"pattern,omitempty"`
	Action  FilterAction `json:"action,omitempty"`
}

// NewRuleToggle builds an override that enables or disables a global rule for one show
func NewRuleToggle(showID, ruleID int64, enabled bool) ShowOverride {
	return ShowOverride{ShowID: showID, Kind: OverrideRuleToggle, RuleID: ruleID, Enabled: enabled}
}

// NewCustomOverride builds a show-private rule override
func NewCustomOverride(showID int64, t FilterType, pattern string, action FilterAction) ShowOverride {
	return ShowOverride{ShowID: showID, Kind: OverrideCustomRule, Enabled: true, Type: t, Pattern: pattern, Action: action}
}

// Validate enforces the one-shape-only invariant
func (o *ShowOverride) Validate() error {
	switch o.Kind {
	case OverrideRuleToggle:
		if o.RuleID == 0 {
			return fmt.Errorf("rule toggle override requires a rule id")
		}
		if o.Type != "" || o.Pattern != "" || o.Action != "" {
			return fmt.Errorf("rule toggle override must not carry a custom rule")
		}
	case OverrideCustomRule:
		if o.RuleID != 0 {
			return fmt.Errorf("custom override must not reference a global rule")
		}
		if o.Pattern == "" {
			return fmt.Errorf("custom override pattern is required")
		}
		if !o.Type.Valid() {
			return fmt.Errorf("unknown filter type %q", o.Type)
		}
		if !o.Action.Valid() {
			return fmt.Errorf("unknown filter action %q", o.Action)
		}
	default:
		return fmt.Errorf("unknown override kind %q", o.Kind)
	}
	return nil
}
