// Package filter evaluates release items against the prioritized rule set and
// per-show overrides. Apply is a pure function: same inputs, same output,
// no stored state.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/episodarr/episodarr/pkg/domain"
)

// bonus for a matching show-private prefer rule, deliberately below any
// realistic global rule priority so per-show preferences never outrank
// deliberate global curation
const customPreferBonus = 5

// Apply filters and scores items against the global rules and one show's
// overrides. Items matching an exclude rule or failing a require rule are
// dropped; prefer matches accumulate score. Survivors are ordered by score
// descending, then seeders descending, then input order. Rule order is
// normalized internally (priority descending, ties by ascending id), so
// callers may pass rules in any order.
func Apply(rules []domain.FilterRule, overrides []domain.ShowOverride, items []domain.ReleaseItem) []domain.FilterResult {
	sorted := make([]domain.FilterRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].ID < sorted[j].ID
	})

	// global rule ids suppressed for this show
	disabled := make(map[int64]bool)
	for _, o := range overrides {
		if o.Kind == domain.OverrideRuleToggle && !o.Enabled {
			disabled[o.RuleID] = true
		}
	}

	results := make([]domain.FilterResult, 0, len(items))
	for _, item := range items {
		if res, ok := evaluate(sorted, disabled, overrides, item); ok {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.Seeders > results[j].Item.Seeders
	})

	return results
}

// evaluate runs one item through the global rules and then the show's custom
// overrides. Returns ok=false when the item is dropped.
func evaluate(rules []domain.FilterRule, disabled map[int64]bool, overrides []domain.ShowOverride, item domain.ReleaseItem) (domain.FilterResult, bool) {
	score := 0
	var matched []string

	for _, rule := range rules {
		if !rule.Enabled || disabled[rule.ID] {
			continue
		}

		ok := patternMatches(rule.Type, rule.Pattern, item.Title)
		switch rule.Action {
		case domain.ActionExclude:
			if ok {
				return domain.FilterResult{}, false
			}
		case domain.ActionRequire:
			if !ok {
				return domain.FilterResult{}, false
			}
			matched = append(matched, fmt.Sprintf("%s (required)", rule.Name))
		case domain.ActionPrefer:
			if ok {
				points := max(rule.Priority, 1)
				score += points
				matched = append(matched, fmt.Sprintf("%s (+%d)", rule.Name, points))
			}
		}
	}

	// show-private custom rules, evaluated in insertion order and never
	// ranked against global priorities
	for _, o := range overrides {
		if o.Kind != domain.OverrideCustomRule || !o.Enabled {
			continue
		}

		ok := patternMatches(o.Type, o.Pattern, item.Title)
		switch o.Action {
		case domain.ActionExclude:
			if ok {
				return domain.FilterResult{}, false
			}
		case domain.ActionRequire:
			if !ok {
				return domain.FilterResult{}, false
			}
		case domain.ActionPrefer:
			if ok {
				score += customPreferBonus
				matched = append(matched, fmt.Sprintf("show:%s (+%d)", o.Pattern, customPreferBonus))
			}
		}
	}

	return domain.FilterResult{Item: item, Score: score, Matched: matched}, true
}

// patternMatches checks a pattern against a title, case-insensitive. Group
// patterns must appear bracket-delimited to avoid partial-word false
// positives; the other types are plain substring matches.
func patternMatches(t domain.FilterType, pattern, title string) bool {
	titleLower := strings.ToLower(title)
	patternLower := strings.ToLower(pattern)

	if t == domain.FilterGroup {
		return strings.Contains(titleLower, "["+patternLower+"]")
	}
	return strings.Contains(titleLower, patternLower)
}
