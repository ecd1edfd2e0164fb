package release

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SeasonInfo is the result of season detection on a display title
type SeasonInfo struct {
	Season     int
	Pattern    string // the marker that matched, "default" when nothing did
	CleanTitle string // title with the marker removed
}

// seasonPattern couples one season convention with the conversion of its
// submatches into a season number. Patterns run in order of specificity; the
// extractor may reject a syntactic match (e.g. bare roman "I") to fall through.
type seasonPattern struct {
	re     *regexp.Regexp
	season func(groups []string) (int, bool)
	label  func(groups []string, season int) string
}

var seasonPatterns = []seasonPattern{
	// S2, S02
	{re: regexp.MustCompile(`(?i)\bS(\d{1,2})\b`), season: arabic(1), label: func(g []string, _ int) string { return "S" + g[1] }},
	// Season 2, Saison 2, Series 2, Stagione 2
	{re: regexp.MustCompile(`(?i)\b(Season|Saison|Series|Stagione)[-_.\s]?(\d{1,2})\b`), season: arabic(2)},
	// 2nd Season, 3rd Season, 4th Cour, bare ordinals
	{re: regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\s*(Season|Cour)?\b`), season: arabic(1)},
	// Part 2
	{re: regexp.MustCompile(`(?i)\bPart[-_.\s]?(\d{1,2})\b`), season: arabic(1)},
	// Part II
	{re: regexp.MustCompile(`(?i)\bPart[-_.\s]?(I{1,3}|IV|VI{0,3}|IX|X)\b`), season: roman(1, 1)},
	// Cour 2
	{re: regexp.MustCompile(`(?i)\bCour[-_.\s]?(\d{1,2})\b`), season: arabic(1)},
	// trailing roman numeral: II and above only, a lone "I" is usually part of the name
	{re: regexp.MustCompile(`\b(X{0,1}(?:IX|IV|V?I{1,3}))\s*$`), season: roman(1, 2)},
	// trailing single digit after a separator; double digits are likely episode numbers
	{re: regexp.MustCompile(`(?:[-:]\s*|\s+)(\d)\s*$`), season: arabic(1), label: func(_ []string, s int) string { return fmt.Sprintf("trailing %d", s) }},
}

// DetectSeason finds the season number encoded in a title, trying the naming
// conventions from most to least specific (S-prefix, spelled season, ordinal,
// part, cour, trailing roman numeral, trailing digit). Season defaults to 1
// when no convention matches. Used for establishing a show's metadata, not for
// per-release episode parsing.
func DetectSeason(title string) SeasonInfo {
	for _, p := range seasonPatterns {
		loc := p.re.FindStringSubmatchIndex(title)
		if loc == nil {
			continue
		}

		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = title[loc[2*i]:loc[2*i+1]]
			}
		}

		season, ok := p.season(groups)
		if !ok {
			continue
		}

		label := groups[0]
		if p.label != nil {
			label = p.label(groups, season)
		}
		clean := strings.TrimSpace(title[:loc[0]] + title[loc[1]:])
		return SeasonInfo{Season: season, Pattern: label, CleanTitle: clean}
	}

	return SeasonInfo{Season: 1, Pattern: "default", CleanTitle: strings.TrimSpace(title)}
}

// arabic returns an extractor that parses submatch n as a decimal number
func arabic(n int) func([]string) (int, bool) {
	return func(groups []string) (int, bool) {
		season, err := strconv.Atoi(groups[n])
		if err != nil {
			return 0, false
		}
		return season, true
	}
}

// roman returns an extractor that converts submatch n from a roman numeral,
// rejecting values below min
func roman(n, min int) func([]string) (int, bool) {
	return func(groups []string) (int, bool) {
		season, ok := romanToArabic(groups[n])
		if !ok || season < min {
			return 0, false
		}
		return season, true
	}
}

var romanNumerals = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5,
	"VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
}

func romanToArabic(s string) (int, bool) {
	v, ok := romanNumerals[strings.ToUpper(s)]
	return v, ok
}
