package release

import (
	"regexp"
	"strings"
)

// season decorations stripped from the end of a display title before it is
// used as a feed query. Providers tag seasons tersely ("S2") or not at all,
// so a decorated catalog title would never match their entries.
var searchStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+(?:2nd|3rd|[4-9]th)\s+Season\s*$`),
	regexp.MustCompile(`(?i)\s+Season\s+\d+\s*$`),
	regexp.MustCompile(`(?i)\s+S\d+\s*$`),
	regexp.MustCompile(`(?i)\s+Part\s+\d+\s*$`),
	regexp.MustCompile(`(?i)\s+(?:II|III|IV|V|VI|VII|VIII|IX|X)\s*$`),
	regexp.MustCompile(`(?i)\s+Cour\s+\d+\s*$`),
}

// NormalizeSearchTitle strips season suffixes from a display title so feed
// queries match provider naming: "Sousou no Frieren 2nd Season" becomes
// "Sousou no Frieren". Titles without decorations pass through unchanged.
func NormalizeSearchTitle(title string) string {
	result := title
	for _, re := range searchStripPatterns {
		result = re.ReplaceAllString(result, "")
	}
	return strings.TrimSpace(result)
}

var groupTagRe = regexp.MustCompile(`^\[([^\]]+)\]`)

// canonical casing for release groups seen in the wild; unknown groups keep
// whatever casing the title carries
var knownGroups = map[string]string{
	"subsplease":   "subsplease",
	"erai-raws":    "Erai-raws",
	"horriblesubs": "horriblesubs",
	"judas":        "judas",
	"yameii":       "yameii",
	"ember":        "ember",
	"asm":          "asm",
}

// DetectGroup returns the release group named in the leading bracket tag of a
// title. Defaults to "subsplease" when no tag is present, the most common
// provider for untagged entries.
func DetectGroup(title string) string {
	m := groupTagRe.FindStringSubmatch(title)
	if m == nil {
		return "subsplease"
	}
	group := strings.TrimSpace(m[1])
	if canonical, ok := knownGroups[strings.ToLower(group)]; ok {
		return canonical
	}
	return group
}
