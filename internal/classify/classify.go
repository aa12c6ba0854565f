// Package classify decides whether a discovered Steam app is a real game
// or a tool/runtime entry that should not get a launcher.
package classify

import "strings"

// Rules holds the exclusion sets applied to every discovered app.
// Caller-supplied values replace the defaults entirely; they are never merged.
type Rules struct {
	// IgnoredAppIDs suppresses apps by exact ID match.
	IgnoredAppIDs []string
	// SkipKeywords suppresses apps whose name contains any of these,
	// case-insensitively.
	SkipKeywords []string
}

// DefaultRules returns the built-in exclusion sets covering the tool and
// runtime entries Steam installs alongside games.
func DefaultRules() Rules {
	return Rules{
		IgnoredAppIDs: []string{"480"},
		SkipKeywords: []string{
			"Proton",
			"Steam Linux Runtime",
			"Steamworks",
			"Common Redistributables",
			"SteamVR",
			"Dedicated Server",
			"Soundtrack",
		},
	}
}

// ShouldSkip reports whether the app with the given name and ID is a
// tool/runtime entry according to the rules. ID matching is exact;
// keyword matching is a case-insensitive substring check.
func (r Rules) ShouldSkip(name, appID string) bool {
	for _, id := range r.IgnoredAppIDs {
		if id == appID {
			return true
		}
	}

	nameLower := strings.ToLower(name)
	for _, keyword := range r.SkipKeywords {
		if strings.Contains(nameLower, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}

// ParseList splits a comma-separated override list, trimming whitespace
// and dropping empty items.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
