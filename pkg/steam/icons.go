package steam

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackIcon is the generic icon identifier used when no cached icon
// can be found for an app.
const FallbackIcon = "steam"

// Cached library icons are named after a 40-character hash plus ".jpg".
// Steam does not document this convention; the length check is an
// empirical heuristic.
const cachedIconNameLen = 44

// FindCachedIcon returns the path of the first cached icon for the given
// app ID, or FallbackIcon when the per-app cache directory is missing,
// unreadable or holds no file matching the expected shape.
func FindCachedIcon(cacheDir, appID string) string {
	appDir := filepath.Join(cacheDir, appID)

	entries, err := os.ReadDir(appDir)
	if err != nil {
		return FallbackIcon
	}

	for _, entry := range entries {
		name := entry.Name()
		if len(name) == cachedIconNameLen && strings.HasSuffix(name, ".jpg") {
			return filepath.Join(appDir, name)
		}
	}

	return FallbackIcon
}
