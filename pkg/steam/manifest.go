package steam

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// PlaceholderName is used when a manifest carries no name field.
const PlaceholderName = "Unknown Game"

// Manifest filename convention: appmanifest_<appid>.acf.
const (
	manifestPrefix = "appmanifest_"
	manifestExt    = ".acf"
)

// Field patterns for the two values we care about. ACF files are a nested
// key/value tree, but only these two top-level scalars matter here; a
// first-match scan keeps the parser tolerant of unknown fields and of any
// structure around them. That tolerance is deliberate, not a shortcut.
var (
	appIDPattern = regexp.MustCompile(`"appid"\s+"(\d+)"`)
	namePattern  = regexp.MustCompile(`"name"\s+"([^"]+)"`)
)

// AppManifest holds the fields extracted from one appmanifest_*.acf file.
type AppManifest struct {
	AppID string
	Name  string
}

// IsManifestFilename reports whether name follows the app manifest
// naming convention.
func IsManifestFilename(name string) bool {
	return strings.HasPrefix(name, manifestPrefix) && strings.HasSuffix(name, manifestExt)
}

// ParseAppManifest reads a manifest file and extracts its app ID and name.
// A manifest without an appid field yields ErrMissingAppID; a manifest
// without a name field gets PlaceholderName.
func ParseAppManifest(path string) (AppManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppManifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	return parseManifest(string(data))
}

func parseManifest(content string) (AppManifest, error) {
	idMatch := appIDPattern.FindStringSubmatch(content)
	if idMatch == nil {
		return AppManifest{}, ErrMissingAppID
	}

	name := PlaceholderName
	if m := namePattern.FindStringSubmatch(content); m != nil {
		name = m[1]
	}

	return AppManifest{AppID: idMatch[1], Name: name}, nil
}
