// Package desktop renders freedesktop launcher entries for Steam games and
// reconciles the output directory that holds them.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generated files are named steam-<appid>.desktop. Anything in the output
// directory matching this convention is owned by this tool and safe to delete.
const (
	filePrefix = "steam-"
	fileExt    = ".desktop"
)

// Entry describes one launcher to generate.
type Entry struct {
	Name  string
	AppID string
	Icon  string
}

// Filename returns the generated filename for an app ID.
func Filename(appID string) string {
	return filePrefix + appID + fileExt
}

// IsGenerated reports whether a filename follows this tool's naming
// convention for generated entries.
func IsGenerated(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt)
}

// CleanGenerated creates dir if needed and removes every previously
// generated entry in it, returning the number removed. Files that do not
// match the naming convention are left untouched.
func CleanGenerated(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if !IsGenerated(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove stale entry: %w", err)
		}
		removed++
	}

	return removed, nil
}

// WriteEntry writes the launcher file for e into dir, overwriting any
// same-named file.
func WriteEntry(dir string, e Entry) error {
	path := filepath.Join(dir, Filename(e.AppID))
	if err := os.WriteFile(path, []byte(Render(e)), 0644); err != nil {
		return fmt.Errorf("failed to write desktop entry: %w", err)
	}
	return nil
}

// Render produces the launcher file content for e.
func Render(e Entry) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Exec=steam steam://rungameid/%s\n", e.AppID)
	fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	b.WriteString("Terminal=false\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Categories=Game;\n")
	return b.String()
}
