// Package steam locates a local Steam installation and reads the metadata
// it leaves on disk: registered library folders, per-app install manifests
// and the library icon cache.
package steam

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Common errors for Steam operations.
var (
	ErrSteamNotFound          = errors.New("steam installation not found")
	ErrLibraryFoldersNotFound = errors.New("libraryfolders.vdf not found")
	ErrMissingAppID           = errors.New("appid field not found in manifest")
)

// Paths provides access to well-known locations inside a Steam installation.
type Paths struct {
	baseDir string
}

// NewPaths creates a Paths instance with an auto-detected Steam directory.
func NewPaths() (*Paths, error) {
	baseDir, err := detectBaseDir()
	if err != nil {
		return nil, err
	}
	return &Paths{baseDir: baseDir}, nil
}

// NewPathsWithBase creates a Paths instance with a custom base directory.
func NewPathsWithBase(baseDir string) *Paths {
	return &Paths{baseDir: baseDir}
}

// BaseDir returns the Steam base directory.
func (p *Paths) BaseDir() string {
	return p.baseDir
}

// LibraryFoldersPath returns the path to the library registration file.
func (p *Paths) LibraryFoldersPath() string {
	return filepath.Join(p.baseDir, "steamapps", "libraryfolders.vdf")
}

// IconCacheDir returns the directory holding cached library icons,
// one subdirectory per app ID.
func (p *Paths) IconCacheDir() string {
	return filepath.Join(p.baseDir, "appcache", "librarycache")
}

// SteamAppsDir returns the application-storage subdirectory of a library root.
func SteamAppsDir(libraryRoot string) string {
	return filepath.Join(libraryRoot, "steamapps")
}

// DefaultBaseDir returns the conventional Steam location under the user's home.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "Steam")
}

// DetectBaseDir returns the first existing known Steam location. When none
// exists it falls back to the conventional default so that callers report a
// missing library registration file rather than a detection failure.
func DetectBaseDir() string {
	if dir, err := detectBaseDir(); err == nil {
		return dir
	}
	return DefaultBaseDir()
}

// detectBaseDir probes the known Steam locations in order of preference.
func detectBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".steam", "steam"),
	}

	for _, dir := range candidates {
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		}
	}

	return "", ErrSteamNotFound
}
