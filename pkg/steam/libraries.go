package steam

import (
	"fmt"
	"os"
	"regexp"
)

// libraryPathPattern matches the `"path" "<value>"` fields of
// libraryfolders.vdf. The file is a nested key/value tree, but every path
// field in it registers a library root regardless of nesting depth, so a
// flat scan over the raw text is sufficient.
var libraryPathPattern = regexp.MustCompile(`"path"\s+"([^"]+)"`)

// ParseLibraryFolders extracts every registered library root from a
// libraryfolders.vdf file. The returned paths are not validated; callers
// decide what to do with roots that are not mounted.
func ParseLibraryFolders(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrLibraryFoldersNotFound, path)
		}
		return nil, fmt.Errorf("failed to read library folders: %w", err)
	}

	var roots []string
	for _, m := range libraryPathPattern.FindAllStringSubmatch(string(data), -1) {
		roots = append(roots, m[1])
	}

	return roots, nil
}
