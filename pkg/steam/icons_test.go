package steam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cachedIconName builds a filename with the expected 40-char-hash shape.
func cachedIconName() string {
	return strings.Repeat("a", 40) + ".jpg"
}

func TestFindCachedIcon(t *testing.T) {
	cacheDir := t.TempDir()
	appDir := filepath.Join(cacheDir, "620")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}

	iconName := cachedIconName()
	for _, name := range []string{iconName, "notes.txt", "header.png"} {
		if err := os.WriteFile(filepath.Join(appDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	want := filepath.Join(appDir, iconName)
	if got := FindCachedIcon(cacheDir, "620"); got != want {
		t.Errorf("FindCachedIcon() = %q, want %q", got, want)
	}
}

func TestFindCachedIcon_Fallback(t *testing.T) {
	cacheDir := t.TempDir()

	tests := []struct {
		name  string
		setup func(t *testing.T)
		appID string
	}{
		{
			name:  "missing app directory",
			setup: func(t *testing.T) {},
			appID: "999",
		},
		{
			name: "empty app directory",
			setup: func(t *testing.T) {
				if err := os.MkdirAll(filepath.Join(cacheDir, "100"), 0755); err != nil {
					t.Fatal(err)
				}
			},
			appID: "100",
		},
		{
			name: "no file matching the shape",
			setup: func(t *testing.T) {
				dir := filepath.Join(cacheDir, "200")
				if err := os.MkdirAll(dir, 0755); err != nil {
					t.Fatal(err)
				}
				// Right extension, wrong length.
				if err := os.WriteFile(filepath.Join(dir, "short.jpg"), []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
				// Right length, wrong extension.
				name := strings.Repeat("b", 40) + ".png"
				if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			appID: "200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			if got := FindCachedIcon(cacheDir, tt.appID); got != FallbackIcon {
				t.Errorf("FindCachedIcon() = %q, want fallback %q", got, FallbackIcon)
			}
		})
	}
}
