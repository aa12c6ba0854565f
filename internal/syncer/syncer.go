// Package syncer runs one full discovery-and-reconcile pass over a Steam
// installation: locate libraries, parse manifests, classify entries and
// regenerate the launcher files for every accepted game.
package syncer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"desksync/internal/classify"
	"desksync/internal/desktop"
	"desksync/internal/ui"
	"desksync/pkg/steam"
)

// Options configures a sync pass.
type Options struct {
	// SteamPath is the Steam installation directory.
	SteamPath string
	// AppDir is the directory receiving generated launcher files.
	AppDir string
	// DryRun discovers and reports without touching the filesystem.
	DryRun bool
	// Rules decides which discovered apps are suppressed.
	Rules classify.Rules
}

// Stats accumulates the counters of one pass.
type Stats struct {
	// Created counts accepted games. In dry-run mode it counts launchers
	// that would have been created, so both modes report identically.
	Created int
	// Skipped counts apps suppressed by the classification rules.
	Skipped int
	// ParseFailures counts manifests missing the appid field. They never
	// abort the scan.
	ParseFailures int
	// Elapsed is the wall-clock duration of the pass.
	Elapsed time.Duration
}

// Syncer performs the single-pass reconciliation.
type Syncer struct {
	opts Options
	out  io.Writer
	log  *slog.Logger
}

// New creates a Syncer writing progress to out. A nil out or logger falls
// back to stdout and the default slog logger.
func New(opts Options, out io.Writer, log *slog.Logger) *Syncer {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Syncer{opts: opts, out: out, log: log}
}

// Run executes one full pass and returns its counters. Any error aborts the
// whole pass: a missing libraryfolders.vdf, a failure scanning a library's
// manifests, or a failure writing a launcher file. Individual unparseable
// manifests are counted and skipped instead.
func (s *Syncer) Run() (Stats, error) {
	start := time.Now()
	var stats Stats

	paths := steam.NewPathsWithBase(s.opts.SteamPath)

	fmt.Fprintf(s.out, "%s %s\n", ui.LabelStyle.Render("Steam root:"), paths.BaseDir())
	fmt.Fprintf(s.out, "%s %s\n", ui.LabelStyle.Render("Desktop entries:"), s.opts.AppDir)
	fmt.Fprintf(s.out, "%s %s\n", ui.LabelStyle.Render("Icon cache:"), paths.IconCacheDir())

	if s.opts.DryRun {
		fmt.Fprintln(s.out, ui.WarningStyle.Render("Dry run enabled - no files will be written."))
	} else {
		fmt.Fprintln(s.out, "Cleaning up old Steam desktop entries...")
		removed, err := desktop.CleanGenerated(s.opts.AppDir)
		if err != nil {
			return stats, err
		}
		s.log.Debug("removed stale desktop entries", "count", removed)
	}

	libraries, err := steam.ParseLibraryFolders(paths.LibraryFoldersPath())
	if err != nil {
		return stats, err
	}

	for _, library := range libraries {
		if err := s.scanLibrary(library, paths, &stats); err != nil {
			return stats, err
		}
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// scanLibrary processes every app manifest in one library root. Libraries
// whose steamapps directory does not exist are registered but not mounted;
// they are skipped silently.
func (s *Syncer) scanLibrary(library string, paths *steam.Paths, stats *Stats) error {
	appsDir := steam.SteamAppsDir(library)
	if _, err := os.Stat(appsDir); err != nil {
		s.log.Debug("skipping unmounted library", "path", library)
		return nil
	}

	fmt.Fprintf(s.out, "Checking library: %s\n", library)

	entries, err := os.ReadDir(appsDir)
	if err != nil {
		return fmt.Errorf("failed to scan library %s: %w", library, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !steam.IsManifestFilename(name) {
			continue
		}

		manifest, err := steam.ParseAppManifest(filepath.Join(appsDir, name))
		if err != nil {
			stats.ParseFailures++
			s.log.Debug("skipping unparseable manifest", "file", name, "error", err)
			continue
		}

		if s.opts.Rules.ShouldSkip(manifest.Name, manifest.AppID) {
			fmt.Fprintf(s.out, "  %s %s\n", ui.MutedStyle.Render("Skipping tool/runtime:"), manifest.Name)
			stats.Skipped++
			continue
		}

		icon := steam.FindCachedIcon(paths.IconCacheDir(), manifest.AppID)

		if s.opts.DryRun {
			fmt.Fprintf(s.out, "  Found game: %s (AppID %s)\n", manifest.Name, manifest.AppID)
		} else {
			e := desktop.Entry{Name: manifest.Name, AppID: manifest.AppID, Icon: icon}
			if err := desktop.WriteEntry(s.opts.AppDir, e); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "  %s %s\n", ui.SuccessStyle.Render("Created launcher for"), manifest.Name)
		}
		stats.Created++
	}

	return nil
}
