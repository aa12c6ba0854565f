package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"desksync/internal/classify"
	"desksync/internal/config"
	"desksync/internal/syncer"
	"desksync/internal/ui"
	"desksync/pkg/steam"
	"desksync/pkg/version"
)

func main() {
	app := &cli.App{
		Name:    "desksync",
		Usage:   "generate desktop launchers for installed Steam games",
		Version: version.Full(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "discover and report without writing or deleting files",
			},
			&cli.StringFlag{
				Name:    "steam-path",
				Aliases: []string{"s"},
				Usage:   "path to the Steam installation (default: auto-detect)",
			},
			&cli.StringFlag{
				Name:    "app-dir",
				Aliases: []string{"a"},
				Usage:   "directory receiving generated .desktop files (default: ~/.local/share/applications)",
			},
			&cli.StringFlag{
				Name:    "skip-keywords",
				Aliases: []string{"k"},
				Usage:   "comma-separated name keywords to skip (replaces the defaults)",
			},
			&cli.StringFlag{
				Name:    "ignored-app-ids",
				Aliases: []string{"i"},
				Usage:   "comma-separated app IDs to skip (replaces the defaults)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file (default: ~/.config/desksync/config.yaml)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	configPath := c.String("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(c, cfg)
	if err != nil {
		return err
	}

	stats, err := syncer.New(opts, os.Stdout, logger).Run()
	if err != nil {
		return err
	}

	report(opts, stats)
	return nil
}

// buildOptions resolves the effective options: built-in defaults, overridden
// by the config file, overridden by CLI flags. Exclusion lists replace the
// defaults entirely rather than extending them.
func buildOptions(c *cli.Context, cfg *config.File) (syncer.Options, error) {
	rules := classify.DefaultRules()
	if len(cfg.SkipKeywords) > 0 {
		rules.SkipKeywords = cfg.SkipKeywords
	}
	if len(cfg.IgnoredAppIDs) > 0 {
		rules.IgnoredAppIDs = cfg.IgnoredAppIDs
	}
	if c.IsSet("skip-keywords") {
		rules.SkipKeywords = classify.ParseList(c.String("skip-keywords"))
	}
	if c.IsSet("ignored-app-ids") {
		rules.IgnoredAppIDs = classify.ParseList(c.String("ignored-app-ids"))
	}

	steamPath := c.String("steam-path")
	if steamPath == "" {
		steamPath = cfg.SteamPath
	}
	if steamPath == "" {
		steamPath = steam.DetectBaseDir()
	}

	appDir := c.String("app-dir")
	if appDir == "" {
		appDir = cfg.ApplicationsDir
	}
	if appDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return syncer.Options{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		appDir = filepath.Join(home, ".local", "share", "applications")
	}

	return syncer.Options{
		SteamPath: steamPath,
		AppDir:    appDir,
		DryRun:    c.Bool("dry-run"),
		Rules:     rules,
	}, nil
}

func report(opts syncer.Options, stats syncer.Stats) {
	if stats.ParseFailures > 0 {
		fmt.Println(ui.WarningStyle.Render(
			fmt.Sprintf("Skipped %d manifest(s) that could not be parsed.", stats.ParseFailures)))
	}

	elapsed := stats.Elapsed.Round(time.Millisecond)
	if opts.DryRun {
		fmt.Println(ui.HeaderStyle.Render(
			fmt.Sprintf("Dry run complete. Found %d games, skipped %d tools. Took %v.",
				stats.Created, stats.Skipped, elapsed)))
	} else {
		fmt.Println(ui.HeaderStyle.Render(
			fmt.Sprintf("Done! %d launchers created (skipped %d tools) in %s. Took %v.",
				stats.Created, stats.Skipped, opts.AppDir, elapsed)))
	}
}
