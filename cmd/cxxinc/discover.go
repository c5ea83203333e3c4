// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/cxxinc/internal/errors"
	"github.com/kraklabs/cxxinc/internal/output"
	"github.com/kraklabs/cxxinc/internal/ui"
	"github.com/kraklabs/cxxinc/pkg/includes"
)

// runDiscover executes the 'discover' CLI command.
//
// It walks the include graph of the configured source files and infers
// header search directories by matching unresolvable includes against the
// configured snapshot paths. The result is the -I list a compiler
// invocation for this project would need.
//
// Flags:
//   - --json: Output as JSON
//   - --cflags: Print directories as -I flags, one per line
//   - --quantiles: Partition count for progress granularity
//   - --workers: Goroutine pool size for the walk (default: from config)
//   - --debug: Enable debug logging
//   - -q, --quiet: Suppress progress and informational output
//   - --no-color: Disable colored output
func runDiscover(args []string, configPath string) {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	cflags := fs.Bool("cflags", false, "Print directories as -I flags")
	quantiles := fs.Int("quantiles", 0, "Partition count for progress granularity (default: from config)")
	workers := fs.Int("workers", 0, "Worker pool size (default: from config)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	quiet := fs.BoolP("quiet", "q", false, "Suppress progress output")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cxxinc discover [options]

Infers header search directories for the project configured in
.cxxinc/project.yaml. Directives that resolve against the known search
paths contribute nothing; for the rest, the configured snapshot paths
are searched for a directory under which the written include path
exists.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	globals := GlobalFlags{JSON: *jsonOut, Quiet: *quiet || *jsonOut, NoColor: *noColor}
	ui.InitColors(globals.NoColor)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	logger := newLogger(*debug)

	cwd, err := os.Getwd()
	if err != nil {
		errors.FatalError(errors.NewInternalError("Cannot determine working directory", err.Error(), "", err), globals.JSON)
	}

	sources, err := collectSourceFiles(cfg, cwd)
	if err != nil {
		errors.FatalError(errors.NewConfigError("Cannot collect source files", err.Error(), "Check the 'sources' globs in .cxxinc/project.yaml", err), globals.JSON)
	}
	if sources.Len() == 0 {
		errors.FatalError(errors.NewNotFoundError(
			"No source files matched",
			"The globs in .cxxinc/project.yaml matched nothing under the current directory",
			"Check the 'sources' patterns or run from the project root",
		), globals.JSON)
	}

	quantileCount := cfg.Quantiles
	if *quantiles > 0 {
		quantileCount = *quantiles
	}
	workerCount := cfg.Workers
	if *workers > 0 {
		workerCount = *workers
	}

	walker := includes.NewWalker(logger, workerCount)
	bar := NewProgressBar(NewProgressConfig(globals), 100, "discovering search directories")

	logger.Info("discover.start", "sources", sources.Len(), "snapshots", len(cfg.SnapshotPaths))

	searchDirs := walker.DiscoverHeaderSearchDirectories(
		sources,
		resolvePathSet(cfg.SnapshotPaths, cwd),
		resolvePathSet(cfg.HeaderSearchPaths, cwd),
		quantileCount,
		walkProgress(bar),
	)

	if globals.JSON {
		report := struct {
			SearchDirectories []string `json:"search_directories"`
		}{SearchDirectories: searchDirs.Strings()}
		if err := output.JSON(report); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	for _, dir := range searchDirs.Strings() {
		if *cflags {
			fmt.Printf("-I%s\n", dir)
		} else {
			fmt.Println(dir)
		}
	}
	if !globals.Quiet {
		ui.Successf("Discovered %d header search directories from %d source files",
			searchDirs.Len(), sources.Len())
	}
}

// newLogger builds the slog logger shared by the walk commands. Output goes
// to stderr so that stdout stays machine-consumable.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
