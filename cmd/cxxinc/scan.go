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
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/cxxinc/internal/errors"
	"github.com/kraklabs/cxxinc/internal/output"
	"github.com/kraklabs/cxxinc/internal/ui"
	"github.com/kraklabs/cxxinc/pkg/includes"
)

// unresolvedJSON is one unresolved include directive in --json output. Each
// entry carries enough to render a precise "cannot resolve include at
// file:line" message.
type unresolvedJSON struct {
	IncludedFile  string `json:"included_file"`
	IncludingFile string `json:"including_file"`
	Line          int    `json:"line"`
	Brackets      bool   `json:"brackets"`
}

// scanReport is the --json output of the scan command.
type scanReport struct {
	Sources           int              `json:"sources"`
	SearchDirectories []string         `json:"search_directories"`
	Unresolved        []unresolvedJSON `json:"unresolved"`
}

// runScan executes the 'scan' CLI command.
//
// It first discovers header search directories (unless --no-discover), then
// walks the include graph collecting every directive that resolves nowhere.
// Unresolved includes are diagnostics, not failures: the command exits 0
// either way and leaves the empty-vs-nonempty decision to the caller.
//
// Flags:
//   - --json: Output as JSON
//   - --no-discover: Skip snapshot inference, use only configured search paths
//   - --quantiles: Partition count for progress granularity
//   - --workers: Goroutine pool size for the walks
//   - --metrics-addr: HTTP address for Prometheus metrics (default: disabled)
//   - --debug: Enable debug logging
//   - -q, --quiet: Suppress progress and informational output
//   - --no-color: Disable colored output
func runScan(args []string, configPath string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "Output as JSON")
	noDiscover := fs.Bool("no-discover", false, "Skip search directory discovery")
	quantiles := fs.Int("quantiles", 0, "Partition count for progress granularity (default: from config)")
	workers := fs.Int("workers", 0, "Worker pool size (default: from config)")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")
	debug := fs.Bool("debug", false, "Enable debug logging")
	quiet := fs.BoolP("quiet", "q", false, "Suppress progress output")
	noColor := fs.Bool("no-color", false, "Disable colored output")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cxxinc scan [options]

Walks the include graph of the project configured in .cxxinc/project.yaml
and reports every #include directive that cannot be resolved. Headers
resolving outside the indexed paths are treated as leaves; their own
includes are not expanded.

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

	// Start Prometheus metrics endpoint (optional)
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: *metricsAddr, Handler: mux}
			logger.Info("metrics.http.start", "addr", *metricsAddr, "path", "/metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics.http.error", "err", err)
			}
		}()
	}

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
	progressCfg := NewProgressConfig(globals)

	searchDirs := resolvePathSet(cfg.HeaderSearchPaths, cwd)
	if !*noDiscover {
		bar := NewProgressBar(progressCfg, 100, "discovering search directories")
		discovered := walker.DiscoverHeaderSearchDirectories(
			sources,
			resolvePathSet(cfg.SnapshotPaths, cwd),
			searchDirs,
			quantileCount,
			walkProgress(bar),
		)
		searchDirs.InsertAll(discovered)
		logger.Info("scan.discovered", "search_dirs", searchDirs.Len())
	}

	bar := NewProgressBar(progressCfg, 100, "scanning includes")
	unresolved := walker.UnresolvedIncludeDirectives(
		sources,
		resolvePathSet(cfg.IndexedPaths, cwd),
		searchDirs,
		quantileCount,
		walkProgress(bar),
	)

	if globals.JSON {
		report := scanReport{
			Sources:           sources.Len(),
			SearchDirectories: searchDirs.Strings(),
			Unresolved:        make([]unresolvedJSON, 0, len(unresolved)),
		}
		for _, d := range unresolved {
			report.Unresolved = append(report.Unresolved, unresolvedJSON{
				IncludedFile:  d.IncludedFile.String(),
				IncludingFile: d.IncludingFile.String(),
				Line:          d.LineNumber,
				Brackets:      d.UsesBrackets,
			})
		}
		if err := output.JSON(report); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	for _, d := range unresolved {
		fmt.Printf("%s: cannot resolve %s\n",
			ui.Location(d.IncludingFile.String(), d.LineNumber), d.String())
	}
	if globals.Quiet {
		return
	}
	if len(unresolved) == 0 {
		ui.Successf("Scanned %d source files, all includes resolved", sources.Len())
	} else {
		ui.Warningf("%d includes could not be resolved", len(unresolved))
	}
}
