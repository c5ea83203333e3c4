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
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kraklabs/cxxinc/internal/ui"
)

// runInit executes the 'init' CLI command, creating .cxxinc/project.yaml.
//
// Flags:
//   - --force: Overwrite existing configuration (default: false)
//   - --project: Project name (default: directory name)
//
// Examples:
//
//	cxxinc init
//	cxxinc init --project mylib --force
func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite existing configuration")
	project := fs.String("project", "", "Project name (default: directory name)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cxxinc init [options]

Creates .cxxinc/project.yaml with default source globs for C/C++ files.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot get current directory: %v\n", err)
		os.Exit(1)
	}

	configPath := ConfigPath(cwd)
	if _, err := os.Stat(configPath); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists. Use --force to overwrite.\n", configPath)
		os.Exit(1)
	}

	name := *project
	if name == "" {
		name = filepath.Base(cwd)
	}

	cfg := DefaultConfig(name)
	if err := cfg.Save(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write configuration: %v\n", err)
		os.Exit(1)
	}

	ui.Successf("Created %s", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Review and edit .cxxinc/project.yaml if needed")
	fmt.Println("  2. Add snapshot_paths for external header locations")
	fmt.Println("  3. Run: cxxinc scan")
}
