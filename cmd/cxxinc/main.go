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

// Command cxxinc resolves C/C++ include directives and discovers header
// search directories for source indexing.
//
// Usage:
//
//	cxxinc init                   Create .cxxinc/project.yaml configuration
//	cxxinc discover [--json]      Infer header search directories
//	cxxinc scan [--json]          Report unresolved include directives
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags carries the output-shaping flags shared by all commands.
type GlobalFlags struct {
	// JSON selects machine-readable output; implies Quiet.
	JSON bool

	// Quiet suppresses progress bars and informational output.
	Quiet bool

	// NoColor disables colored terminal output.
	NoColor bool

	// Verbose raises logging verbosity (0 = info, 1+ = debug).
	Verbose int
}

// main is the entry point for the cxxinc CLI.
//
// It parses global flags and dispatches to command handlers.
//
// Global flags:
//   - --version: Display version information and exit
//   - --config: Path to .cxxinc/project.yaml configuration file
//
// Commands:
//   - init: Create .cxxinc/project.yaml configuration
//   - discover: Infer header search directories from directory snapshots
//   - scan: Report include directives that resolve nowhere
//   - completion: Generate shell completion script
func main() {
	// Global flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "", "Path to .cxxinc/project.yaml (default: ./.cxxinc/project.yaml)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `cxxinc - C/C++ Include Resolution Engine

cxxinc scans a codebase's include graph without running a preprocessor.
It infers the header search directories a compiler invocation needs
(-I equivalents) and reports every #include that cannot be resolved,
so the search configuration can be corrected before indexing.

Usage:
  cxxinc <command> [options]

Commands:
  init          Create .cxxinc/project.yaml configuration
  discover      Infer header search directories from directory snapshots
  scan          Report unresolved include directives
  completion    Generate shell completion script (bash|zsh)

Global Options:
  --config      Path to .cxxinc/project.yaml
  --version     Show version and exit

Examples:
  cxxinc init                        Create configuration
  cxxinc discover                    Print inferred -I directories
  cxxinc discover --cflags           Print them as -I flags
  cxxinc scan                        List unresolved includes
  cxxinc scan --json                 Output as JSON (for editors/CI)

Getting Started:
  1. Initialize configuration:  cxxinc init
  2. Discover search roots:     cxxinc discover
  3. Check for broken includes: cxxinc scan

For detailed command help: cxxinc <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("cxxinc version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs)
	case "discover":
		runDiscover(cmdArgs, *configPath)
	case "scan":
		runScan(cmdArgs, *configPath)
	case "completion":
		runCompletion(cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
