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
)

// bashCompletionScript provides command and flag completion for bash shells.
const bashCompletionScript = `#!/bin/bash

# Bash completion script for cxxinc
# Installation:
#   source <(cxxinc completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(cxxinc completion bash)' >> ~/.bashrc

_cxxinc_completion() {
    local cur prev commands
    commands="init discover scan completion"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Global flags
    if [[ ${cur} == -* && $COMP_CWORD -eq 1 ]] ; then
        COMPREPLY=( $(compgen -W "--version --config" -- ${cur}) )
        return 0
    fi

    # First argument: complete commands
    if [ $COMP_CWORD -eq 1 ]; then
        COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        return 0
    fi

    # Command-specific flag completion
    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--force --project" -- ${cur}) )
            fi
            ;;
        discover)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --cflags --quantiles --workers --debug --quiet --no-color" -- ${cur}) )
            fi
            ;;
        scan)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --no-discover --quantiles --workers --metrics-addr --debug --quiet --no-color" -- ${cur}) )
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- ${cur}) )
            ;;
    esac
}

complete -F _cxxinc_completion cxxinc
`

// zshCompletionScript provides command completion for zsh shells.
const zshCompletionScript = `#compdef cxxinc

# Zsh completion script for cxxinc
# Installation:
#   source <(cxxinc completion zsh)

_cxxinc() {
    local -a commands
    commands=(
        'init:Create .cxxinc/project.yaml configuration'
        'discover:Infer header search directories'
        'scan:Report unresolved include directives'
        'completion:Generate shell completion script'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case ${words[2]} in
        init)
            _arguments '--force[Overwrite existing configuration]' '--project[Project name]'
            ;;
        discover)
            _arguments '--json[Output as JSON]' '--cflags[Print as -I flags]' \
                '--quantiles[Partition count]' '--workers[Worker pool size]' \
                '--debug[Enable debug logging]' '--quiet[Suppress progress]' '--no-color[Disable colors]'
            ;;
        scan)
            _arguments '--json[Output as JSON]' '--no-discover[Skip discovery]' \
                '--quantiles[Partition count]' '--workers[Worker pool size]' \
                '--metrics-addr[Prometheus listen address]' \
                '--debug[Enable debug logging]' '--quiet[Suppress progress]' '--no-color[Disable colors]'
            ;;
        completion)
            _values 'shell' bash zsh
            ;;
    esac
}

_cxxinc "$@"
`

// runCompletion executes the 'completion' CLI command.
//
// It writes a shell completion script for the requested shell to stdout.
func runCompletion(args []string) {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: cxxinc completion <bash|zsh>

Generates a shell completion script.

Examples:
  source <(cxxinc completion bash)
  source <(cxxinc completion zsh)
`)
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	switch fs.Arg(0) {
	case "bash":
		fmt.Print(bashCompletionScript)
	case "zsh":
		fmt.Print(zshCompletionScript)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported shell: %s (expected bash or zsh)\n", fs.Arg(0))
		os.Exit(1)
	}
}
