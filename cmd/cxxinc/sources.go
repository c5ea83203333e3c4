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
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// collectSourceFiles evaluates the config's source and exclude globs under
// root and returns the matched files as absolute paths.
func collectSourceFiles(cfg *Config, root string) (*paths.FilePathSet, error) {
	fsys := os.DirFS(root)
	sources := paths.NewFilePathSet()

	for _, pattern := range cfg.Sources {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
	match:
		for _, rel := range matches {
			for _, exclude := range cfg.Exclude {
				if doublestar.MatchUnvalidated(exclude, rel) {
					continue match
				}
			}
			sources.Insert(paths.New(filepath.Join(root, filepath.FromSlash(rel))))
		}
	}

	return sources, nil
}

// resolvePathSet turns config-relative path strings into an absolute
// FilePathSet rooted at root.
func resolvePathSet(entries []string, root string) *paths.FilePathSet {
	set := paths.NewFilePathSet()
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if filepath.IsAbs(entry) {
			set.Insert(paths.New(entry))
			continue
		}
		set.Insert(paths.New(filepath.Join(root, filepath.FromSlash(entry))))
	}
	return set
}
