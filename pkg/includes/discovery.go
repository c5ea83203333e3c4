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

package includes

import (
	"sync"
	"time"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// DiscoverHeaderSearchDirectories infers header search directories for a set
// of source files.
//
// Starting from the source files, the include graph is expanded breadth
// first. Directives that resolve against currentHeaderSearchDirectories (or
// relative to their including file) contribute nothing; for a directive that
// resolves nowhere, each searched path's pre-scanned FileTree is asked
// whether the written include path exists as a relative suffix under it. The
// first snapshot root whose concatenation with the include path exists on
// disk is recorded as a discovered search directory and the concatenation is
// treated as the resolved file. A file reachable under two snapshot roots
// keeps the first match; the ambiguity is accepted, not resolved.
//
// Resolved files not yet processed join the next frontier, so headers pulled
// in via discovered roots are themselves scanned. The processed-file memo is
// shared across quantiles and guarantees termination on cyclic includes.
//
// progress receives 0.0 up front, one value per quantile boundary, and a
// final 1.0. A nil progress is allowed.
func (w *Walker) DiscoverHeaderSearchDirectories(
	sourceFilePaths *paths.FilePathSet,
	searchedPaths *paths.FilePathSet,
	currentHeaderSearchDirectories *paths.FilePathSet,
	desiredQuantileCount int,
	progress ProgressFunc,
) *paths.FilePathSet {
	start := time.Now()
	if progress != nil {
		progress(0.0)
	}

	trees := make([]FileTree, 0, searchedPaths.Len())
	for _, searchedPath := range searchedPaths.Paths() {
		trees = append(trees, NewFileTree(searchedPath))
	}

	var (
		mu                      sync.Mutex
		headerSearchDirectories = paths.NewFilePathSet()
	)
	processed := newMemo()
	quantiles := splitToQuantiles(sourceFilePaths, desiredQuantileCount)

	w.walkQuantiles(len(quantiles), progress, func(i int) {
		discovered := w.discoverQuantile(quantiles[i], trees, currentHeaderSearchDirectories, processed)
		mu.Lock()
		headerSearchDirectories.InsertAll(discovered)
		mu.Unlock()
	})

	w.logger.Debug("discover.done",
		"sources", sourceFilePaths.Len(),
		"snapshots", searchedPaths.Len(),
		"found", headerSearchDirectories.Len(),
		"duration", time.Since(start))
	observeDiscoverDuration(time.Since(start))

	return headerSearchDirectories
}

// discoverQuantile runs the breadth-first expansion for one quantile's
// source files, returning the search directories it discovered.
func (w *Walker) discoverQuantile(
	seeds []paths.FilePath,
	trees []FileTree,
	currentHeaderSearchDirectories *paths.FilePathSet,
	processed *memo,
) *paths.FilePathSet {
	discovered := paths.NewFilePathSet()
	frontier := paths.NewFilePathSet(seeds...)

	for frontier.Len() > 0 {
		for _, fp := range frontier.Paths() {
			processed.add(fp.Absolute().String())
		}

		next := paths.NewFilePathSet()
		for _, fp := range frontier.Paths() {
			for _, directive := range ExtractDirectives(fp) {
				found := ResolveDirective(directive, currentHeaderSearchDirectories)
				if found.Empty() {
					for _, tree := range trees {
						rootPath := tree.AbsoluteRootPathForRelativeFilePath(directive.IncludedFile)
						if rootPath.Empty() {
							continue
						}
						candidate := rootPath.Concatenate(directive.IncludedFile)
						if candidate.Exists() {
							w.logger.Debug("discover.root.found",
								"root", rootPath.String(),
								"include", directive.IncludedFile.String())
							recordSearchDirectoryDiscovered()
							discovered.Insert(rootPath)
							found = candidate
							break
						}
					}
				}
				if !found.Empty() && found.Exists() && !processed.has(found.Absolute().String()) {
					next.Insert(found)
				}
			}
		}
		frontier = next
	}

	return discovered
}
