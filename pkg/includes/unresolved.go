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
	"sort"
	"sync"
	"time"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// UnresolvedIncludeDirectives collects every include directive in the
// project's include graph that cannot be resolved anywhere.
//
// The walk uses only the already-known header search directories (no
// snapshot inference) and bounds expansion to indexedPaths: a directive that
// resolves to a file outside every indexed path is resolved-and-terminal,
// its own includes are never expanded. Third-party and system headers are
// leaves.
//
// The result is deduplicated by included-file path and sorted ascending by
// that path. When the same spelling is unresolvable from several including
// files, a single entry survives and the other origins are dropped.
//
// progress receives one value per quantile boundary and a final 1.0. A nil
// progress is allowed.
func (w *Walker) UnresolvedIncludeDirectives(
	sourceFilePaths *paths.FilePathSet,
	indexedPaths *paths.FilePathSet,
	headerSearchDirectories *paths.FilePathSet,
	desiredQuantileCount int,
	progress ProgressFunc,
) []IncludeDirective {
	start := time.Now()

	var (
		mu         sync.Mutex
		unresolved = make(map[string]IncludeDirective)
	)
	processed := newMemo()
	quantiles := splitToQuantiles(sourceFilePaths, desiredQuantileCount)

	w.walkQuantiles(len(quantiles), progress, func(i int) {
		directives := w.unresolvedQuantile(quantiles[i], processed, indexedPaths, headerSearchDirectories)
		mu.Lock()
		for _, d := range directives {
			key := d.IncludedFile.String()
			if _, ok := unresolved[key]; !ok {
				unresolved[key] = d
			}
		}
		mu.Unlock()
	})

	result := make([]IncludeDirective, 0, len(unresolved))
	for _, d := range unresolved {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Less(result[j]) })

	w.logger.Debug("unresolved.done",
		"sources", sourceFilePaths.Len(),
		"unresolved", len(result),
		"duration", time.Since(start))
	observeUnresolvedDuration(time.Since(start))

	return result
}

// unresolvedQuantile runs the breadth-first walk for one quantile's source
// files, returning its unresolved directives in discovery order.
func (w *Walker) unresolvedQuantile(
	seeds []paths.FilePath,
	processed *memo,
	indexedPaths *paths.FilePathSet,
	headerSearchDirectories *paths.FilePathSet,
) []IncludeDirective {
	var unresolved []IncludeDirective
	frontier := paths.NewFilePathSet(seeds...)

	for frontier.Len() > 0 {
		for _, fp := range frontier.Paths() {
			processed.add(fp.Absolute().Canonical().String())
		}

		next := paths.NewFilePathSet()
		for _, fp := range frontier.Paths() {
			for _, directive := range ExtractDirectives(fp) {
				resolved := ResolveDirective(directive, headerSearchDirectories).Canonical()
				if resolved.Empty() {
					recordDirectiveUnresolved()
					unresolved = append(unresolved, directive)
					continue
				}
				recordDirectiveResolved()
				if processed.has(resolved.String()) {
					continue
				}
				for _, indexedPath := range indexedPaths.Paths() {
					if indexedPath.Contains(resolved) {
						next.Insert(resolved)
						break
					}
				}
			}
		}
		frontier = next
	}

	return unresolved
}
