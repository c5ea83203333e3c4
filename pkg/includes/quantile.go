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

import "github.com/kraklabs/cxxinc/pkg/paths"

// splitToQuantiles partitions the source file set into round-robin shards.
//
// The actual quantile count is desired clamped to [1, len(set)]. Files are
// taken in the set's sorted order and dealt out by index modulo count.
// Round-robin rather than contiguous blocks decorrelates shard size from the
// alphabetical clustering of large subtrees, so per-quantile workload and
// progress granularity stay even.
func splitToQuantiles(sourceFilePaths *paths.FilePathSet, desiredQuantileCount int) [][]paths.FilePath {
	count := desiredQuantileCount
	if count > sourceFilePaths.Len() {
		count = sourceFilePaths.Len()
	}
	if count < 1 {
		count = 1
	}

	quantiles := make([][]paths.FilePath, count)
	for i, fp := range sourceFilePaths.Paths() {
		quantiles[i%count] = append(quantiles[i%count], fp)
	}
	return quantiles
}
