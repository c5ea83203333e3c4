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

// Package includes implements include resolution and header search directory
// discovery for C/C++ codebases.
//
// The package operates purely lexically: it scans source text for lines that
// look like #include directives without running a preprocessor. Conditional
// compilation (#ifdef), macro expansion inside include arguments, and syntax
// validation are deliberately out of scope. A commented-out include is still
// reported; a macro-valued include is never seen.
//
// # Traversals
//
// Two breadth-first walks over the include graph are provided, both driven
// by a Walker:
//
//  1. DiscoverHeaderSearchDirectories infers new header search roots. When a
//     directive cannot be resolved against the known roots, pre-scanned
//     directory snapshots (FileTree) are consulted: if the written include
//     path exists as a relative suffix under a snapshot, that snapshot root
//     becomes a discovered search directory.
//  2. UnresolvedIncludeDirectives collects every directive that resolves
//     nowhere, bounding expansion to the indexed project paths so that
//     third-party and system headers stay unexpanded leaves.
//
// Both walks share a processed-file memo keyed on canonical path strings,
// which terminates include cycles: each file's directives are extracted at
// most once per call. Source files are partitioned into round-robin
// quantiles for progress granularity and optional fan-out to a worker pool.
//
// All failure is modeled as data. A missing file yields no directives, an
// unresolvable directive lands in the result set, and a walk never aborts.
package includes
