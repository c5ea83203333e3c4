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

// ResolveDirective resolves one include directive against a set of header
// search directories. It returns the empty FilePath when nothing matches.
//
// Precedence, first match wins:
//
//  1. An absolute written path that exists is returned as written.
//  2. The written path concatenated onto the including file's directory.
//     This applies to bracket includes too, a deliberate loosening of real
//     preprocessor semantics.
//  3. Each search directory in the set's natural order.
//
// Only existence is checked; file content is never read here.
func ResolveDirective(directive IncludeDirective, searchDirectories *paths.FilePathSet) paths.FilePath {
	included := directive.IncludedFile

	if included.IsAbsolute() && included.Exists() {
		return included
	}

	relative := directive.IncludingFile.ParentDirectory().Concatenate(included)
	if relative.Exists() {
		return relative
	}

	for _, dir := range searchDirectories.Paths() {
		candidate := dir.Concatenate(included)
		if candidate.Exists() {
			return candidate
		}
	}

	return paths.FilePath{}
}
