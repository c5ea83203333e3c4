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
	"fmt"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// IncludeDirective is one lexical #include line, as written, prior to
// resolution.
type IncludeDirective struct {
	// IncludedFile is the path between the delimiters, unresolved.
	IncludedFile paths.FilePath

	// IncludingFile is the absolute path of the file the directive was
	// extracted from.
	IncludingFile paths.FilePath

	// LineNumber is the 1-based physical line position of the directive.
	LineNumber int

	// UsesBrackets records whether the directive used <...> rather than
	// "...". Retained for diagnostics; resolution treats both forms alike.
	UsesBrackets bool
}

// Less orders directives by included-file path only. Two directives for the
// same included spelling compare equal regardless of where they were written,
// which is also the deduplication rule for the unresolved result set.
func (d IncludeDirective) Less(other IncludeDirective) bool {
	return d.IncludedFile.Less(other.IncludedFile)
}

// String renders the directive the way it appeared in source.
func (d IncludeDirective) String() string {
	if d.UsesBrackets {
		return fmt.Sprintf("#include <%s>", d.IncludedFile)
	}
	return fmt.Sprintf("#include %q", d.IncludedFile.String())
}
