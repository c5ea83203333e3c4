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
	"strings"

	"github.com/kraklabs/cxxinc/pkg/paths"
	"github.com/kraklabs/cxxinc/pkg/text"
)

// ExtractDirectives scans a file for include directives.
// A file that does not exist yields an empty result, not an error.
func ExtractDirectives(fp paths.FilePath) []IncludeDirective {
	if !fp.Exists() {
		return nil
	}
	return ExtractDirectivesFromText(text.FromFile(fp))
}

// ExtractDirectivesFromText scans in-memory source text for include
// directives.
//
// A line is a directive when, after trimming, it starts with '#' and the
// trimmed remainder starts with "include". The remainder is searched for the
// first <...> pair, then the first "..." pair; a line with neither (or with
// empty content between the delimiters) is skipped. The scan is purely
// lexical: it does not recognize comments, line continuations, or macro
// arguments.
func ExtractDirectivesFromText(ta *text.TextAccess) []IncludeDirective {
	var directives []IncludeDirective

	for i, line := range ta.Lines() {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#")
		if !ok {
			continue
		}
		rest, ok = strings.CutPrefix(strings.TrimSpace(rest), "include")
		if !ok {
			continue
		}

		name := substrBetween(rest, '<', '>')
		usesBrackets := true
		if name == "" {
			name = substrBetween(rest, '"', '"')
			usesBrackets = false
		}
		if name == "" {
			continue
		}

		directives = append(directives, IncludeDirective{
			IncludedFile:  paths.New(name),
			IncludingFile: ta.FilePath(),
			LineNumber:    i + 1, // lines are 1-based
			UsesBrackets:  usesBrackets,
		})
	}

	recordFileScanned()
	recordDirectivesExtracted(len(directives))
	return directives
}

// substrBetween returns the content between the first open delimiter and the
// next close delimiter after it, or "" when either is missing.
func substrBetween(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}
	rest := s[start+1:]
	end := strings.IndexByte(rest, close)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
