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

// Package text provides line-oriented read access to source files.
package text

import (
	"os"
	"strings"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// TextAccess holds the lines of one source file together with the path they
// were read from. Lines carry no line-ending characters.
type TextAccess struct {
	path  paths.FilePath
	lines []string
}

// FromFile reads a file into a TextAccess.
//
// A file that is missing or unreadable (including one that vanished between
// enumeration and read) yields an accessor with no lines rather than an
// error; the caller treats that as "no directives".
func FromFile(fp paths.FilePath) *TextAccess {
	content, err := os.ReadFile(fp.String())
	if err != nil {
		return &TextAccess{path: fp}
	}
	return &TextAccess{path: fp, lines: splitLines(string(content))}
}

// FromString wraps in-memory content, attributed to the given path.
func FromString(content string, fp paths.FilePath) *TextAccess {
	return &TextAccess{path: fp, lines: splitLines(content)}
}

// FilePath returns the originating path.
func (ta *TextAccess) FilePath() paths.FilePath {
	return ta.path
}

// Lines returns the lines in file order.
func (ta *TextAccess) Lines() []string {
	return ta.lines
}

// LineCount returns the number of lines.
func (ta *TextAccess) LineCount() int {
	return len(ta.lines)
}

// splitLines splits content into lines, tolerating CRLF endings and
// dropping a single trailing newline so that "a\nb\n" is two lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
