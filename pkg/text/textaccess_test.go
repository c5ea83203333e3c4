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

package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.cpp")
	require.NoError(t, os.WriteFile(file, []byte("#include <vector>\nint main() {}\n"), 0644))

	ta := FromFile(paths.New(file))

	assert.Equal(t, file, ta.FilePath().String())
	assert.Equal(t, []string{"#include <vector>", "int main() {}"}, ta.Lines())
	assert.Equal(t, 2, ta.LineCount())
}

func TestFromFile_Missing(t *testing.T) {
	fp := paths.New(filepath.Join(t.TempDir(), "vanished.cpp"))

	ta := FromFile(fp)

	// Missing files are a "no lines" case, never an error.
	assert.Empty(t, ta.Lines())
	assert.Equal(t, fp.String(), ta.FilePath().String())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single line",
			input: "hello world",
			want:  []string{"hello world"},
		},
		{
			name:  "multiple lines",
			input: "line1\nline2\nline3",
			want:  []string{"line1", "line2", "line3"},
		},
		{
			name:  "trailing newline",
			input: "line1\nline2\n",
			want:  []string{"line1", "line2"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "only newlines",
			input: "\n\n",
			want:  []string{"", ""},
		},
		{
			name:  "windows line endings",
			input: "line1\r\nline2\r\n",
			want:  []string{"line1", "line2"},
		},
		{
			name:  "mixed empty and content",
			input: "line1\n\nline3",
			want:  []string{"line1", "", "line3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}
