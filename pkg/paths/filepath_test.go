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

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePath_Empty(t *testing.T) {
	assert.True(t, FilePath{}.Empty())
	assert.True(t, New("").Empty())
	assert.False(t, New("a.h").Empty())
}

func TestFilePath_Absolute(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	abs := New("sub/a.h").Absolute()
	assert.Equal(t, filepath.Join(cwd, "sub", "a.h"), abs.String())
	assert.True(t, abs.IsAbsolute())

	// Already-absolute paths come back cleaned, not re-rooted.
	assert.Equal(t, abs.String(), abs.Absolute().String())

	// Empty stays empty.
	assert.True(t, FilePath{}.Absolute().Empty())
}

func TestFilePath_Canonical_Idempotent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	once := New(file).Canonical()
	twice := once.Canonical()
	assert.Equal(t, once.String(), twice.String(),
		"canonicalization must be idempotent")
}

func TestFilePath_Canonical_CollapsesSpellings(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	// Two textual spellings of the same file.
	direct := New(file).Canonical()
	dotted := New(filepath.Join(dir, "sub", "..", "a.h")).Canonical()
	assert.Equal(t, direct.String(), dotted.String(),
		"canonical forms of the same file must be byte-identical")
}

func TestFilePath_Canonical_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.h")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	link := filepath.Join(dir, "link.h")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not available: %v", err)
	}

	assert.Equal(t, New(target).Canonical().String(), New(link).Canonical().String())
}

func TestFilePath_Canonical_MissingFile(t *testing.T) {
	fp := New(filepath.Join(t.TempDir(), "does", "..", "not-here.h"))
	canonical := fp.Canonical()
	assert.False(t, canonical.Empty())
	assert.Equal(t, canonical.String(), canonical.Canonical().String(),
		"missing files still canonicalize to a stable key")
}

func TestFilePath_ParentDirectory(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b"), New(filepath.Join("a", "b", "c.h")).ParentDirectory().String())
}

func TestFilePath_Concatenate(t *testing.T) {
	got := New("/roots/x").Concatenate(New("sub/a.h"))
	assert.Equal(t, filepath.Join("/roots/x", "sub", "a.h"), got.String())
}

func TestFilePath_Exists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, New(file).Exists())
	assert.True(t, New(dir).Exists(), "directories exist too")
	assert.False(t, New(filepath.Join(dir, "missing.h")).Exists())
	assert.False(t, FilePath{}.Exists())
}

func TestFilePath_Contains(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		other string
		want  bool
	}{
		{"direct child", "/proj", "/proj/a.h", true},
		{"nested child", "/proj", "/proj/src/deep/a.h", true},
		{"self", "/proj", "/proj", true},
		{"sibling", "/proj", "/other/a.h", false},
		{"prefix but not ancestor", "/proj", "/project/a.h", false},
		{"parent", "/proj/src", "/proj", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.base).Contains(New(tt.other))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilePath_Less(t *testing.T) {
	assert.True(t, New("/a").Less(New("/b")))
	assert.False(t, New("/b").Less(New("/a")))
	assert.False(t, New("/a").Less(New("/a")))
}
