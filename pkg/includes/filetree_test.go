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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	cxxtest "github.com/kraklabs/cxxinc/internal/testing"
	"github.com/kraklabs/cxxinc/pkg/paths"
)

func TestFileTree_Lookup(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"sub/x.h":        "",
		"deep/nested/y.h": "",
		"z.h":            "",
	})

	tree := NewFileTree(paths.New(root))

	tests := []struct {
		name     string
		relative string
		wantRoot string
	}{
		{"one level", "sub/x.h", root},
		{"bare file", "z.h", root},
		{"two levels", "nested/y.h", filepath.Join(root, "deep")},
		{"full depth", "deep/nested/y.h", root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.AbsoluteRootPathForRelativeFilePath(paths.New(tt.relative))
			assert.Equal(t, tt.wantRoot, got.String())
		})
	}
}

func TestFileTree_LookupMisses(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"sub/x.h": "",
	})

	tree := NewFileTree(paths.New(root))

	tests := []struct {
		name     string
		relative string
	}{
		{"unknown file", "nope.h"},
		{"known name wrong dir", "other/x.h"},
		{"empty path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.AbsoluteRootPathForRelativeFilePath(paths.New(tt.relative))
			assert.True(t, got.Empty())
		})
	}
}

func TestFileTree_AbsoluteQueriesAreRejected(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"sub/x.h": "",
	})

	tree := NewFileTree(paths.New(root))
	got := tree.AbsoluteRootPathForRelativeFilePath(paths.New(filepath.Join(root, "sub", "x.h")))

	assert.True(t, got.Empty(), "suffix queries are relative by contract")
}

func TestFileTree_MissingRoot(t *testing.T) {
	tree := NewFileTree(paths.New(filepath.Join(t.TempDir(), "gone")))

	got := tree.AbsoluteRootPathForRelativeFilePath(paths.New("x.h"))
	assert.True(t, got.Empty())
}
