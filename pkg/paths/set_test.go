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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilePathSet_OrderedIteration(t *testing.T) {
	// Insertion order must not matter.
	s := NewFilePathSet(New("/c"), New("/a"), New("/b"))

	assert.Equal(t, []string{"/a", "/b", "/c"}, s.Strings())
}

func TestFilePathSet_Dedup(t *testing.T) {
	s := NewFilePathSet()
	s.Insert(New("/a"))
	s.Insert(New("/a"))
	s.Insert(New("/b"))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(New("/a")))
	assert.False(t, s.Contains(New("/missing")))
}

func TestFilePathSet_IgnoresEmpty(t *testing.T) {
	s := NewFilePathSet(FilePath{})
	s.Insert(New(""))

	assert.Equal(t, 0, s.Len())
}

func TestFilePathSet_InsertAll(t *testing.T) {
	a := NewFilePathSet(New("/a"), New("/b"))
	b := NewFilePathSet(New("/b"), New("/c"))

	a.InsertAll(b)

	assert.Equal(t, []string{"/a", "/b", "/c"}, a.Strings())
	assert.Equal(t, 2, b.Len(), "source set must be unchanged")
}
