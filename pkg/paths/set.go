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

import "sort"

// FilePathSet is an ordered set of FilePath values keyed by the path string.
//
// Iteration via Paths is in ascending lexicographic order (the set's natural
// order). Insertion order is irrelevant, which is what resolution precedence
// and quantile partitioning rely on.
type FilePathSet struct {
	members map[string]FilePath
}

// NewFilePathSet creates a set containing the given paths.
func NewFilePathSet(paths ...FilePath) *FilePathSet {
	s := &FilePathSet{members: make(map[string]FilePath, len(paths))}
	for _, fp := range paths {
		s.Insert(fp)
	}
	return s
}

// Insert adds a path to the set. Empty paths are ignored.
func (s *FilePathSet) Insert(fp FilePath) {
	if fp.Empty() {
		return
	}
	s.members[fp.String()] = fp
}

// InsertAll adds every path from other to the set.
func (s *FilePathSet) InsertAll(other *FilePathSet) {
	for key, fp := range other.members {
		s.members[key] = fp
	}
}

// Contains reports whether the set holds the given path.
func (s *FilePathSet) Contains(fp FilePath) bool {
	_, ok := s.members[fp.String()]
	return ok
}

// Len returns the number of paths in the set.
func (s *FilePathSet) Len() int {
	return len(s.members)
}

// Paths returns the members in ascending order.
func (s *FilePathSet) Paths() []FilePath {
	out := make([]FilePath, 0, len(s.members))
	for _, fp := range s.members {
		out = append(out, fp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Strings returns the members' path strings in ascending order.
func (s *FilePathSet) Strings() []string {
	sorted := s.Paths()
	out := make([]string, len(sorted))
	for i, fp := range sorted {
		out[i] = fp.String()
	}
	return out
}
