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
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kraklabs/cxxinc/pkg/paths"
)

// FileTree answers suffix queries against a pre-scanned directory: given a
// relative file path, under which absolute root does it exist?
//
// Discovery only ever consumes this one lookup, so fakes backed by an
// in-memory map satisfy it trivially.
type FileTree interface {
	// AbsoluteRootPathForRelativeFilePath returns the absolute directory
	// under which the relative path exists within the scanned tree, or the
	// empty FilePath when it exists nowhere in the tree.
	AbsoluteRootPathForRelativeFilePath(relative paths.FilePath) paths.FilePath
}

// dirFileTree is the filesystem-backed FileTree. The directory is walked
// once at construction; lookups afterwards touch only the in-memory index.
type dirFileTree struct {
	root paths.FilePath

	// filesByName indexes every regular file under root by base name.
	// Values are absolute paths in walk (lexical) order, which makes the
	// first-match answer deterministic.
	filesByName map[string][]string
}

// NewFileTree scans rootPath recursively and returns a FileTree over its
// contents. Unreadable subdirectories are skipped silently.
func NewFileTree(rootPath paths.FilePath) FileTree {
	t := &dirFileTree{
		root:        rootPath.Absolute(),
		filesByName: make(map[string][]string),
	}

	_ = filepath.WalkDir(t.root.String(), func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := filepath.Base(p)
		t.filesByName[name] = append(t.filesByName[name], p)
		return nil
	})

	return t
}

func (t *dirFileTree) AbsoluteRootPathForRelativeFilePath(relative paths.FilePath) paths.FilePath {
	if relative.Empty() || relative.IsAbsolute() {
		return paths.FilePath{}
	}

	suffix := string(filepath.Separator) + filepath.Clean(relative.String())
	for _, candidate := range t.filesByName[filepath.Base(suffix)] {
		if strings.HasSuffix(candidate, suffix) {
			return paths.New(strings.TrimSuffix(candidate, suffix))
		}
	}
	return paths.FilePath{}
}
