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

// Package paths provides the immutable file path value type used throughout
// the include resolution engine.
//
// FilePath is a thin value wrapper over a path string. All operations return
// new values; a FilePath is never mutated in place. Canonical forms are the
// identity used for deduplication: two FilePath values that name the same
// on-disk file compare equal after Canonical(), even when their textual
// spellings differ (relative vs. absolute, symlinked, dot segments).
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// FilePath is an immutable file path value.
//
// The zero value is the empty path, used by the resolver to signal
// "unresolved". Use New to construct non-empty values.
type FilePath struct {
	path string
}

// New creates a FilePath from a path string.
func New(path string) FilePath {
	return FilePath{path: path}
}

// String returns the path as written.
func (fp FilePath) String() string {
	return fp.path
}

// Empty reports whether the path is the empty path.
func (fp FilePath) Empty() bool {
	return fp.path == ""
}

// IsAbsolute reports whether the path is absolute.
func (fp FilePath) IsAbsolute() bool {
	return filepath.IsAbs(fp.path)
}

// Absolute resolves the path against the process working directory.
// Absolute paths are returned cleaned but otherwise unchanged. The empty
// path stays empty.
func (fp FilePath) Absolute() FilePath {
	if fp.Empty() {
		return fp
	}
	abs, err := filepath.Abs(fp.path)
	if err != nil {
		return fp
	}
	return FilePath{path: abs}
}

// Canonical returns the absolute, symlink-and-dot-resolved form of the path.
//
// Canonicalization is idempotent, and canonical forms of the same on-disk
// file are byte-identical strings. For paths that do not exist (symlinks
// cannot be resolved), the cleaned absolute form is returned instead, which
// is still a stable dedup key.
func (fp FilePath) Canonical() FilePath {
	if fp.Empty() {
		return fp
	}
	abs := fp.Absolute()
	resolved, err := filepath.EvalSymlinks(abs.path)
	if err != nil {
		return FilePath{path: filepath.Clean(abs.path)}
	}
	return FilePath{path: resolved}
}

// ParentDirectory returns the directory containing the path.
func (fp FilePath) ParentDirectory() FilePath {
	if fp.Empty() {
		return fp
	}
	return FilePath{path: filepath.Dir(fp.path)}
}

// Concatenate joins a relative path onto this path.
func (fp FilePath) Concatenate(relative FilePath) FilePath {
	return FilePath{path: filepath.Join(fp.path, relative.path)}
}

// Exists reports whether the path names an existing file or directory.
func (fp FilePath) Exists() bool {
	if fp.Empty() {
		return false
	}
	_, err := os.Stat(fp.path)
	return err == nil
}

// Contains reports whether other is this path or lies beneath it.
// Both paths are compared in their absolute forms.
func (fp FilePath) Contains(other FilePath) bool {
	if fp.Empty() || other.Empty() {
		return false
	}
	base := filepath.Clean(fp.Absolute().path)
	target := filepath.Clean(other.Absolute().path)
	if base == target {
		return true
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Less defines the total order used by FilePathSet and the quantile
// partitioner: lexicographic on the path string.
func (fp FilePath) Less(other FilePath) bool {
	return fp.path < other.path
}
