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

package main

import (
	"path/filepath"
	"reflect"
	"testing"

	cxxtest "github.com/kraklabs/cxxinc/internal/testing"
)

func TestCollectSourceFiles(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"src/main.cpp":        "",
		"src/util.cpp":        "",
		"src/util.h":          "",
		"build/gen.cpp":       "",
		"docs/readme.md":      "",
		"vendor/dep/dep.cpp":  "",
		"src/deep/nested.cxx": "",
	})

	cfg := &Config{
		Sources: []string{"**/*.cpp", "**/*.cxx", "**/*.h"},
		Exclude: []string{"build/**", "vendor/**"},
	}

	sources, err := collectSourceFiles(cfg, root)
	if err != nil {
		t.Fatalf("collectSourceFiles() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "src/deep/nested.cxx"),
		filepath.Join(root, "src/main.cpp"),
		filepath.Join(root, "src/util.cpp"),
		filepath.Join(root, "src/util.h"),
	}
	if got := sources.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("collectSourceFiles() = %v, want %v", got, want)
	}
}

func TestCollectSourceFilesNoMatches(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"notes.txt": "",
	})

	cfg := &Config{Sources: []string{"**/*.cpp"}}

	sources, err := collectSourceFiles(cfg, root)
	if err != nil {
		t.Fatalf("collectSourceFiles() error = %v", err)
	}
	if sources.Len() != 0 {
		t.Errorf("expected no matches, got %v", sources.Strings())
	}
}

func TestCollectSourceFilesInvalidPattern(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{Sources: []string{"[unclosed"}}

	if _, err := collectSourceFiles(cfg, root); err == nil {
		t.Error("collectSourceFiles() should reject an invalid glob")
	}
}

func TestCollectSourceFilesMatchesDirectoriesNever(t *testing.T) {
	root := cxxtest.WriteTree(t, map[string]string{
		"src.cpp/inner.cpp": "", // directory whose name matches the glob
	})

	cfg := &Config{Sources: []string{"**/*.cpp"}}

	sources, err := collectSourceFiles(cfg, root)
	if err != nil {
		t.Fatalf("collectSourceFiles() error = %v", err)
	}

	want := []string{filepath.Join(root, "src.cpp/inner.cpp")}
	if got := sources.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("collectSourceFiles() = %v, want %v", got, want)
	}
}

func TestResolvePathSet(t *testing.T) {
	root := "/home/dev/proj"

	set := resolvePathSet([]string{".", "include", "/usr/include", ""}, root)

	want := []string{
		"/home/dev/proj",
		"/home/dev/proj/include",
		"/usr/include",
	}
	if got := set.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("resolvePathSet() = %v, want %v", got, want)
	}
}
