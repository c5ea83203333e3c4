// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTree materializes a source tree under a fresh temp directory.
//
// Keys are slash-separated paths relative to the tree root; values are file
// contents. Parent directories are created as needed. The directory is
// removed automatically when the test finishes.
//
// Example:
//
//	root := testing.WriteTree(t, map[string]string{
//	    "src/a.cpp": `#include "b.h"`,
//	    "src/b.h":   "",
//	})
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
	return root
}

// WriteFile writes one file, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// Symlink creates a symbolic link, skipping the test on platforms or
// environments where symlinks are unavailable.
func Symlink(t *testing.T, oldname, newname string) {
	t.Helper()

	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("symlinks not available: %v", err)
	}
}
