// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package testing provides test helpers for cxxinc tests.
//
// The include engine is exercised against real directory trees, so most
// tests start by materializing a small C/C++ project layout:
//
//	root := testing.WriteTree(t, map[string]string{
//	    "src/a.cpp":     `#include "b.h"`,
//	    "src/b.h":       "#include <missing.h>",
//	    "ext/sub/x.h":   "",
//	})
//
// The returned root is a temp directory cleaned up with the test.
package testing
