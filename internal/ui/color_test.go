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

package ui

import (
	"testing"

	"github.com/fatih/color"
)

func TestInitColors(t *testing.T) {
	// Save original state
	original := color.NoColor
	defer func() { color.NoColor = original }()

	tests := []struct {
		name     string
		noColor  bool
		expected bool
	}{
		{
			name:     "colors enabled when noColor is false",
			noColor:  false,
			expected: false,
		},
		{
			name:     "colors disabled when noColor is true",
			noColor:  true,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitColors(tt.noColor)
			if color.NoColor != tt.expected {
				t.Errorf("InitColors(%v): color.NoColor = %v, expected %v",
					tt.noColor, color.NoColor, tt.expected)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	// Disable colors for predictable output
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	result := Label("Project:")
	expected := "Project:"
	if result != expected {
		t.Errorf("Label() = %q, expected %q", result, expected)
	}
}

func TestPathText(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	result := PathText("/usr/include")
	expected := "/usr/include"
	if result != expected {
		t.Errorf("PathText() = %q, expected %q", result, expected)
	}
}

func TestCountText(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	result := CountText(42)
	expected := "42"
	if result != expected {
		t.Errorf("CountText() = %q, expected %q", result, expected)
	}
}

func TestLocation(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	result := Location("src/main.cpp", 7)
	expected := "src/main.cpp:7"
	if result != expected {
		t.Errorf("Location() = %q, expected %q", result, expected)
	}
}
