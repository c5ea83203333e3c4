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
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/cxxinc/internal/errors"
)

// Config is the project configuration loaded from .cxxinc/project.yaml.
type Config struct {
	// Project is a human-readable project name.
	Project string `yaml:"project"`

	// Sources are doublestar globs selecting the source files to walk,
	// relative to the project root.
	Sources []string `yaml:"sources"`

	// Exclude are doublestar globs removing matches from Sources.
	Exclude []string `yaml:"exclude,omitempty"`

	// IndexedPaths bound include expansion: a resolved header outside all
	// of them is a terminal leaf. Relative paths are resolved against the
	// project root. Defaults to the project root itself.
	IndexedPaths []string `yaml:"indexed_paths,omitempty"`

	// HeaderSearchPaths are already-known header search directories
	// (-I equivalents) used by resolution.
	HeaderSearchPaths []string `yaml:"header_search_paths,omitempty"`

	// SnapshotPaths are external directories pre-scanned into FileTree
	// snapshots, consulted by 'discover' to infer new search roots.
	SnapshotPaths []string `yaml:"snapshot_paths,omitempty"`

	// Quantiles is the desired partition count for progress granularity.
	Quantiles int `yaml:"quantiles,omitempty"`

	// Workers fans quantiles out to a goroutine pool when above 1.
	Workers int `yaml:"workers,omitempty"`
}

// ConfigDir returns the configuration directory for a project root.
func ConfigDir(root string) string {
	return filepath.Join(root, ".cxxinc")
}

// ConfigPath returns the configuration file path for a project root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), "project.yaml")
}

// DefaultConfig returns the configuration written by 'cxxinc init'.
func DefaultConfig(projectName string) *Config {
	return &Config{
		Project: projectName,
		Sources: []string{
			"**/*.c", "**/*.cc", "**/*.cpp", "**/*.cxx",
			"**/*.h", "**/*.hh", "**/*.hpp", "**/*.hxx",
		},
		Exclude:      []string{"build/**", ".git/**"},
		IndexedPaths: []string{"."},
		Quantiles:    8,
		Workers:      1,
	}
}

// LoadConfig reads the configuration from the given path, or from
// ./.cxxinc/project.yaml when path is empty.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.NewInternalError(
				"Cannot determine working directory",
				err.Error(),
				"",
				err,
			)
		}
		path = ConfigPath(cwd)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(
				"Cannot load cxxinc configuration",
				fmt.Sprintf("The file %s does not exist", path),
				"Run 'cxxinc init' to create a new configuration",
				err,
			)
		}
		return nil, errors.NewConfigError(
			"Cannot read cxxinc configuration",
			err.Error(),
			fmt.Sprintf("Check permissions on %s", path),
			err,
		)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.NewConfigError(
			"Cannot parse cxxinc configuration",
			fmt.Sprintf("%s is not valid YAML: %v", path, err),
			"Fix the file or re-create it with 'cxxinc init --force'",
			err,
		)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Sources) == 0 {
		c.Sources = DefaultConfig("").Sources
	}
	if len(c.IndexedPaths) == 0 {
		c.IndexedPaths = []string{"."}
	}
	if c.Quantiles < 1 {
		c.Quantiles = 8
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
}
