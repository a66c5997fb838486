// Zaparoo Launcher
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Launcher.
//
// Zaparoo Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Launcher.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"path/filepath"
	"runtime"
	"slices"
)

// DefaultLibrarySymbol is the entry point looked up in an embeddable
// runtime library.
const DefaultLibrarySymbol = "launcher_run"

type Runtime struct {
	// DefaultName overrides the platform default runtime executable name.
	DefaultName string `toml:"default_name,omitempty"`
	// ShippedDir is searched, relative to the install directory, before PATH.
	ShippedDir    string `toml:"shipped_dir"`
	LibrarySymbol string `toml:"library_symbol"`
	// LibraryNames replaces the platform list of embeddable library names.
	LibraryNames []string `toml:"library_names,omitempty"`
	DefaultArgs  []string `toml:"default_args,omitempty,multiline"`
}

type Startup struct {
	Default   string `toml:"default"`
	SearchDir string `toml:"search_dir"`
	Prefix    string `toml:"prefix"`
}

type Splash struct {
	Command string   `toml:"command,omitempty"`
	Args    []string `toml:"args,omitempty"`
}

type ExitData struct {
	Dir string `toml:"dir,omitempty"`
}

// RuntimeName returns the configured runtime executable name, or fallback
// when none is set.
func (c *Instance) RuntimeName(fallback string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Runtime.DefaultName != "" {
		return c.vals.Runtime.DefaultName
	}
	return fallback
}

func (c *Instance) ShippedRuntimeDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filepath.FromSlash(c.vals.Runtime.ShippedDir)
}

func (c *Instance) LibrarySymbol() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Runtime.LibrarySymbol == "" {
		return DefaultLibrarySymbol
	}
	return c.vals.Runtime.LibrarySymbol
}

func (c *Instance) LibraryNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Runtime.LibraryNames)
}

// DefaultRuntimeArgs returns a copy of the configured default runtime
// arguments, or the platform defaults when none are configured.
func (c *Instance) DefaultRuntimeArgs(platformDefaults []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.vals.Runtime.DefaultArgs) > 0 {
		return slices.Clone(c.vals.Runtime.DefaultArgs)
	}
	return slices.Clone(platformDefaults)
}

func (c *Instance) Startup() Startup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.vals.Startup
	s.SearchDir = filepath.FromSlash(s.SearchDir)
	if runtime.GOOS == "darwin" && s.SearchDir != "" && !filepath.IsAbs(s.SearchDir) {
		// app bundles keep the launcher in Contents/MacOS
		s.SearchDir = filepath.Join("..", "..", "..", s.SearchDir)
	}
	return s
}

func (c *Instance) SplashCommand() (string, []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Splash.Command, slices.Clone(c.vals.Splash.Args)
}

// ExitDataDir returns the directory exit data channels live in, falling back
// to tempDir/exitdata.
func (c *Instance) ExitDataDir(tempDir string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.ExitData.Dir != "" {
		return c.vals.ExitData.Dir
	}
	return filepath.Join(tempDir, ExitDir)
}
