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

package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Executable marks a file in a directory structure that must be created
// with the executable bit set.
type Executable string

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// CreateDirectoryStructure creates a directory structure for testing
func (h *FSHelper) CreateDirectoryStructure(structure map[string]any) error {
	return h.createStructureRecursive("", structure)
}

// createStructureRecursive recursively creates directory structures
func (h *FSHelper) createStructureRecursive(basePath string, structure map[string]any) error {
	for name, content := range structure {
		fullPath := filepath.Join(basePath, filepath.FromSlash(name))

		switch v := content.(type) {
		case string:
			if err := h.writeFile(fullPath, []byte(v), 0o644); err != nil {
				return err
			}
		case Executable:
			if err := h.writeFile(fullPath, []byte(v), 0o755); err != nil {
				return err
			}
		case []byte:
			if err := h.writeFile(fullPath, v, 0o644); err != nil {
				return err
			}
		case map[string]any:
			// It's a directory with subdirectories/files
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", fullPath, err)
			}
			if err := h.createStructureRecursive(fullPath, v); err != nil {
				return err
			}
		case nil:
			// It's an empty directory
			if err := h.Fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("failed to create empty directory %s: %w", fullPath, err)
			}
		}
	}
	return nil
}

func (h *FSHelper) writeFile(path string, content []byte, perm uint32) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := h.Fs.Chmod(path, os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	if err != nil {
		return false
	}
	return exists
}

// ReadFile reads a file and returns its content
func (h *FSHelper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// GetInstallStructure returns a typical install directory with a shipped
// runtime, its embeddable library, and versioned startup artifacts.
func GetInstallStructure() map[string]any {
	return map[string]any{
		"opt/app": map[string]any{
			"zaparoo": Executable("#!/bin/sh\n"),
			"plugins": map[string]any{
				"org.eclipse.equinox.launcher_1.6.0.v20200915.jar": []byte{0x50, 0x4B},
				"org.eclipse.equinox.launcher_1.10.0.jar":          []byte{0x50, 0x4B},
				"org.eclipse.equinox.launcher_1.9.0.jar":           []byte{0x50, 0x4B},
				"unrelated_2.0.0.jar":                              []byte{0x50, 0x4B},
			},
			"jre": map[string]any{
				"bin": map[string]any{
					"java": Executable("\x7fELF"),
				},
				"lib": map[string]any{
					"server": map[string]any{
						"libjvm.so": []byte("\x7fELF"),
					},
				},
			},
		},
	}
}

// SetupInstall creates a new in-memory filesystem holding the install
// structure rooted at /opt/app.
func SetupInstall() (*FSHelper, error) {
	helper := NewMemoryFS()
	root := map[string]any{string(filepath.Separator): GetInstallStructure()}
	if err := helper.CreateDirectoryStructure(root); err != nil {
		return nil, err
	}
	return helper, nil
}
