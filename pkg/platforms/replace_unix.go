//go:build !windows

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

package platforms

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ExecReplacer replaces the launcher's process image with a new one.
type ExecReplacer struct{}

// Replace execs path with argv and the current environment. It only returns
// when the exec failed.
func (ExecReplacer) Replace(path string, argv []string) error {
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
