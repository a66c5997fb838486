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
	"os"
	"path/filepath"
	"strings"
)

// ProgramPath returns the absolute path of the running launcher. argv0 is
// preferred so symlinked installs keep their own directory; os.Executable is
// the fallback when argv0 cannot be made absolute.
func ProgramPath(argv0 string) string {
	if argv0 != "" && strings.ContainsRune(argv0, filepath.Separator) {
		if abs, err := filepath.Abs(argv0); err == nil {
			return abs
		}
	}
	exe, err := os.Executable()
	if err != nil {
		return argv0
	}
	return exe
}

// ProgramDir returns the install directory of the program, with a trailing
// separator, or "" when program has no directory part.
func ProgramDir(program string) string {
	i := strings.LastIndexByte(program, filepath.Separator)
	if i < 0 {
		return ""
	}
	return program[:i+1]
}
