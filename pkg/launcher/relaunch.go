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

package launcher

import (
	"strings"
)

// ParseArgList splits an exit data payload into arguments, one per line.
// A trailing line feed does not add an empty argument.
func ParseArgList(data string) []string {
	if data == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(data, "\n"), "\n")
}

// RelaunchCommand builds the argv the launcher replaces itself with. It
// keeps the tokens after the markers, or after the first token when the
// markers are missing, and drops the splash flag and any classpath entry.
// The result always starts with program.
func RelaunchCommand(program string, command, markers []string) []string {
	start := 1
	if i := indexSequence(command, markers); i >= 0 {
		start = i + len(markers)
	}

	out := []string{program}
	for i := start; i < len(command); i++ {
		arg := command[i]
		switch {
		case strings.EqualFold(arg, ArgShowSplash):
			if i+1 < len(command) && !strings.HasPrefix(command[i+1], "-") {
				i++
			}
		case strings.HasPrefix(arg, ClasspathPrefix):
			// dropped, Assemble adds it back
		default:
			out = append(out, arg)
		}
	}
	return out
}

// indexSequence returns the index of the first case-insensitive occurrence
// of seq in args, or -1.
func indexSequence(args, seq []string) int {
	if len(seq) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(seq) <= len(args); i++ {
		for j, s := range seq {
			if !strings.EqualFold(args[i+j], s) {
				continue outer
			}
		}
		return i
	}
	return -1
}
