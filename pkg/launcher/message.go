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
	"slices"
	"strings"
)

const (
	exitMsg       = "Runtime terminated. Exit code=%d\n%s"
	startMsg      = "Start runtime: %s"
	pathMsg       = "%s\n'%s' in your current PATH"
	noExitDataMsg = "No exit data available."
	noRuntimeMsg  = "A runtime environment must be available in order to run %s.\n" +
		"No runtime was found after searching the following locations:\n%s"
	noStartupMsg = "The %s executable launcher was unable to locate its\n" +
		"companion startup artifact."
	noHomeMsg = "The %s executable launcher was unable to locate its\n" +
		"install directory."

	titleOpen  = "<title>"
	titleClose = "</title>"
)

// FormatCommand renders a command for diagnostics. primary is rendered when
// it is not nil, otherwise a followed by b. Every flag after the first token
// starts a new line.
func FormatCommand(primary, a, b []string) string {
	tokens := primary
	if tokens == nil {
		tokens = slices.Concat(a, b)
	}

	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 {
			if strings.HasPrefix(token, "-") {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(token)
	}
	return sb.String()
}

// splitTitle extracts the title from a <title>T</title>body payload.
func splitTitle(payload string) (title, body string, ok bool) {
	rest, found := strings.CutPrefix(payload, titleOpen)
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, titleClose)
}
