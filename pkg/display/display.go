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

// Package display shows diagnostics to the user, either on the console or
// in a native message dialog.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/nixinwang/dialog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type Displayer interface {
	Display(title, body string)
}

// New picks the console when one was requested or stderr is a terminal,
// and a dialog otherwise.
func New(console bool) Displayer {
	if console || term.IsTerminal(int(os.Stderr.Fd())) {
		return NewConsole(os.Stderr, os.Getenv("NO_COLOR") == "")
	}
	return Dialog{}
}

// Console writes messages to a writer, with a styled title when enabled.
type Console struct {
	w          io.Writer
	titleStyle lipgloss.Style
	styled     bool
}

func NewConsole(w io.Writer, styled bool) *Console {
	return &Console{
		w:      w,
		styled: styled,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")),
	}
}

func (c *Console) Display(title, body string) {
	if c.styled {
		title = c.titleStyle.Render(title)
	}
	if _, err := fmt.Fprintf(c.w, "%s\n%s\n", title, body); err != nil {
		log.Error().Err(err).Msg("failed to write message to console")
	}
}

// Dialog shows a native error dialog and blocks until it is dismissed.
type Dialog struct{}

func (Dialog) Display(title, body string) {
	dialog.Message("%s", body).Title(title).Error()
}
