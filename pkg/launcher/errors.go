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
	"errors"
	"fmt"
)

var (
	ErrNoHome    = errors.New("install directory not found")
	ErrNoRuntime = errors.New("no runtime found")
	ErrNoStartup = errors.New("startup artifact not found")
)

// FatalError is a configuration problem that stops the launch. Kind is one
// of ErrNoHome, ErrNoRuntime or ErrNoStartup.
type FatalError struct {
	Kind error
	// Searched lists the locations that were looked at, one per line.
	Searched string
}

func (e *FatalError) Error() string {
	if e.Searched == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Searched)
}

func (e *FatalError) Unwrap() error {
	return e.Kind
}

// Message renders the text shown to the user for the application name.
func (e *FatalError) Message(name string) string {
	switch {
	case errors.Is(e.Kind, ErrNoHome):
		return fmt.Sprintf(noHomeMsg, name)
	case errors.Is(e.Kind, ErrNoRuntime):
		return fmt.Sprintf(noRuntimeMsg, name, e.Searched)
	case errors.Is(e.Kind, ErrNoStartup):
		return fmt.Sprintf(noStartupMsg, name)
	default:
		return e.Error()
	}
}
