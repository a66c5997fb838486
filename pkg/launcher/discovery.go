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
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type LaunchMode int

const (
	// ModeExternal runs the runtime as a child process.
	ModeExternal LaunchMode = iota
	// ModeEmbedded loads the runtime library and calls it in-process.
	ModeEmbedded
)

func (m LaunchMode) String() string {
	switch m {
	case ModeExternal:
		return "external"
	case ModeEmbedded:
		return "embedded"
	default:
		return fmt.Sprintf("LaunchMode(%d)", int(m))
	}
}

// Finder locates runtime executables and their embeddable libraries.
type Finder interface {
	FindCommand(name string) (string, bool)
	FindVMLibrary(path string) (string, bool)
}

type DiscoveryRequest struct {
	// Explicit is the -vm value, empty when none was given.
	Explicit    string
	ProgramDir  string
	ShippedDir  string
	DefaultName string
}

// Runtime is the result of discovery. The mode is decided once and stays
// the same for every restart of the run.
type Runtime struct {
	Executable string
	Library    string
	Mode       LaunchMode
}

// Path is the runtime passed to the program with -vm.
func (r Runtime) Path() string {
	if r.Mode == ModeEmbedded {
		return r.Library
	}
	return r.Executable
}

// Discover finds the runtime to launch. An explicit runtime is looked up
// as given. Otherwise the runtime shipped with the launcher is tried before
// the default name on PATH. Library detection runs at most once, and a
// found library selects embedded mode.
func Discover(f Finder, req DiscoveryRequest) (Runtime, error) {
	var rt Runtime
	var searched string
	libTried := false

	if req.Explicit != "" {
		searched = req.Explicit
		target := req.Explicit
		if exe, ok := f.FindCommand(req.Explicit); ok {
			rt.Executable = exe
			target = exe
		}
		if lib, ok := f.FindVMLibrary(target); ok {
			rt.Library = lib
		}
		libTried = true
	} else {
		shipped := filepath.Join(req.ProgramDir, req.ShippedDir, req.DefaultName)
		searched = fmt.Sprintf(pathMsg, shipped, req.DefaultName)
		if exe, ok := f.FindCommand(shipped); ok {
			rt.Executable = exe
		} else if exe, ok := f.FindCommand(req.DefaultName); ok {
			rt.Executable = exe
		}
	}

	if rt.Executable != "" && !libTried {
		if lib, ok := f.FindVMLibrary(rt.Executable); ok {
			rt.Library = lib
		}
	}

	switch {
	case rt.Library != "":
		rt.Mode = ModeEmbedded
	case rt.Executable != "":
		rt.Mode = ModeExternal
	default:
		return Runtime{}, &FatalError{Kind: ErrNoRuntime, Searched: searched}
	}

	log.Info().
		Str("mode", rt.Mode.String()).
		Str("executable", rt.Executable).
		Str("library", rt.Library).
		Msg("discovered runtime")
	return rt, nil
}
