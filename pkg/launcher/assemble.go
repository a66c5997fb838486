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

// AssembleParams is everything the command is built from.
type AssembleParams struct {
	Runtime Runtime
	Program string
	Name    string
	OS      string
	WS      string
	Arch    string
	// Library is the -library value, passed on when set.
	Library    string
	Startup    string
	ExitDataID string
	UserArgs   []string
	// UserVMArgs replace DefaultVMArgs entirely when HasUserVMArgs is set,
	// even when empty.
	UserVMArgs    []string
	DefaultVMArgs []string
	HasUserVMArgs bool
	ShowSplash    bool
}

// Command is an assembled launch: arguments for the runtime itself and
// arguments for the program it starts.
type Command struct {
	VMArgs   []string
	ProgArgs []string
	markers  []string
}

// Assemble builds the runtime and program argument lists. Any classpath the
// user gave is replaced by one naming the startup artifact.
func Assemble(p AssembleParams) *Command {
	vmArgs := p.DefaultVMArgs
	if p.HasUserVMArgs {
		vmArgs = p.UserVMArgs
	}
	vmArgs = stripClasspath(vmArgs)

	var markers []string
	if p.Runtime.Mode == ModeEmbedded {
		markers = []string{ClasspathPrefix + p.Startup}
	} else {
		markers = []string{ArgJar, p.Startup}
	}
	vmArgs = append(vmArgs, markers...)

	progArgs := make([]string, 0, 18+len(p.UserArgs)+len(vmArgs))
	progArgs = append(progArgs, ArgOS, p.OS, ArgWS, p.WS)
	if p.Arch != "" {
		progArgs = append(progArgs, ArgArch, p.Arch)
	}
	progArgs = append(progArgs, ArgLauncher, p.Program, ArgName, p.Name)
	if p.Library != "" {
		progArgs = append(progArgs, ArgLibrary, p.Library)
	}
	progArgs = append(progArgs, ArgStartup, p.Startup)
	if p.ShowSplash {
		progArgs = append(progArgs, ArgShowSplash)
	}
	if p.ExitDataID != "" {
		progArgs = append(progArgs, ArgExitData, p.ExitDataID)
	}
	progArgs = append(progArgs, p.UserArgs...)
	progArgs = append(progArgs, ArgVM, p.Runtime.Path(), ArgVMArgs)
	progArgs = append(progArgs, vmArgs...)

	return &Command{
		VMArgs:   vmArgs,
		ProgArgs: progArgs,
		markers:  markers,
	}
}

// stripClasspath returns a copy of args without classpath entries, in
// either the property or the -jar form.
func stripClasspath(args []string) []string {
	out := make([]string, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		switch {
		case strings.HasPrefix(args[i], ClasspathPrefix):
			// dropped
		case args[i] == ArgJar:
			i++ // and its value
		default:
			out = append(out, args[i])
		}
	}
	return out
}

// ExecArgv is the argv of an external runtime process.
func (c *Command) ExecArgv(runtimePath string) []string {
	return slices.Concat([]string{runtimePath}, c.VMArgs, c.ProgArgs)
}

// RequiredMarkers returns the classpath tokens Assemble added. They mark
// where the runtime arguments end in a relaunch payload.
func (c *Command) RequiredMarkers() []string {
	return slices.Clone(c.markers)
}
