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
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option keys used by DefaultOptions.
const (
	OptConsole    = "console"
	OptDebug      = "debug"
	OptNoSplash   = "nosplash"
	OptLibrary    = "library"
	OptOS         = "os"
	OptArch       = "arch"
	OptShowSplash = "showsplash"
	OptStartup    = "startup"
	OptVM         = "vm"
	OptName       = "name"
	OptWS         = "ws"
)

// Arguments the launcher writes for the runtime or reads itself.
const (
	ArgOS         = "-os"
	ArgWS         = "-ws"
	ArgArch       = "-arch"
	ArgLauncher   = "-launcher"
	ArgName       = "-name"
	ArgLibrary    = "-library"
	ArgStartup    = "-startup"
	ArgShowSplash = "-showsplash"
	ArgExitData   = "-exitdata"
	ArgVM         = "-vm"
	ArgVMArgs     = "-vmargs"
	ArgJar        = "-jar"

	// ClasspathPrefix starts the runtime property naming the startup
	// artifact in embedded mode.
	ClasspathPrefix = "-Djava.class.path="
)

// OptionSpec describes one launcher option recognised on the command line.
// Consumed is the number of tokens removed when the option matches, counting
// the option itself. An option with Consumed 0 is recorded but left in place
// for the program to see.
type OptionSpec struct {
	Name       string
	Key        string
	Consumed   int
	BindsValue bool
	SetsFlag   bool
}

var DefaultOptions = []OptionSpec{
	{Name: "-console", Key: OptConsole, SetsFlag: true},
	{Name: "-consoleLog", Key: OptConsole, SetsFlag: true},
	{Name: "-debug", Key: OptDebug, SetsFlag: true},
	{Name: "-nosplash", Key: OptNoSplash, SetsFlag: true, Consumed: 1},
	{Name: ArgLibrary, Key: OptLibrary, BindsValue: true, Consumed: 2},
	{Name: ArgOS, Key: OptOS, BindsValue: true, Consumed: 2},
	{Name: ArgArch, Key: OptArch, BindsValue: true, Consumed: 2},
	{Name: ArgShowSplash, Key: OptShowSplash, BindsValue: true, Consumed: 2},
	{Name: ArgStartup, Key: OptStartup, BindsValue: true, Consumed: 2},
	{Name: ArgVM, Key: OptVM, BindsValue: true, Consumed: 2},
	{Name: ArgName, Key: OptName, BindsValue: true, Consumed: 2},
	{Name: ArgWS, Key: OptWS, BindsValue: true, Consumed: 2},
}

// ResolvedOptions holds the values and flags found by Resolve. The zero
// value has nothing set.
type ResolvedOptions struct {
	values map[string]string
	flags  map[string]bool
}

// Value returns the value bound to key and whether one was bound.
func (o ResolvedOptions) Value(key string) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o ResolvedOptions) Flag(key string) bool {
	return o.flags[key]
}

func lookupOption(table []OptionSpec, arg string) (OptionSpec, bool) {
	for _, spec := range table {
		if strings.EqualFold(spec.Name, arg) {
			return spec, true
		}
	}
	return OptionSpec{}, false
}

// Resolve scans args for options in table, records their values and flags,
// and removes the consumed tokens. The remaining tokens keep their order
// and are returned as a prefix of the same backing array. When an option
// appears more than once, its last occurrence wins.
func Resolve(args []string, table []OptionSpec) ([]string, ResolvedOptions) {
	opts := ResolvedOptions{
		values: make(map[string]string),
		flags:  make(map[string]bool),
	}

	i := 0
	for i < len(args) {
		spec, ok := lookupOption(table, args[i])
		if !ok {
			i++
			continue
		}

		if spec.BindsValue && i+1 < len(args) {
			opts.values[spec.Key] = args[i+1]
		}
		if spec.SetsFlag {
			opts.flags[spec.Key] = true
		}

		n := min(spec.Consumed, len(args)-i)
		if n <= 0 {
			i++
			continue
		}
		// the same index is examined again, it now holds the next token
		args = slices.Delete(args, i, i+n)
	}

	return args, opts
}

// SplitVMArgs splits args at the first -vmargs marker. Everything after the
// marker is returned as runtime arguments.
func SplitVMArgs(args []string) (prog, vm []string, found bool) {
	for i, arg := range args {
		if strings.EqualFold(arg, ArgVMArgs) {
			return slices.Clone(args[:i]), slices.Clone(args[i+1:]), true
		}
	}
	return slices.Clone(args), nil, false
}

// DefaultOfficialName derives the application name from the launcher
// executable, e.g. /opt/app/zaparoo.exe becomes Zaparoo.
func DefaultOfficialName(program string) string {
	name := filepath.Base(program)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" || name == "." || name == string(filepath.Separator) {
		return ""
	}

	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// PeekOptions resolves the options before any -vmargs marker without
// touching args.
func PeekOptions(args []string) ResolvedOptions {
	prog, _, _ := SplitVMArgs(args)
	_, opts := Resolve(prog, DefaultOptions)
	return opts
}
