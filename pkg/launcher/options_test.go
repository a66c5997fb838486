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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values   map[string]string
		name     string
		args     []string
		wantArgs []string
		flags    []string
	}{
		{
			name:     "no_options",
			args:     []string{"-data", "/tmp/ws", "foo"},
			wantArgs: []string{"-data", "/tmp/ws", "foo"},
			values:   map[string]string{},
		},
		{
			name:     "value_option_removed",
			args:     []string{"-data", "/tmp/ws", "-vm", "/opt/java", "foo"},
			wantArgs: []string{"-data", "/tmp/ws", "foo"},
			values:   map[string]string{OptVM: "/opt/java"},
		},
		{
			name:     "console_and_debug_left_in_place",
			args:     []string{"-console", "-debug", "-consoleLog"},
			wantArgs: []string{"-console", "-debug", "-consoleLog"},
			values:   map[string]string{},
			flags:    []string{OptConsole, OptDebug},
		},
		{
			name:     "nosplash_removes_only_itself",
			args:     []string{"-nosplash", "foo"},
			wantArgs: []string{"foo"},
			values:   map[string]string{},
			flags:    []string{OptNoSplash},
		},
		{
			name:     "case_insensitive",
			args:     []string{"-VM", "/opt/java", "-Name", "Zaparoo"},
			wantArgs: []string{},
			values:   map[string]string{OptVM: "/opt/java", OptName: "Zaparoo"},
		},
		{
			name:     "last_occurrence_wins",
			args:     []string{"-os", "linux", "a", "-os", "macosx", "b"},
			wantArgs: []string{"a", "b"},
			values:   map[string]string{OptOS: "macosx"},
		},
		{
			name:     "adjacent_options_reexamined",
			args:     []string{"-vm", "java", "-startup", "s.jar", "-ws", "gtk"},
			wantArgs: []string{},
			values:   map[string]string{OptVM: "java", OptStartup: "s.jar", OptWS: "gtk"},
		},
		{
			name:     "trailing_option_binds_nothing",
			args:     []string{"foo", "-vm"},
			wantArgs: []string{"foo"},
			values:   map[string]string{},
		},
		{
			name:     "showsplash_value",
			args:     []string{"-showsplash", "600", "-library", "/opt/lib.so"},
			wantArgs: []string{},
			values:   map[string]string{OptShowSplash: "600", OptLibrary: "/opt/lib.so"},
		},
		{
			name:     "empty",
			args:     []string{},
			wantArgs: []string{},
			values:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, opts := Resolve(append([]string{}, tt.args...), DefaultOptions)

			assert.Equal(t, tt.wantArgs, args)
			for key, want := range tt.values {
				got, ok := opts.Value(key)
				assert.True(t, ok, key)
				assert.Equal(t, want, got, key)
			}
			for _, key := range []string{OptVM, OptOS, OptWS, OptArch, OptName, OptStartup, OptLibrary} {
				if _, want := tt.values[key]; !want {
					_, ok := opts.Value(key)
					assert.False(t, ok, key)
				}
			}
			for _, key := range tt.flags {
				assert.True(t, opts.Flag(key), key)
			}
		})
	}
}

func TestResolve_InPlace(t *testing.T) {
	t.Parallel()

	args := []string{"a", "-vm", "java", "b"}
	out, _ := Resolve(args, DefaultOptions)

	require.Equal(t, []string{"a", "b"}, out)
	assert.Same(t, &args[0], &out[0])
}

func TestResolve_FirstTableEntryWins(t *testing.T) {
	t.Parallel()

	table := []OptionSpec{
		{Name: "-x", Key: "first", BindsValue: true, Consumed: 2},
		{Name: "-X", Key: "second", SetsFlag: true},
	}
	args, opts := Resolve([]string{"-x", "1"}, table)

	assert.Empty(t, args)
	v, ok := opts.Value("first")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.False(t, opts.Flag("second"))
}

func TestResolve_ConsumedBoundedByLength(t *testing.T) {
	t.Parallel()

	table := []OptionSpec{{Name: "-three", Key: "three", BindsValue: true, Consumed: 3}}
	args, opts := Resolve([]string{"a", "-three", "v"}, table)

	assert.Equal(t, []string{"a"}, args)
	v, _ := opts.Value("three")
	assert.Equal(t, "v", v)
}

func TestResolvedOptions_ZeroValue(t *testing.T) {
	t.Parallel()

	var opts ResolvedOptions
	_, ok := opts.Value(OptVM)
	assert.False(t, ok)
	assert.False(t, opts.Flag(OptDebug))
}

func TestPeekOptions(t *testing.T) {
	t.Parallel()

	args := []string{"-debug", "-vm", "java"}
	opts := PeekOptions(args)

	assert.True(t, opts.Flag(OptDebug))
	assert.Equal(t, []string{"-debug", "-vm", "java"}, args)

	opts = PeekOptions([]string{"-vmargs", "-console"})
	assert.False(t, opts.Flag(OptConsole))
}

func TestSplitVMArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		prog  []string
		vm    []string
		found bool
	}{
		{
			name: "no_marker",
			args: []string{"-data", "x"},
			prog: []string{"-data", "x"},
		},
		{
			name:  "marker",
			args:  []string{"-data", "x", "-vmargs", "-Xmx1g", "-Dfoo=bar"},
			prog:  []string{"-data", "x"},
			vm:    []string{"-Xmx1g", "-Dfoo=bar"},
			found: true,
		},
		{
			name:  "marker_last",
			args:  []string{"a", "-VMARGS"},
			prog:  []string{"a"},
			vm:    []string{},
			found: true,
		},
		{
			name:  "first_marker_splits",
			args:  []string{"-vmargs", "-vmargs", "x"},
			prog:  []string{},
			vm:    []string{"-vmargs", "x"},
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, vm, found := SplitVMArgs(tt.args)
			assert.Equal(t, tt.prog, prog)
			assert.Equal(t, tt.vm, vm)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestDefaultOfficialName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		program string
		want    string
	}{
		{program: "/opt/app/zaparoo", want: "Zaparoo"},
		{program: "/opt/app/zaparoo.exe", want: "Zaparoo"},
		{program: "/opt/app/Zaparoo.EXE", want: "Zaparoo"},
		{program: "eclipse", want: "Eclipse"},
		{program: "/opt/app/émile", want: "Émile"},
		{program: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultOfficialName(tt.program))
		})
	}
}
