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
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(s string) string {
	return filepath.FromSlash(s)
}

func newTestFinder(t *testing.T, files map[string]uint32) *PathFinder {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, perm := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(p(name)), 0o755))
		require.NoError(t, afero.WriteFile(fs, p(name), []byte("x"), 0))
		require.NoError(t, fs.Chmod(p(name), fileMode(perm)))
	}
	return &PathFinder{
		Fs:           fs,
		Path:         []string{p("/usr/local/bin"), "", p("/usr/bin")},
		LibraryNames: []string{"libjvm.so"},
	}
}

func TestPathFinder_FindCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		files  map[string]uint32
		name   string
		lookup string
		want   string
		found  bool
	}{
		{
			name:   "bare_name_on_path",
			files:  map[string]uint32{"/usr/bin/java": 0o755},
			lookup: "java",
			want:   "/usr/bin/java",
			found:  true,
		},
		{
			name: "first_path_entry_wins",
			files: map[string]uint32{
				"/usr/local/bin/java": 0o755,
				"/usr/bin/java":       0o755,
			},
			lookup: "java",
			want:   "/usr/local/bin/java",
			found:  true,
		},
		{
			name: "skips_non_executable",
			files: map[string]uint32{
				"/usr/local/bin/java": 0o644,
				"/usr/bin/java":       0o755,
			},
			lookup: "java",
			want:   "/usr/bin/java",
			found:  true,
		},
		{
			name:   "absolute_path_checked_directly",
			files:  map[string]uint32{"/opt/app/jre/bin/java": 0o755},
			lookup: "/opt/app/jre/bin/java",
			want:   "/opt/app/jre/bin/java",
			found:  true,
		},
		{
			name:   "absolute_path_not_searched_on_path",
			files:  map[string]uint32{"/usr/bin/java": 0o755},
			lookup: "/opt/app/jre/bin/java",
			found:  false,
		},
		{
			name:   "missing",
			files:  map[string]uint32{},
			lookup: "java",
			found:  false,
		},
		{
			name:   "empty_name",
			files:  map[string]uint32{"/usr/bin/java": 0o755},
			lookup: "",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newTestFinder(t, tt.files)
			got, ok := f.FindCommand(p(tt.lookup))

			assert.Equal(t, tt.found, ok)
			if tt.found {
				want, err := filepath.Abs(p(tt.want))
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestPathFinder_FindCommandWindowsSuffix(t *testing.T) {
	t.Parallel()

	f := newTestFinder(t, map[string]uint32{"/usr/bin/javaw.exe": 0o644})
	f.Windows = true

	got, ok := f.FindCommand("javaw")
	require.True(t, ok)
	assert.Equal(t, "javaw.exe", filepath.Base(got))
}

func TestPathFinder_FindVMLibrary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		files map[string]uint32
		name  string
		path  string
		want  string
		found bool
	}{
		{
			name:  "server_library_next_to_bin",
			files: map[string]uint32{"/opt/jre/lib/server/libjvm.so": 0o644},
			path:  "/opt/jre/bin/java",
			want:  "/opt/jre/lib/server/libjvm.so",
			found: true,
		},
		{
			name: "server_preferred_over_client",
			files: map[string]uint32{
				"/opt/jre/lib/server/libjvm.so": 0o644,
				"/opt/jre/lib/client/libjvm.so": 0o644,
			},
			path:  "/opt/jre/bin/java",
			want:  "/opt/jre/lib/server/libjvm.so",
			found: true,
		},
		{
			name:  "jdk_nested_jre",
			files: map[string]uint32{"/opt/jdk/jre/lib/server/libjvm.so": 0o644},
			path:  "/opt/jdk/bin/java",
			want:  "/opt/jdk/jre/lib/server/libjvm.so",
			found: true,
		},
		{
			name:  "path_is_library",
			files: map[string]uint32{"/opt/rt/libruntime.so": 0o644},
			path:  "/opt/rt/libruntime.so",
			want:  "/opt/rt/libruntime.so",
			found: true,
		},
		{
			name:  "missing_library",
			files: map[string]uint32{"/opt/jre/bin/java": 0o755},
			path:  "/opt/jre/bin/java",
			found: false,
		},
		{
			name:  "empty_path",
			files: map[string]uint32{},
			path:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newTestFinder(t, tt.files)
			got, ok := f.FindVMLibrary(p(tt.path))

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, p(tt.want), got)
		})
	}
}

func TestPathFinder_ProbeRejectsLibrary(t *testing.T) {
	t.Parallel()

	f := newTestFinder(t, map[string]uint32{"/opt/jre/lib/server/libjvm.so": 0o644})

	var probed []string
	f.Probe = func(path string) bool {
		probed = append(probed, path)
		return false
	}

	_, ok := f.FindVMLibrary(p("/opt/jre/bin/java"))
	assert.False(t, ok)
	assert.Equal(t, []string{p("/opt/jre/lib/server/libjvm.so")}, probed)
}
