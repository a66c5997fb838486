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
	"strconv"
	"testing"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testStartupCfg = config.Startup{
	Default:   "startup.jar",
	SearchDir: "plugins",
	Prefix:    "org.eclipse.equinox.launcher",
}

func TestFindStartup_NewestInSearchDir(t *testing.T) {
	t.Parallel()

	h, err := helpers.SetupInstall()
	require.NoError(t, err)

	programDir := filepath.FromSlash("/opt/app/")
	got, err := FindStartup(h.Fs, programDir, "", testStartupCfg)
	require.NoError(t, err)

	assert.Equal(t, filepath.FromSlash("/opt/app/plugins/org.eclipse.equinox.launcher_1.10.0.jar"), got)
}

func TestFindStartup_Arg(t *testing.T) {
	t.Parallel()

	h, err := helpers.SetupInstall()
	require.NoError(t, err)
	require.NoError(t, h.CreateDirectoryStructure(map[string]any{
		filepath.FromSlash("/opt/app/custom.jar"): "jar",
		filepath.FromSlash("/srv/shared.jar"):     "jar",
	}))
	programDir := filepath.FromSlash("/opt/app/")

	got, err := FindStartup(h.Fs, programDir, "custom.jar", testStartupCfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/opt/app/custom.jar"), got)

	got, err = FindStartup(h.Fs, programDir, filepath.FromSlash("/srv/shared.jar"), testStartupCfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/srv/shared.jar"), got)

	_, err = FindStartup(h.Fs, programDir, "missing.jar", testStartupCfg)
	require.ErrorIs(t, err, ErrNoStartup)
}

func TestFindStartup_Default(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure(map[string]any{
		filepath.FromSlash("/opt/app/startup.jar"): "jar",
	}))

	got, err := FindStartup(h.Fs, filepath.FromSlash("/opt/app/"), "", testStartupCfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/opt/app/startup.jar"), got)
}

func TestFindStartup_NotFound(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()

	_, err := FindStartup(h.Fs, filepath.FromSlash("/opt/app/"), "", testStartupCfg)
	require.ErrorIs(t, err, ErrNoStartup)

	_, err = FindStartup(h.Fs, filepath.FromSlash("/opt/app/"), "", config.Startup{})
	require.ErrorIs(t, err, ErrNoStartup)
}

func TestFindStartup_IgnoresDirectories(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure(map[string]any{
		filepath.FromSlash("/opt/app/plugins/org.eclipse.equinox.launcher_9.0.0.jar"): nil,
		filepath.FromSlash("/opt/app/plugins/org.eclipse.equinox.launcher_1.0.0.jar"): "jar",
	}))

	got, err := FindStartup(h.Fs, filepath.FromSlash("/opt/app/"), "", testStartupCfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/opt/app/plugins/org.eclipse.equinox.launcher_1.0.0.jar"), got)
}

func TestParseArtifactVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "1.6.0", want: "1.6.0"},
		{in: "1.6.0.v20200915-1508", want: "1.6.0"},
		{in: "2.1", want: "2.1.0"},
		{in: "snapshot", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			v := parseArtifactVersion(tt.in)
			if tt.want == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestArtifactNewer(t *testing.T) {
	t.Parallel()

	v1 := parseArtifactVersion("1.9.0")
	v2 := parseArtifactVersion("1.10.0")

	assert.True(t, artifact{name: "b", version: v2}.newer(artifact{name: "a", version: v1}))
	assert.False(t, artifact{name: "a", version: v1}.newer(artifact{name: "b", version: v2}))
	assert.True(t, artifact{name: "a", version: v1}.newer(artifact{name: "z"}))
	assert.False(t, artifact{name: "z"}.newer(artifact{name: "a", version: v1}))
	assert.True(t, artifact{name: "b"}.newer(artifact{name: "a"}))
	assert.True(t, artifact{name: "x_1.0.0.b", version: v1}.newer(artifact{name: "x_1.0.0.a", version: v1}))
}

// TestPropertyNewestArtifactIsMaximum verifies the chosen artifact has the
// highest version of all candidates.
func TestPropertyNewestArtifactIsMaximum(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		h := helpers.NewMemoryFS()

		structure := make(map[string]any)
		var best artifact
		for i := range n {
			major := rapid.IntRange(0, 20).Draw(t, "major")
			minor := rapid.IntRange(0, 20).Draw(t, "minor")
			name := "org.eclipse.equinox.launcher_" + strconv.Itoa(major) + "." + strconv.Itoa(minor) + ".0.jar"
			structure[filepath.Join(filepath.FromSlash("/opt/app/plugins"), name)] = "jar"
			candidate := artifact{name: name, version: parseArtifactVersion(strconv.Itoa(major) + "." + strconv.Itoa(minor) + ".0")}
			if i == 0 || candidate.newer(best) {
				best = candidate
			}
		}
		if err := h.CreateDirectoryStructure(structure); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := FindStartup(h.Fs, filepath.FromSlash("/opt/app/"), "", testStartupCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Base(got) != best.name {
			t.Fatalf("expected %s, got %s", best.name, filepath.Base(got))
		}
	})
}
