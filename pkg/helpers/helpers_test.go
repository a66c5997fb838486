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

package helpers

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/testing/mocks"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupDirs bool
	}{
		{name: "creates both directories", setupDirs: false},
		{name: "works when directories already exist", setupDirs: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			testRoot := t.TempDir()
			tempDir := filepath.Join(testRoot, "temp", "nested")
			logDir := filepath.Join(testRoot, "logs", "nested")

			if tt.setupDirs {
				require.NoError(t, os.MkdirAll(tempDir, 0o750))
				require.NoError(t, os.MkdirAll(logDir, 0o750))
			}

			platform := mocks.NewMockPlatform()
			platform.On("Settings").Return(platforms.Settings{
				TempDir: tempDir,
				LogDir:  logDir,
			})

			require.NoError(t, EnsureDirectories(platform))

			tempInfo, err := os.Stat(tempDir)
			require.NoError(t, err, "TempDir should exist")
			assert.True(t, tempInfo.IsDir())

			logInfo, err := os.Stat(logDir)
			require.NoError(t, err, "LogDir should exist")
			assert.True(t, logInfo.IsDir())

			if runtime.GOOS != "windows" && !tt.setupDirs {
				assert.Equal(t, os.FileMode(0o750), tempInfo.Mode().Perm())
				assert.Equal(t, os.FileMode(0o750), logInfo.Mode().Perm())
			}
		})
	}
}

func TestEnsureDirectoriesErrorHandling(t *testing.T) {
	t.Parallel()

	t.Run("fails when temp dir path is invalid", func(t *testing.T) {
		t.Parallel()

		platform := mocks.NewMockPlatform()
		platform.On("Settings").Return(platforms.Settings{
			TempDir: "/proc/invalid\x00path",
			LogDir:  t.TempDir(),
		})

		err := EnsureDirectories(platform)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create temp directory")
	})

	t.Run("fails when log dir path is invalid", func(t *testing.T) {
		t.Parallel()

		platform := mocks.NewMockPlatform()
		platform.On("Settings").Return(platforms.Settings{
			TempDir: t.TempDir(),
			LogDir:  "/proc/invalid\x00path",
		})

		err := EnsureDirectories(platform)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}

type testWriter struct {
	data []byte
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestInitLogging(t *testing.T) {
	// not parallel: InitLogging replaces the global logger
	logDir := filepath.Join(t.TempDir(), "logs")

	platform := mocks.NewMockPlatform()
	platform.On("Settings").Return(platforms.Settings{LogDir: logDir})

	extra := &testWriter{}
	require.NoError(t, InitLogging(platform, []io.Writer{extra}))

	log.Info().Msg("launcher logging ready")

	assert.Contains(t, string(extra.data), "launcher logging ready")
	assert.FileExists(t, filepath.Join(logDir, "launcher.log"))
	assert.NotNil(t, LogWriter())
}

func TestProgramDir(t *testing.T) {
	t.Parallel()

	sep := string(filepath.Separator)

	tests := []struct {
		name    string
		program string
		want    string
	}{
		{name: "absolute", program: sep + "opt" + sep + "app" + sep + "launcher", want: sep + "opt" + sep + "app" + sep},
		{name: "root", program: sep + "launcher", want: sep},
		{name: "no_directory", program: "launcher", want: ""},
		{name: "empty", program: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ProgramDir(tt.program))
		})
	}
}

func TestProgramPath(t *testing.T) {
	t.Parallel()

	rel := filepath.Join("bin", "launcher")
	got := ProgramPath(rel)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, rel, got[len(got)-len(rel):])

	// bare names cannot be resolved relative to the working directory
	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, exe, ProgramPath("launcher"))
}
