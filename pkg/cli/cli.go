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


// Package cli prepares the process environment before a launch: working
// directories, logging, user config and error reporting.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-launcher/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/launcher"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/platforms"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var errEmptyCommandLine = errors.New("empty command line")

// LogWriters returns the extra log writers for a launch of program with
// args. Logs are echoed to stderr when a console or debug output was asked
// for, on the command line or in the program's argument file.
func LogWriters(fs afero.Fs, program string, args []string, stderr io.Writer) []io.Writer {
	// logging is not up yet, an unreadable file is reported later by the
	// launch itself
	fileArgs, _ := launcher.ReadArgFile(fs, launcher.ArgFilePath(program))
	opts := launcher.PeekOptions(launcher.MergeArgs(fileArgs, args))
	if opts.Flag(launcher.OptConsole) || opts.Flag(launcher.OptDebug) {
		return []io.Writer{stderr}
	}
	return nil
}

// Setup initializes logging and loads the user config. argv is the full
// command line, program name included.
//
//nolint:gocritic // config struct copied for immutability
func Setup(pl platforms.Platform, defaultConfig config.Values, argv []string) (*config.Instance, error) {
	if len(argv) == 0 {
		return nil, errEmptyCommandLine
	}
	program, args := helpers.ProgramPath(argv[0]), argv[1:]

	if err := helpers.EnsureDirectories(pl); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(pl, LogWriters(afero.NewOsFs(), program, args, os.Stderr)); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(pl.Settings().ConfigDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	reporting, dsn := cfg.ErrorReporting()
	if err := telemetry.Init(telemetry.Options{
		Enabled:  reporting,
		DSN:      dsn,
		Release:  config.AppVersion,
		Platform: pl.ID(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("platform", pl.ID()).
		Str("program", program).
		Strs("args", args).
		Msg("launcher starting")

	return cfg, nil
}
