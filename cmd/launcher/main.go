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


package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ZaparooProject/zaparoo-launcher/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/cli"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/display"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/embedded"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/exitdata"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/launcher"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/splash"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run())
}

// flushingReplacer sends pending error reports before the process image
// is replaced.
type flushingReplacer struct {
	platforms.ExecReplacer
}

func (r flushingReplacer) Replace(path string, argv []string) error {
	telemetry.Flush()
	//nolint:wrapcheck // error context added by the supervisor
	return r.ExecReplacer.Replace(path, argv)
}

func run() int {
	pl := platforms.NewDesktop()

	cfg, err := cli.Setup(pl, config.BaseDefaults, os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	fs := afero.NewOsFs()
	cmd := &command.RealExecutor{}
	symbol := cfg.LibrarySymbol()
	probe := embedded.NewLoader(symbol, nil)
	splashName, splashArgs := cfg.SplashCommand()

	app := &launcher.App{
		Fs:       fs,
		Platform: pl,
		Finder: platforms.NewPathFinder(
			pl.Defaults().WithLibraryNames(cfg.LibraryNames()),
			probe.Probe,
		),
		Runner:   cmd,
		Replacer: flushingReplacer{},
		Splash:   splash.NewStarter(cmd, splashName, splashArgs),
		Clock:    clockwork.NewRealClock(),
		Config:   cfg,
		ExitData: exitdata.NewFileStore(fs, cfg.ExitDataDir(pl.Settings().TempDir)),
		NewInvoker: func(sink func(string) error) launcher.Invoker {
			return embedded.NewLoader(symbol, sink)
		},
		NewDisplay: func(console bool) launcher.Displayer {
			return display.New(console)
		},
	}

	// not cancelled on signals: the runtime's exit code ends the run, and
	// termination signals are relayed to a runtime child
	code := app.Run(context.Background(), os.Args)
	log.Info().Int("code", code).Msg("launcher exiting")
	return code
}
