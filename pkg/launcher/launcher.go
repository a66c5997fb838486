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

// Package launcher decides which runtime to start and how, runs it, and
// acts on its exit code: finishing, restarting it, or reporting a failure.
package launcher

import (
	"context"
	"errors"
	"strings"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/exitdata"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-launcher/pkg/platforms"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// App holds the collaborators of a launcher run.
type App struct {
	Fs       afero.Fs
	Platform platforms.Platform
	Finder   Finder
	Runner   Runner
	Replacer Replacer
	Splash   Splasher
	Clock    clockwork.Clock
	Config   *config.Instance
	ExitData *exitdata.FileStore
	// NewInvoker returns the in-process invoker, which hands exit data
	// from the runtime to sink.
	NewInvoker func(sink func(string) error) Invoker
	// NewDisplay returns where messages go. console is set when a console
	// or debug output was requested.
	NewDisplay func(console bool) Displayer
	// Program overrides the launcher path derived from argv[0].
	Program string
}

// session is the state of one Run, built from the command line.
type session struct {
	display   Displayer
	opts      ResolvedOptions
	program   string
	name      string
	argv      []string
	userArgs  []string
	vmArgs    []string
	hasVMArgs bool
	debug     bool
}

// Run performs one launcher invocation and returns the process exit status.
func (a *App) Run(ctx context.Context, argv []string) int {
	if len(argv) == 0 {
		log.Error().Msg("launcher started with an empty argv")
		return 1
	}

	program := a.Program
	if program == "" {
		program = helpers.ProgramPath(argv[0])
	}
	args := argv[1:]

	if id, data, ok := exitDataWrite(args); ok {
		return a.writeExitData(id, data)
	}

	fileArgs, err := ReadArgFile(a.Fs, ArgFilePath(program))
	if err != nil {
		log.Warn().Err(err).Msg("ignoring argument file")
	}
	progArgs, vmArgs, hasVMArgs := SplitVMArgs(MergeArgs(fileArgs, args))
	userArgs, opts := Resolve(progArgs, DefaultOptions)

	s := &session{
		argv:      argv,
		program:   program,
		opts:      opts,
		userArgs:  userArgs,
		vmArgs:    vmArgs,
		hasVMArgs: hasVMArgs,
		debug:     opts.Flag(OptDebug) || a.Config.DebugLogging(),
		display:   a.NewDisplay(opts.Flag(OptConsole) || opts.Flag(OptDebug)),
	}
	if s.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if name, ok := opts.Value(OptName); ok && name != "" {
		s.name = name
	} else {
		s.name = DefaultOfficialName(program)
	}

	code, err := a.launch(ctx, s)
	if err != nil {
		log.Error().Err(err).Msg("launch failed")
		var fatal *FatalError
		if errors.As(err, &fatal) {
			s.display.Display(s.name, fatal.Message(s.name))
		} else {
			s.display.Display(s.name, err.Error())
		}
		return 1
	}
	return code
}

func (a *App) launch(ctx context.Context, s *session) (int, error) {
	programDir := helpers.ProgramDir(s.program)
	if programDir == "" {
		return 1, &FatalError{Kind: ErrNoHome}
	}

	defaults := a.Platform.Defaults()
	explicit, _ := s.opts.Value(OptVM)
	rt, err := Discover(a.Finder, DiscoveryRequest{
		Explicit:    explicit,
		ProgramDir:  programDir,
		ShippedDir:  a.Config.ShippedRuntimeDir(),
		DefaultName: a.Config.RuntimeName(defaults.RuntimeName),
	})
	if err != nil {
		return 1, err
	}

	startupArg, _ := s.opts.Value(OptStartup)
	startup, err := FindStartup(a.Fs, programDir, startupArg, a.Config.Startup())
	if err != nil {
		return 1, err
	}
	log.Info().Str("startup", startup).Msg("found startup artifact")

	// the program is always told to show its splash unless -nosplash was
	// given, the splash process itself needs a -showsplash value
	showSplash := !s.opts.Flag(OptNoSplash)
	splashArg, hasSplash := s.opts.Value(OptShowSplash)
	if showSplash && hasSplash && rt.Mode == ModeEmbedded && a.Splash != nil {
		if err := a.Splash.Show(ctx, splashArg); err != nil {
			log.Warn().Err(err).Msg("failed to show splash")
		}
	}

	clock := a.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	sup := &Supervisor{
		Runner:   a.Runner,
		Replacer: a.Replacer,
		Display:  s.display,
		Clock:    clock,
		Program:  s.program,
		Name:     s.name,
		Argv:     s.argv,
		Runtime:  rt,
		Debug:    s.debug,
	}

	var exitDataID string
	switch {
	case rt.Mode == ModeEmbedded:
		mem := exitdata.NewMemory()
		sup.Channel = mem
		sup.Invoker = a.NewInvoker(mem.Set)
	case a.ExitData != nil:
		ch, err := a.ExitData.Create()
		if err != nil {
			log.Warn().Err(err).Msg("continuing without exit data")
			if s.debug {
				s.display.Display(s.name, noExitDataMsg)
			}
			break
		}
		defer func() {
			if err := ch.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close exit data channel")
			}
		}()
		sup.Channel = ch
		exitDataID = ch.ID()
	}

	cmd := Assemble(AssembleParams{
		Runtime:       rt,
		Program:       s.program,
		Name:          s.name,
		OS:            valueOr(s.opts, OptOS, defaults.OS),
		WS:            valueOr(s.opts, OptWS, defaults.WS),
		Arch:          valueOr(s.opts, OptArch, defaults.Arch),
		Library:       valueOr(s.opts, OptLibrary, ""),
		Startup:       startup,
		ExitDataID:    exitDataID,
		UserArgs:      s.userArgs,
		UserVMArgs:    s.vmArgs,
		HasUserVMArgs: s.hasVMArgs,
		DefaultVMArgs: a.Config.DefaultRuntimeArgs(defaults.RuntimeArgs),
		ShowSplash:    showSplash,
	})

	return sup.Run(ctx, cmd)
}

func valueOr(opts ResolvedOptions, key, fallback string) string {
	if v, ok := opts.Value(key); ok {
		return v
	}
	return fallback
}

// exitDataWrite detects a writer invocation, which ends with
// -exitdata <id> <data>.
func exitDataWrite(args []string) (id, data string, ok bool) {
	n := len(args)
	if n < 3 || !strings.EqualFold(args[n-3], ArgExitData) {
		return "", "", false
	}
	return args[n-2], args[n-1], true
}

func (a *App) writeExitData(id, data string) int {
	if a.ExitData == nil {
		log.Error().Msg("no exit data store configured")
		return 1
	}
	if err := a.ExitData.Write(id, []byte(data)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to write exit data")
		return 1
	}
	log.Debug().Str("id", id).Int("size", len(data)).Msg("wrote exit data")
	return 0
}
