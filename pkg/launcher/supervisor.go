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
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/exitdata"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var errEmptyCommand = errors.New("empty runtime command")

// Exit codes with a meaning to the launcher. Any other code is a failure.
const (
	ExitNormal             = 0
	ExitRestartSame        = 23
	ExitRestartWithPayload = 24
)

type OutcomeKind int

const (
	OutcomeNormal OutcomeKind = iota
	OutcomeRestartSame
	OutcomeRestartWithPayload
	OutcomeFailure
)

// Outcome is one runtime exit. Payload is only read for restarts with a
// payload and for failures.
type Outcome struct {
	Payload []byte
	Kind    OutcomeKind
	Code    int
}

func classify(code int) OutcomeKind {
	switch code {
	case ExitNormal:
		return OutcomeNormal
	case ExitRestartSame:
		return OutcomeRestartSame
	case ExitRestartWithPayload:
		return OutcomeRestartWithPayload
	default:
		return OutcomeFailure
	}
}

// Invoker runs a runtime library in-process.
type Invoker interface {
	Invoke(ctx context.Context, lib string, vmArgs, progArgs []string) (int, error)
}

// Runner runs a runtime as a child process.
type Runner interface {
	RunExitCode(ctx context.Context, name string, args ...string) (int, error)
}

// Replacer replaces the current process with a new program. It does not
// return on success.
type Replacer interface {
	Replace(path string, argv []string) error
}

type Displayer interface {
	Display(title, body string)
}

type Splasher interface {
	Show(ctx context.Context, timeout string) error
}

// Supervisor runs the runtime and acts on its exit code until the run is
// over or the launcher has to replace itself.
type Supervisor struct {
	Invoker  Invoker
	Runner   Runner
	Replacer Replacer
	Display  Displayer
	// Channel is the exit data side channel, nil when none could be set up.
	Channel exitdata.Channel
	Clock   clockwork.Clock
	Program string
	Name    string
	// Argv is the launcher's argv as first received, used to restart it
	// unchanged.
	Argv    []string
	Runtime Runtime
	Debug   bool
}

// Run launches cmd and keeps relaunching it as the exit codes ask. It
// returns 0 once the run is over. An error is only returned when the
// launcher failed to replace itself.
func (s *Supervisor) Run(ctx context.Context, cmd *Command) (int, error) {
	embedded := s.Runtime.Mode == ModeEmbedded

	var argv []string
	if !embedded {
		argv = cmd.ExecArgv(s.Runtime.Executable)
	}

	for iteration := 1; ; iteration++ {
		code := s.launch(ctx, cmd, argv, iteration)
		outcome := Outcome{Kind: classify(code), Code: code}

		switch outcome.Kind {
		case OutcomeNormal:
			return 0, nil
		case OutcomeRestartSame:
			if embedded {
				return s.replace(s.Argv)
			}
			log.Info().Msg("runtime requested restart")
		case OutcomeRestartWithPayload:
			outcome.Payload = s.readExitData()
			if len(outcome.Payload) == 0 {
				s.noExitData()
				return 0, nil
			}
			args := ParseArgList(string(outcome.Payload))
			if embedded {
				return s.replace(RelaunchCommand(s.Program, args, cmd.RequiredMarkers()))
			}
			log.Info().Msg("runtime requested restart with new arguments")
			argv = args
		default:
			outcome.Payload = s.readExitData()
			title, body := s.failureMessage(outcome, cmd, argv)
			s.Display.Display(title, body)
			return 0, nil
		}
	}
}

func (s *Supervisor) launch(ctx context.Context, cmd *Command, argv []string, iteration int) int {
	start := s.Clock.Now()

	var code int
	var err error
	if s.Runtime.Mode == ModeEmbedded {
		log.Debug().Msgf(startMsg, FormatCommand(nil, cmd.VMArgs, cmd.ProgArgs))
		code, err = s.Invoker.Invoke(ctx, s.Runtime.Library, cmd.VMArgs, cmd.ProgArgs)
	} else {
		log.Debug().Msgf(startMsg, FormatCommand(argv, nil, nil))
		if len(argv) == 0 {
			err = errEmptyCommand
		} else {
			code, err = s.Runner.RunExitCode(ctx, argv[0], argv[1:]...)
		}
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to launch runtime")
		code = -1
	}

	log.Info().
		Int("iteration", iteration).
		Int("code", code).
		Dur("duration", s.Clock.Since(start)).
		Msg("runtime exited")
	return code
}

func (s *Supervisor) readExitData() []byte {
	if s.Channel == nil {
		return nil
	}
	data, err := s.Channel.Read()
	if err != nil {
		log.Warn().Err(err).Msg("failed to read exit data")
		return nil
	}
	return data
}

func (s *Supervisor) noExitData() {
	log.Debug().Msg(noExitDataMsg)
	if s.Debug {
		s.Display.Display(s.Name, noExitDataMsg)
	}
}

func (s *Supervisor) failureMessage(o Outcome, cmd *Command, argv []string) (title, body string) {
	if len(o.Payload) > 0 {
		payload := string(o.Payload)
		if t, b, ok := splitTitle(payload); ok {
			return t, b
		}
		return s.Name, payload
	}

	s.noExitData()
	return s.Name, fmt.Sprintf(exitMsg, o.Code, FormatCommand(argv, cmd.VMArgs, cmd.ProgArgs))
}

func (s *Supervisor) replace(argv []string) (int, error) {
	log.Info().Strs("argv", argv).Msg("relaunching launcher")
	if err := s.Replacer.Replace(s.Program, argv); err != nil {
		return 1, fmt.Errorf("failed to relaunch %s: %w", s.Program, err)
	}
	return 0, nil
}
