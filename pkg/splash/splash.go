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

// Package splash starts the external splash screen helper. The helper runs
// on its own and is never waited on.
package splash

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers/command"
	"github.com/rs/zerolog/log"
)

var ErrNoCommand = errors.New("no splash command configured")

type Starter struct {
	cmd     command.Executor
	command string
	args    []string
}

func NewStarter(cmd command.Executor, name string, args []string) *Starter {
	return &Starter{
		cmd:     cmd,
		command: name,
		args:    slices.Clone(args),
	}
}

// Show starts the splash helper, passing the -showsplash value on.
func (s *Starter) Show(ctx context.Context, timeout string) error {
	if s.command == "" {
		return ErrNoCommand
	}

	args := slices.Clone(s.args)
	if timeout != "" {
		args = append(args, "-showsplash", timeout)
	}

	log.Debug().Msgf("starting splash: %s %v", s.command, args)
	err := s.cmd.StartWithOptions(ctx, command.StartOptions{HideWindow: true}, s.command, args...)
	if err != nil {
		return fmt.Errorf("failed to start splash: %w", err)
	}
	return nil
}
