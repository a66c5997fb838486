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

// Package command runs the launched runtime and helper processes through an
// interface so the supervisor can be tested without spawning anything.
package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// StartOptions configures command startup behavior.
type StartOptions struct {
	// HideWindow prevents a console window from appearing (Windows-only).
	HideWindow bool
}

// Executor provides an abstraction over exec.Command for testability.
type Executor interface {
	// RunExitCode runs a command with the launcher's stdio attached and
	// blocks until it exits. A non-zero exit status is not an error: it is
	// returned as the exit code. The error is only set when the command
	// could not be started or waited on, in which case the code is -1.
	RunExitCode(ctx context.Context, name string, args ...string) (int, error)

	// StartWithOptions starts a command without waiting for it to complete.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor uses actual exec.Command to execute system commands.
type RealExecutor struct{}

// RunExitCode ignores ctx once the command has started. The runtime decides
// when the run ends, so it is never killed on cancellation. Termination
// signals sent to the launcher are relayed to it instead.
func (*RealExecutor) RunExitCode(_ context.Context, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...) //nolint:noctx // must outlive the launcher's context
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", name, err)
	}
	stop := relaySignals(cmd.Process)
	err := cmd.Wait()
	stop()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to wait for %s: %w", name, err)
}

// relaySignals catches caughtSignals while p runs so the launcher is not
// killed before its child, and forwards the relayedSignals to p. Signals
// from the terminal already reach the whole process group and are dropped.
func relaySignals(p *os.Process) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, caughtSignals...)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case sig := <-sigs:
				if !slices.Contains(relayedSignals, sig) {
					continue
				}
				log.Info().Str("signal", sig.String()).Msg("relaying signal to runtime")
				if err := p.Signal(sig); err != nil {
					log.Warn().Err(err).Msg("failed to relay signal")
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
		wg.Wait()
	}
}
