//go:build windows

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

package command

import (
	"context"
	"fmt"
	"os/exec"
	"syscall"
)

// StartWithOptions starts a detached helper, optionally without flashing a
// console window, and reaps it in the background once it exits.
func (*RealExecutor) StartWithOptions(
	_ context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	cmd := exec.Command(name, args...) //nolint:noctx // fire-and-forget helper
	if opts.HideWindow {
		cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
