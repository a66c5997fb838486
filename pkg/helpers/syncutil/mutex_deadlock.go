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

//go:build deadlock

// Package syncutil swaps the launcher's locks for go-deadlock ones when the
// binary is built with -tags=deadlock.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether locks are backed by the deadlock detector.
const DeadlockEnabled = true

func init() {
	// The supervisor holds no lock while a runtime runs, so anything held
	// this long is a real stall.
	deadlock.Opts.DeadlockTimeout = 10 * time.Second
}

// Mutex reports lock waits longer than DeadlockTimeout.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex reports lock waits longer than DeadlockTimeout.
type RWMutex struct {
	deadlock.RWMutex
}
