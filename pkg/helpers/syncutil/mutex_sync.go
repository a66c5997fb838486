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

//go:build !deadlock

// Package syncutil swaps the launcher's locks for go-deadlock ones when the
// binary is built with -tags=deadlock.
package syncutil

import "sync"

// DeadlockEnabled reports whether locks are backed by the deadlock detector.
const DeadlockEnabled = false

// Mutex is a plain sync.Mutex in normal builds.
//
//nolint:gocritic // the embedded lock is the whole type
type Mutex struct {
	sync.Mutex //nolint:forbidigo // only place the std lock may be named
}

// RWMutex is a plain sync.RWMutex in normal builds.
//
//nolint:gocritic // the embedded lock is the whole type
type RWMutex struct {
	sync.RWMutex //nolint:forbidigo // only place the std lock may be named
}
