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

// Package embedded runs a runtime in-process by loading it as a shared
// library and calling its launch entry point. The entry point has the C
// signature:
//
//	int launcher_run(int vmArgc, char **vmArgv, int progArgc, char **progArgv,
//	                 void (*exitData)(const char *data));
//
// Both argument vectors are NULL terminated. The runtime may call exitData
// at any point before returning to hand back a payload.
package embedded

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/rs/zerolog/log"
)

// Loader invokes the entry point Symbol of a runtime library.
type Loader struct {
	// ExitData receives payloads passed to the exit data callback.
	ExitData func(data string) error
	Symbol   string
}

func NewLoader(symbol string, exitData func(string) error) *Loader {
	return &Loader{Symbol: symbol, ExitData: exitData}
}

// exitSink is the receiver of the single exit data callback. Callbacks are
// a limited resource so one is shared by every invocation.
var exitSink atomic.Pointer[func(string) error]

func deliverExitData(data *byte) uintptr {
	sink := exitSink.Load()
	if sink == nil {
		log.Warn().Msg("exit data received with no active invocation")
		return 0
	}
	if err := (*sink)(goString(data)); err != nil {
		log.Error().Err(err).Msg("failed to store exit data")
	}
	return 0
}

// allocator hands out memory the runtime may keep pointers into. Go memory
// must not be passed to foreign code as a pointer vector, so the real one is
// libc malloc and free.
type allocator struct {
	malloc func(size uintptr) unsafe.Pointer
	free   func(p unsafe.Pointer)
}

var errAlloc = errors.New("failed to allocate argument vector")

// cArgs is a NULL terminated C string vector in allocator memory. It must be
// released once the call using it has returned.
type cArgs struct {
	alloc allocator
	vec   unsafe.Pointer
	strs  []unsafe.Pointer
}

func newCArgs(alloc allocator, args []string) (*cArgs, error) {
	ptrSize := unsafe.Sizeof(uintptr(0))
	c := &cArgs{alloc: alloc, strs: make([]unsafe.Pointer, 0, len(args))}

	c.vec = alloc.malloc(uintptr(len(args)+1) * ptrSize)
	if c.vec == nil {
		return nil, errAlloc
	}
	for i, a := range args {
		p := alloc.malloc(uintptr(len(a) + 1))
		if p == nil {
			c.release()
			return nil, errAlloc
		}
		buf := unsafe.Slice((*byte)(p), len(a)+1)
		copy(buf, a)
		buf[len(a)] = 0
		c.strs = append(c.strs, p)
		*(*uintptr)(unsafe.Add(c.vec, uintptr(i)*ptrSize)) = uintptr(p)
	}
	*(*uintptr)(unsafe.Add(c.vec, uintptr(len(args))*ptrSize)) = 0
	return c, nil
}

// at returns the i-th entry of the vector, nil for the terminator.
func (c *cArgs) at(i int) *byte {
	return *(**byte)(unsafe.Add(c.vec, uintptr(i)*unsafe.Sizeof(uintptr(0))))
}

func (c *cArgs) argc() int32 {
	return int32(len(c.strs)) //nolint:gosec // argument counts are small
}

func (c *cArgs) argv() unsafe.Pointer {
	return c.vec
}

func (c *cArgs) release() {
	for _, p := range c.strs {
		c.alloc.free(p)
	}
	c.strs = nil
	if c.vec != nil {
		c.alloc.free(c.vec)
		c.vec = nil
	}
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
