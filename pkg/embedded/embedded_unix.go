//go:build darwin || linux

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

package embedded

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/rs/zerolog/log"
)

type runFunc func(vmArgc int32, vmArgv unsafe.Pointer, progArgc int32, progArgv unsafe.Pointer, exitData uintptr) int32

var exitCallback = sync.OnceValue(func() uintptr {
	return purego.NewCallback(deliverExitData)
})

// Probe reports whether lib can be loaded and exports the entry point.
func (l *Loader) Probe(lib string) bool {
	handle, err := purego.Dlopen(lib, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		log.Debug().Err(err).Msgf("failed to open library: %s", lib)
		return false
	}
	defer func() {
		if err := purego.Dlclose(handle); err != nil {
			log.Debug().Err(err).Msgf("failed to close library: %s", lib)
		}
	}()

	if _, err := purego.Dlsym(handle, l.Symbol); err != nil {
		return false
	}
	return true
}

// Invoke loads lib and blocks in its entry point until the runtime returns.
// The library is left loaded, a runtime cannot be unloaded safely.
func (l *Loader) Invoke(ctx context.Context, lib string, vmArgs, progArgs []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, fmt.Errorf("invocation cancelled: %w", err)
	}

	handle, err := purego.Dlopen(lib, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return -1, fmt.Errorf("failed to load runtime library %s: %w", lib, err)
	}

	sym, err := purego.Dlsym(handle, l.Symbol)
	if err != nil {
		return -1, fmt.Errorf("runtime library %s has no %s symbol: %w", lib, l.Symbol, err)
	}

	var run runFunc
	purego.RegisterFunc(&run, sym)

	if l.ExitData != nil {
		exitSink.Store(&l.ExitData)
		defer exitSink.Store(nil)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	alloc, err := libcAllocator()
	if err != nil {
		return -1, err
	}
	vm, err := newCArgs(alloc, vmArgs)
	if err != nil {
		return -1, err
	}
	defer vm.release()
	prog, err := newCArgs(alloc, progArgs)
	if err != nil {
		return -1, err
	}
	defer prog.release()

	code := run(vm.argc(), vm.argv(), prog.argc(), prog.argv(), exitCallback())
	return int(code), nil
}

var libcAllocator = sync.OnceValues(func() (allocator, error) {
	name := "libc.so.6"
	if runtime.GOOS == "darwin" {
		name = "/usr/lib/libSystem.B.dylib"
	}
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return allocator{}, fmt.Errorf("failed to load %s: %w", name, err)
	}

	var alloc allocator
	purego.RegisterLibFunc(&alloc.malloc, handle, "malloc")
	purego.RegisterLibFunc(&alloc.free, handle, "free")
	return alloc, nil
})
