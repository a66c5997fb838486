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
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAllocator backs allocations with Go memory it keeps reachable and
// records what was freed.
type testAllocator struct {
	blocks map[unsafe.Pointer][]byte
	freed  []unsafe.Pointer
	failAt int
	calls  int
}

func newTestAllocator() *testAllocator {
	return &testAllocator{blocks: make(map[unsafe.Pointer][]byte), failAt: -1}
}

func (a *testAllocator) allocator() allocator {
	return allocator{
		malloc: func(size uintptr) unsafe.Pointer {
			a.calls++
			if a.calls-1 == a.failAt {
				return nil
			}
			buf := make([]byte, size)
			p := unsafe.Pointer(&buf[0])
			a.blocks[p] = buf
			return p
		},
		free: func(p unsafe.Pointer) {
			a.freed = append(a.freed, p)
		},
	}
}

func TestCArgs(t *testing.T) {
	t.Parallel()

	alloc := newTestAllocator()
	c, err := newCArgs(alloc.allocator(), []string{"-Xmx1g", "", "-Djava.class.path=/opt/app/startup.jar"})
	require.NoError(t, err)

	assert.Equal(t, int32(3), c.argc())
	assert.Equal(t, "-Xmx1g", goString(c.at(0)))
	assert.Empty(t, goString(c.at(1)))
	assert.Equal(t, "-Djava.class.path=/opt/app/startup.jar", goString(c.at(2)))
	assert.Nil(t, c.at(3), "vector must be NULL terminated")
	assert.Equal(t, c.vec, c.argv())

	// vector plus one block per argument, all allocator owned
	assert.Len(t, alloc.blocks, 4)

	c.release()
	assert.Len(t, alloc.freed, 4)
	assert.Nil(t, c.argv())
}

func TestCArgs_Empty(t *testing.T) {
	t.Parallel()

	alloc := newTestAllocator()
	c, err := newCArgs(alloc.allocator(), nil)
	require.NoError(t, err)

	assert.Equal(t, int32(0), c.argc())
	assert.Nil(t, c.at(0))
	c.release()
	assert.Len(t, alloc.freed, 1)
}

func TestCArgs_AllocationFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		failAt    int
		wantFreed int
	}{
		{name: "vector", failAt: 0, wantFreed: 0},
		{name: "second_string", failAt: 2, wantFreed: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			alloc := newTestAllocator()
			alloc.failAt = tt.failAt
			c, err := newCArgs(alloc.allocator(), []string{"-a", "-b", "-c"})

			require.ErrorIs(t, err, errAlloc)
			assert.Nil(t, c)
			assert.Len(t, alloc.freed, tt.wantFreed)
		})
	}
}

func TestGoString_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, goString(nil))
}

//nolint:paralleltest // modifies the shared exit data sink
func TestDeliverExitData(t *testing.T) {
	var got string
	sink := func(data string) error {
		got = data
		return nil
	}
	exitSink.Store(&sink)
	t.Cleanup(func() { exitSink.Store(nil) })

	payload := []byte("-data\n/tmp/x\x00")
	assert.Equal(t, uintptr(0), deliverExitData(&payload[0]))
	assert.Equal(t, "-data\n/tmp/x", got)

	failing := func(string) error { return errors.New("too large") }
	exitSink.Store(&failing)
	assert.Equal(t, uintptr(0), deliverExitData(&payload[0]))

	exitSink.Store(nil)
	assert.Equal(t, uintptr(0), deliverExitData(&payload[0]))
}

func TestNewLoader(t *testing.T) {
	t.Parallel()

	l := NewLoader("launcher_run", nil)
	assert.Equal(t, "launcher_run", l.Symbol)
	assert.Nil(t, l.ExitData)
}
