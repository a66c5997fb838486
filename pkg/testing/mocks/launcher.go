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

package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockFinder is a testify mock for the runtime path search.
type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindCommand(name string) (string, bool) {
	args := m.Called(name)
	return args.String(0), args.Bool(1)
}

func (m *MockFinder) FindVMLibrary(path string) (string, bool) {
	args := m.Called(path)
	return args.String(0), args.Bool(1)
}

// MockInvoker is a testify mock for an in-process runtime invocation.
type MockInvoker struct {
	mock.Mock
}

func (m *MockInvoker) Invoke(ctx context.Context, lib string, vmArgs, progArgs []string) (int, error) {
	args := m.Called(ctx, lib, vmArgs, progArgs)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Int(0), args.Error(1)
}

// MockReplacer is a testify mock for process self-replacement.
type MockReplacer struct {
	mock.Mock
}

func (m *MockReplacer) Replace(path string, argv []string) error {
	args := m.Called(path, argv)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

// MockSplasher is a testify mock for the splash starter.
type MockSplasher struct {
	mock.Mock
}

func (m *MockSplasher) Show(ctx context.Context, timeout string) error {
	args := m.Called(ctx, timeout)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.Error(0)
}

// Message is a message recorded by a RecordingDisplayer.
type Message struct {
	Title string
	Body  string
}

// RecordingDisplayer records every displayed message for later assertions.
type RecordingDisplayer struct {
	messages []Message
	mu       sync.Mutex
}

func (d *RecordingDisplayer) Display(title, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, Message{Title: title, Body: body})
}

// Messages returns a copy of the recorded messages.
func (d *RecordingDisplayer) Messages() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Message, len(d.messages))
	copy(out, d.messages)
	return out
}

// ScriptedChannel is an exit data channel returning queued payloads in
// order, one per Read, and counting how often it was read.
type ScriptedChannel struct {
	ChannelID string
	Payloads  []string
	reads     int
	closed    bool
	mu        sync.Mutex
}

func (c *ScriptedChannel) ID() string {
	return c.ChannelID
}

func (c *ScriptedChannel) Read() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	if len(c.Payloads) == 0 {
		return nil, nil
	}
	p := c.Payloads[0]
	c.Payloads = c.Payloads[1:]
	return []byte(p), nil
}

func (c *ScriptedChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Reads returns how many times Read was called.
func (c *ScriptedChannel) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Closed reports whether Close was called.
func (c *ScriptedChannel) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
