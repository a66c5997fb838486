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

// Package exitdata implements the side channel a runtime uses to hand data
// back to the launcher after it exits: either a new argument list for a
// relaunch or a diagnostic message for a failure.
package exitdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers/syncutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// MaxSize is the largest payload a channel accepts.
const MaxSize = 16 * 1024

var (
	ErrTooLarge       = fmt.Errorf("exit data exceeds %d bytes", MaxSize)
	ErrUnknownChannel = errors.New("unknown exit data channel")
)

// Channel is the consumer side of a side channel. Read returns the current
// payload and clears it, so a payload is only ever seen once.
type Channel interface {
	ID() string
	Read() ([]byte, error)
	Close() error
}

var (
	_ Channel = (*FileChannel)(nil)
	_ Channel = (*Memory)(nil)
)

// FileStore keeps one file per channel under a directory. The launcher
// creates the channel before starting the runtime and a separate writer
// invocation fills it.
type FileStore struct {
	fs  afero.Fs
	dir string
}

func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id)
}

// Create makes a new empty channel with a random ID.
func (s *FileStore) Create() (*FileChannel, error) {
	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create exit data directory: %w", err)
	}

	id := uuid.New().String()
	if err := afero.WriteFile(s.fs, s.path(id), nil, 0o600); err != nil {
		return nil, fmt.Errorf("failed to create exit data channel: %w", err)
	}
	log.Debug().Str("id", id).Msg("created exit data channel")

	return &FileChannel{store: s, id: id}, nil
}

// Write replaces the payload of an existing channel.
func (s *FileStore) Write(id string, data []byte) error {
	if len(data) > MaxSize {
		return ErrTooLarge
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, id)
	}

	exists, err := afero.Exists(s.fs, s.path(id))
	if err != nil {
		return fmt.Errorf("failed to check exit data channel: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, id)
	}

	if err := afero.WriteFile(s.fs, s.path(id), data, 0o600); err != nil {
		return fmt.Errorf("failed to write exit data: %w", err)
	}
	return nil
}

func (s *FileStore) read(id string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read exit data: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	if err := afero.WriteFile(s.fs, s.path(id), nil, 0o600); err != nil {
		return nil, fmt.Errorf("failed to clear exit data: %w", err)
	}
	return data, nil
}

// FileChannel is a channel backed by a FileStore file.
type FileChannel struct {
	store *FileStore
	id    string
}

func (c *FileChannel) ID() string {
	return c.id
}

func (c *FileChannel) Read() ([]byte, error) {
	return c.store.read(c.id)
}

// Close removes the channel file.
func (c *FileChannel) Close() error {
	err := c.store.fs.Remove(c.store.path(c.id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove exit data channel: %w", err)
	}
	return nil
}

// Memory is an in-process channel, filled by a callback from an embedded
// runtime which may run on a thread of its own.
type Memory struct {
	id   string
	data []byte
	mu   syncutil.Mutex
}

func NewMemory() *Memory {
	return &Memory{id: uuid.New().String()}
}

func (m *Memory) ID() string {
	return m.id
}

// Set replaces the payload.
func (m *Memory) Set(data string) error {
	if len(data) > MaxSize {
		return ErrTooLarge
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = []byte(data)
	return nil
}

func (m *Memory) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data := m.data
	m.data = nil
	return data, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
