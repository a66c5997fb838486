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
	"github.com/ZaparooProject/zaparoo-launcher/pkg/platforms"
	"github.com/stretchr/testify/mock"
)

// MockPlatform is a mock implementation of the Platform interface using testify/mock
type MockPlatform struct {
	mock.Mock
}

// ID returns the unique ID of this platform
func (m *MockPlatform) ID() string {
	args := m.Called()
	return args.String(0)
}

// Settings returns the directories the launcher writes to
func (m *MockPlatform) Settings() platforms.Settings {
	args := m.Called()
	if settings, ok := args.Get(0).(platforms.Settings); ok {
		return settings
	}
	return platforms.Settings{}
}

// Defaults returns the platform default launch values
func (m *MockPlatform) Defaults() platforms.Defaults {
	args := m.Called()
	if defaults, ok := args.Get(0).(platforms.Defaults); ok {
		return defaults
	}
	return platforms.Defaults{}
}

// NewMockPlatform creates a new MockPlatform instance
func NewMockPlatform() *MockPlatform {
	return &MockPlatform{}
}

// SetupBasicMock configures the mock with typical Linux desktop values
func (m *MockPlatform) SetupBasicMock() {
	m.On("ID").Return("mock-platform").Maybe()
	m.On("Settings").Return(platforms.Settings{}).Maybe()
	m.On("Defaults").Return(platforms.Defaults{
		OS:           "linux",
		WS:           "gtk",
		Arch:         "x86_64",
		RuntimeName:  "java",
		LibraryNames: []string{"libjvm.so"},
	}).Maybe()
}
