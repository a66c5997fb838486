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

package platforms

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/adrg/xdg"
)

var ErrNotSupported = errors.New("operation not supported on this platform")

const (
	PlatformIDLinux   = "linux"
	PlatformIDMac     = "mac"
	PlatformIDWindows = "windows"
)

type Settings struct {
	// ConfigDir is where launcher.toml is stored.
	ConfigDir string
	// TempDir holds files used for inter-process communication, such as
	// exit data channels. Expect it to be deleted.
	TempDir string
	// LogDir is where the rotated launcher log is written.
	LogDir string
}

// Defaults are the values the launcher falls back to when neither the
// command line nor the arg file provide one.
type Defaults struct {
	// OS, WS and Arch are passed to the program as -os, -ws and -arch.
	OS   string
	WS   string
	Arch string
	// RuntimeName is searched for when no -vm option was given.
	RuntimeName string
	// RuntimeArgs are used when no -vmargs were given.
	RuntimeArgs []string
	// LibraryNames are the file names of an embeddable runtime library.
	LibraryNames []string
}

// Platform describes the host the launcher runs on.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns the directories the launcher writes to.
	Settings() Settings
	// Defaults returns the platform default launch values.
	Defaults() Defaults
}

// Desktop is the Platform for regular desktop installs, using xdg
// directories for configuration and state.
type Desktop struct {
	goos   string
	goarch string
}

func NewDesktop() *Desktop {
	return &Desktop{goos: runtime.GOOS, goarch: runtime.GOARCH}
}

func (p *Desktop) ID() string {
	switch p.goos {
	case "darwin":
		return PlatformIDMac
	case "windows":
		return PlatformIDWindows
	default:
		return PlatformIDLinux
	}
}

func (*Desktop) Settings() Settings {
	return Settings{
		ConfigDir: filepath.Join(xdg.ConfigHome, config.AppName),
		TempDir:   filepath.Join(os.TempDir(), config.AppName),
		LogDir:    filepath.Join(xdg.StateHome, config.AppName, config.LogsDir),
	}
}

func (p *Desktop) Defaults() Defaults {
	d := Defaults{
		OS:          osName(p.goos),
		WS:          wsName(p.goos),
		Arch:        archName(p.goarch),
		RuntimeName: "java",
	}
	switch p.goos {
	case "darwin":
		d.RuntimeArgs = []string{"-XstartOnFirstThread"}
		d.LibraryNames = []string{"libjli.dylib", "libjvm.dylib"}
	case "windows":
		d.RuntimeName = "javaw.exe"
		d.LibraryNames = []string{"jvm.dll"}
	default:
		d.LibraryNames = []string{"libjvm.so"}
	}
	return d
}

// WithLibraryNames returns a copy of d using names instead of the platform
// library names, unless names is empty.
func (d Defaults) WithLibraryNames(names []string) Defaults {
	if len(names) > 0 {
		d.LibraryNames = slices.Clone(names)
	}
	return d
}

func osName(goos string) string {
	switch goos {
	case "darwin":
		return "macosx"
	case "windows":
		return "win32"
	default:
		return goos
	}
}

func wsName(goos string) string {
	switch goos {
	case "darwin":
		return "cocoa"
	case "windows":
		return "win32"
	default:
		return "gtk"
	}
}

func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}
