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
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// PathFinder resolves runtime executables and embeddable runtime libraries
// against a filesystem and a PATH-style directory list.
type PathFinder struct {
	Fs afero.Fs
	// Probe, if set, must accept a library file before it is reported as
	// found. It is used to check the library exports the launch entry point.
	Probe func(path string) bool
	// Path is the list of directories searched for bare command names.
	Path         []string
	LibraryNames []string
	// Windows switches on .exe suffix handling and ignores permission bits.
	Windows bool
}

// NewPathFinder builds a PathFinder over the real filesystem, searching the
// PATH environment variable.
func NewPathFinder(d Defaults, probe func(string) bool) *PathFinder {
	return &PathFinder{
		Fs:           afero.NewOsFs(),
		Probe:        probe,
		Path:         filepath.SplitList(os.Getenv("PATH")),
		LibraryNames: d.LibraryNames,
		Windows:      runtime.GOOS == "windows",
	}
}

// FindCommand returns the absolute path of an executable. Names containing a
// path separator are checked as given, bare names are searched in Path.
func (f *PathFinder) FindCommand(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	var candidates []string
	if strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) {
		candidates = f.withExe(name)
	} else {
		for _, dir := range f.Path {
			if dir == "" {
				continue
			}
			candidates = append(candidates, f.withExe(filepath.Join(dir, name))...)
		}
	}

	for _, c := range candidates {
		if f.isExecutable(c) {
			abs, err := filepath.Abs(c)
			if err != nil {
				return c, true
			}
			return abs, true
		}
	}
	return "", false
}

// FindVMLibrary returns the embeddable runtime library for a runtime. path
// may be the library itself or the runtime executable, in which case the
// usual JRE layouts around its bin directory are probed.
func (f *PathFinder) FindVMLibrary(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	var candidates []string
	if isLibraryName(path) {
		candidates = []string{path}
	} else {
		binDir := filepath.Dir(path)
		home := filepath.Dir(binDir)
		for _, lib := range f.LibraryNames {
			for _, kind := range []string{"server", "client"} {
				candidates = append(candidates,
					filepath.Join(home, "lib", kind, lib),
					filepath.Join(home, "lib", libArchDir(), kind, lib),
					filepath.Join(home, "jre", "lib", kind, lib),
					filepath.Join(binDir, kind, lib),
				)
			}
			candidates = append(candidates,
				filepath.Join(home, "lib", lib),
				filepath.Join(home, "lib", "jli", lib),
			)
		}
	}

	for _, c := range candidates {
		if !f.isFile(c) {
			continue
		}
		if f.Probe != nil && !f.Probe(c) {
			log.Debug().Msgf("library does not export launch entry point: %s", c)
			continue
		}
		return c, true
	}
	return "", false
}

func (f *PathFinder) withExe(path string) []string {
	if f.Windows && filepath.Ext(path) == "" {
		return []string{path + ".exe", path}
	}
	return []string{path}
}

func (f *PathFinder) isFile(path string) bool {
	info, err := f.Fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (f *PathFinder) isExecutable(path string) bool {
	info, err := f.Fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return f.Windows || info.Mode().Perm()&0o111 != 0
}

func isLibraryName(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".so", ".dylib", ".dll":
		return true
	default:
		return false
	}
}

func libArchDir() string {
	switch runtime.GOARCH {
	case "386":
		return "i386"
	case "arm64":
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}
