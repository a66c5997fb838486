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

package launcher

import (
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FindStartup locates the startup artifact. A -startup value is tried
// relative to programDir and then as given. Without one, the newest
// versioned artifact in the search directory is used, falling back to the
// default artifact next to the launcher.
func FindStartup(fs afero.Fs, programDir, startupArg string, cfg config.Startup) (string, error) {
	if startupArg != "" {
		if !filepath.IsAbs(startupArg) {
			path := filepath.Join(programDir, startupArg)
			if isFile(fs, path) {
				return path, nil
			}
		}
		if isFile(fs, startupArg) {
			return startupArg, nil
		}
		return "", &FatalError{Kind: ErrNoStartup, Searched: startupArg}
	}

	if cfg.SearchDir != "" && cfg.Prefix != "" {
		dir := cfg.SearchDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(programDir, dir)
		}
		if path, ok := newestArtifact(fs, dir, cfg.Prefix); ok {
			return path, nil
		}
	}

	if cfg.Default != "" {
		path := filepath.Join(programDir, cfg.Default)
		if isFile(fs, path) {
			return path, nil
		}
		return "", &FatalError{Kind: ErrNoStartup, Searched: path}
	}

	return "", &FatalError{Kind: ErrNoStartup}
}

func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

type artifact struct {
	version *version.Version
	name    string
}

// newer reports whether a sorts after b. Parsed versions beat unparsed
// ones and names break ties.
func (a artifact) newer(b artifact) bool {
	switch {
	case a.version != nil && b.version != nil:
		if c := a.version.Compare(b.version); c != 0 {
			return c > 0
		}
	case a.version != nil:
		return true
	case b.version != nil:
		return false
	}
	return a.name > b.name
}

// parseArtifactVersion parses the version suffix of an artifact name. OSGi
// qualifiers such as 1.6.0.v20200915 are not semver, so only the numeric
// segments are kept when the full string does not parse.
func parseArtifactVersion(s string) *version.Version {
	if v, err := version.NewVersion(s); err == nil {
		return v
	}

	parts := strings.Split(s, ".")
	for len(parts) > 1 {
		parts = parts[:len(parts)-1]
		if v, err := version.NewVersion(strings.Join(parts, ".")); err == nil {
			return v
		}
	}
	return nil
}

func newestArtifact(fs afero.Fs, dir, prefix string) (string, bool) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		log.Debug().Err(err).Msgf("failed to read startup search dir: %s", dir)
		return "", false
	}

	var best *artifact
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ".jar") {
			continue
		}

		v := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"_"), ".jar")
		candidate := artifact{name: name, version: parseArtifactVersion(v)}
		if best == nil || candidate.newer(*best) {
			best = &candidate
		}
	}

	if best == nil {
		return "", false
	}
	return filepath.Join(dir, best.name), true
}
