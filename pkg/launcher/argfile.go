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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/config"
	"github.com/spf13/afero"
)

// ArgFilePath returns the argument file read for the launcher at program:
// the executable path with its .exe suffix replaced by .ini.
func ArgFilePath(program string) string {
	if ext := filepath.Ext(program); strings.EqualFold(ext, ".exe") {
		program = strings.TrimSuffix(program, ext)
	}
	return program + config.ArgExt
}

// ReadArgFile reads one argument per line from path. Blank lines and lines
// starting with # are skipped. A missing file has no arguments.
func ReadArgFile(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read argument file: %w", err)
	}

	var args []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse argument file %s: %w", path, err)
	}

	return args, nil
}

// MergeArgs combines argument file and command line arguments. Program
// arguments from the file come first so command line options win. Runtime
// arguments from the command line replace those from the file.
func MergeArgs(fileArgs, cmdArgs []string) []string {
	fileProg, fileVM, fileHasVM := SplitVMArgs(fileArgs)
	cmdProg, cmdVM, cmdHasVM := SplitVMArgs(cmdArgs)

	merged := slices.Concat(fileProg, cmdProg)
	switch {
	case cmdHasVM:
		merged = append(merged, ArgVMArgs)
		merged = append(merged, cmdVM...)
	case fileHasVM:
		merged = append(merged, ArgVMArgs)
		merged = append(merged, fileVM...)
	}

	return merged
}
