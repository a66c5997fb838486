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


// Package telemetry reports launcher errors to Sentry when the user has
// opted in. Usernames are scrubbed from paths before anything is sent.
package telemetry

import (
	"fmt"
	"net/http"
	"regexp"
	"runtime"
	"sync"
	"time"

	"github.com/ZaparooProject/zaparoo-launcher/pkg/helpers"
	"github.com/getsentry/sentry-go"
	sentryzerolog "github.com/getsentry/sentry-go/zerolog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	flushTimeout = 2 * time.Second
	sendTimeout  = 10 * time.Second
)

// Options configures error reporting. Nothing is sent unless Enabled is
// set and DSN is not empty.
type Options struct {
	DSN      string
	Release  string
	Platform string
	Enabled  bool
}

type scrubRule struct {
	re   *regexp.Regexp
	repl string
}

// Launch commands carry install, workspace and runtime paths, most of them
// under the user's home.
var scrubRules = []scrubRule{
	{regexp.MustCompile(`(?i)/home/[^/]+/`), "/home/<user>/"},
	{regexp.MustCompile(`(?i)/Users/[^/]+/`), "/Users/<user>/"},
	{regexp.MustCompile(`(?i)[a-zA-Z]:\\Users\\[^\\]+\\`), `C:\Users\<user>\`},
}

var (
	mu     sync.Mutex
	writer *sentryzerolog.Writer
)

// Init starts Sentry and layers it under the existing log writer for error
// level events.
func Init(opts Options) error {
	if !opts.Enabled || opts.DSN == "" {
		log.Debug().Msg("error reporting disabled")
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Release:          "zaparoo-launcher@" + opts.Release,
		Environment:      opts.Platform,
		AttachStacktrace: true,
		SendDefaultPII:   false,
		MaxBreadcrumbs:   0,
		HTTPClient:       &http.Client{Timeout: sendTimeout},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return sanitizeEvent(event)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(map[string]string{
			"platform": opts.Platform,
			"os":       runtime.GOOS,
			"arch":     runtime.GOARCH,
		})
	})

	w, err := sentryzerolog.NewWithHub(sentry.CurrentHub(), sentryzerolog.Options{
		Levels:       []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		FlushTimeout: flushTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create sentry log writer: %w", err)
	}
	writer = w

	log.Logger = log.Output(zerolog.MultiLevelWriter(helpers.LogWriter(), writer)).
		With().Timestamp().Caller().Logger()
	log.Info().Str("release", opts.Release).Msg("error reporting enabled")
	return nil
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return writer != nil
}

// Flush waits for queued events. Called before the launcher exits or
// replaces itself, since neither runs deferred sends.
func Flush() {
	if !Enabled() {
		return
	}
	sentry.Flush(flushTimeout)
}

// Close flushes and detaches the log writer. Later calls do nothing.
func Close() {
	mu.Lock()
	w := writer
	writer = nil
	mu.Unlock()

	if w == nil {
		return
	}
	log.Logger = log.Output(helpers.LogWriter()).With().Timestamp().Caller().Logger()
	if err := w.Close(); err != nil {
		log.Debug().Err(err).Msg("failed to close sentry log writer")
	}
	sentry.Flush(flushTimeout)
}

func sanitizeEvent(event *sentry.Event) *sentry.Event {
	event.ServerName = ""
	event.Message = scrub(event.Message)

	for i := range event.Exception {
		ex := &event.Exception[i]
		ex.Value = scrub(ex.Value)
		if ex.Stacktrace == nil {
			continue
		}
		for j := range ex.Stacktrace.Frames {
			frame := &ex.Stacktrace.Frames[j]
			frame.AbsPath = scrub(frame.AbsPath)
			frame.Filename = scrub(frame.Filename)
		}
	}
	for k, v := range event.Extra {
		if s, ok := v.(string); ok {
			event.Extra[k] = scrub(s)
		}
	}
	for k, v := range event.Tags {
		event.Tags[k] = scrub(v)
	}
	return event
}

func scrub(s string) string {
	for _, r := range scrubRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
