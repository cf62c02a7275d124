// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a [slog.Handler] that discards all records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. It is accessed atomically so that
// SetLogger can be called concurrently with conversions on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the color conversion packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: clamping of out-of-range input, option alias
//     resolution and conversions routed through a pivot representation
//   - [slog.LevelWarn]: configuration errors returned to the caller
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// SetLevelLogger installs a text logger writing to w that shows
// messages at or above [UserLevel].
func SetLevelLogger(w io.Writer) {
	SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
