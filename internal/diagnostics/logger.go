/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package diagnostics defines the Logger Port the rest of the module
// depends on, and a github.com/rs/zerolog-backed implementation of it. No
// package outside internal/diagnostics imports zerolog directly.
package diagnostics

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Str builds a string Field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Logger is the five-level, guard-checked logging contract every resolver
// component depends on. Guard predicates let a caller skip building an
// expensive message (redacting a Commit, rendering a Candidate list) when
// the level is disabled.
type Logger interface {
	TraceEnabled() bool
	DebugEnabled() bool
	InfoEnabled() bool
	WarnEnabled() bool
	ErrorEnabled() bool

	Trace(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// Verbosity names the five Logger levels plus their short forms, as bound
// to the CLI's --verbosity flag.
type Verbosity int

const (
	// VerbosityError shows only Error events.
	VerbosityError Verbosity = iota
	VerbosityWarn
	VerbosityInfo
	VerbosityDebug
	VerbosityTrace
)

// ParseVerbosity accepts the full name ("debug") or its single-letter short
// form ("d"), plus "diag"/"diagnostic" as aliases for VerbosityTrace.
func ParseVerbosity(s string) (Verbosity, bool) {
	switch s {
	case "error", "e":
		return VerbosityError, true
	case "warn", "w":
		return VerbosityWarn, true
	case "info", "i":
		return VerbosityInfo, true
	case "debug", "d":
		return VerbosityDebug, true
	case "trace", "t", "diag", "diagnostic":
		return VerbosityTrace, true
	default:
		return 0, false
	}
}

func (v Verbosity) zerologLevel() zerolog.Level {
	switch v {
	case VerbosityError:
		return zerolog.ErrorLevel
	case VerbosityWarn:
		return zerolog.WarnLevel
	case VerbosityInfo:
		return zerolog.InfoLevel
	case VerbosityDebug:
		return zerolog.DebugLevel
	case VerbosityTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// zerologLogger adapts a zerolog.Logger to the Logger port. GetLevel()
// already gives the guard check each Enabled method needs.
type zerologLogger struct {
	log zerolog.Logger
}

// New returns a Logger that writes human-readable lines to w at verbosity
// v, via zerolog's ConsoleWriter.
func New(w io.Writer, v Verbosity) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	log := zerolog.New(console).Level(v.zerologLevel()).With().Timestamp().Logger()
	return &zerologLogger{log: log}
}

// NewStderr is a convenience for New(os.Stderr, v), the CLI's default sink.
func NewStderr(v Verbosity) Logger {
	return New(os.Stderr, v)
}

func (l *zerologLogger) TraceEnabled() bool { return l.log.GetLevel() <= zerolog.TraceLevel }
func (l *zerologLogger) DebugEnabled() bool { return l.log.GetLevel() <= zerolog.DebugLevel }
func (l *zerologLogger) InfoEnabled() bool  { return l.log.GetLevel() <= zerolog.InfoLevel }
func (l *zerologLogger) WarnEnabled() bool  { return l.log.GetLevel() <= zerolog.WarnLevel }
func (l *zerologLogger) ErrorEnabled() bool { return l.log.GetLevel() <= zerolog.ErrorLevel }

func withFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	return e
}

func (l *zerologLogger) Trace(msg string, fields ...Field) {
	withFields(l.log.Trace(), fields).Msg(msg)
}

func (l *zerologLogger) Debug(msg string, fields ...Field) {
	withFields(l.log.Debug(), fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...Field) {
	withFields(l.log.Info(), fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...Field) {
	withFields(l.log.Warn(), fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, err error, fields ...Field) {
	withFields(l.log.Error().Err(err), fields).Msg(msg)
}
