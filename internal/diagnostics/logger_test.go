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

package diagnostics_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"verflow.dev/verflow/internal/diagnostics"
)

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want diagnostics.Verbosity
		ok   bool
	}{
		{"full name", "debug", diagnostics.VerbosityDebug, true},
		{"short form", "d", diagnostics.VerbosityDebug, true},
		{"trace", "trace", diagnostics.VerbosityTrace, true},
		{"diag alias", "diag", diagnostics.VerbosityTrace, true},
		{"diagnostic alias", "diagnostic", diagnostics.VerbosityTrace, true},
		{"error short", "e", diagnostics.VerbosityError, true},
		{"unknown", "bogus", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := diagnostics.ParseVerbosity(tt.s)
			if ok != tt.ok {
				t.Fatalf("ParseVerbosity(%q) ok = %v, want %v", tt.s, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelGuards(t *testing.T) {
	var buf bytes.Buffer
	log := diagnostics.New(&buf, diagnostics.VerbosityWarn)

	if log.InfoEnabled() {
		t.Error("InfoEnabled() should be false at VerbosityWarn")
	}
	if !log.WarnEnabled() {
		t.Error("WarnEnabled() should be true at VerbosityWarn")
	}
	if !log.ErrorEnabled() {
		t.Error("ErrorEnabled() should be true at VerbosityWarn")
	}
}

func TestLogger_WritesToSink(t *testing.T) {
	var buf bytes.Buffer
	log := diagnostics.New(&buf, diagnostics.VerbosityTrace)

	log.Info("hello world", diagnostics.Str("key", "value"))

	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("expected output to contain the message, got %q", buf.String())
	}
}

func TestLogger_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := diagnostics.New(&buf, diagnostics.VerbosityError)

	log.Error("failed", stderrors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected output to contain the error cause, got %q", buf.String())
	}
}
