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
	stderrors "errors"
	"testing"

	"verflow.dev/verflow/internal/diagnostics"
)

func TestRecorder_RecordsEventsInOrder(t *testing.T) {
	r := diagnostics.NewRecorder()

	r.Warn("no repository found", diagnostics.Str("dir", "/tmp/x"))
	r.Error("walk failed", stderrors.New("boom"))

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("Events() returned %d events, want 2", len(events))
	}
	if events[0].Level != "warn" || events[0].Message != "no repository found" {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Level != "error" || events[1].Err == nil {
		t.Errorf("events[1] = %+v", events[1])
	}
}

func TestRecorder_HasLevel(t *testing.T) {
	r := diagnostics.NewRecorder()
	r.Debug("candidate emitted")

	if !r.HasLevel("debug") {
		t.Error("HasLevel(\"debug\") should be true after a Debug call")
	}
	if r.HasLevel("error") {
		t.Error("HasLevel(\"error\") should be false with no Error call")
	}
}

func TestRecorder_AlwaysEnabled(t *testing.T) {
	r := diagnostics.NewRecorder()
	if !r.TraceEnabled() || !r.DebugEnabled() || !r.InfoEnabled() || !r.WarnEnabled() || !r.ErrorEnabled() {
		t.Error("Recorder should report every level enabled")
	}
}
