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

package semver_test

import (
	"testing"

	"verflow.dev/verflow/internal/semver"
)

func TestParseMajorMinor(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    semver.MajorMinor
		wantErr bool
	}{
		{"basic", "2.0", semver.MajorMinor{Major: 2, Minor: 0}, false},
		{"two digit minor", "1.10", semver.MajorMinor{Major: 1, Minor: 10}, false},
		{"missing minor", "2", semver.MajorMinor{}, true},
		{"non-numeric", "a.b", semver.MajorMinor{}, true},
		{"negative", "-1.0", semver.MajorMinor{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := semver.ParseMajorMinor(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMajorMinor(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMajorMinor(%q) = %+v, want %+v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMajorMinor_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b semver.MajorMinor
		want int
	}{
		{"equal", semver.MajorMinor{Major: 1, Minor: 2}, semver.MajorMinor{Major: 1, Minor: 2}, 0},
		{"major wins", semver.MajorMinor{Major: 2, Minor: 0}, semver.MajorMinor{Major: 1, Minor: 9}, 1},
		{"minor wins", semver.MajorMinor{Major: 1, Minor: 5}, semver.MajorMinor{Major: 1, Minor: 2}, 1},
		{"less", semver.MajorMinor{Major: 1, Minor: 0}, semver.MajorMinor{Major: 1, Minor: 1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMajorMinor_Set(t *testing.T) {
	var mm semver.MajorMinor
	if err := mm.Set("3.4"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if mm != (semver.MajorMinor{Major: 3, Minor: 4}) {
		t.Errorf("Set(\"3.4\") left mm = %+v", mm)
	}
}

func TestMajorMinor_String(t *testing.T) {
	if got := (semver.MajorMinor{Major: 2, Minor: 0}).String(); got != "2.0" {
		t.Errorf("String() = %q, want %q", got, "2.0")
	}
}
