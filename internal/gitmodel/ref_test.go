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

package gitmodel_test

import (
	"testing"

	"verflow.dev/verflow/internal/gitmodel"
)

func TestClassifyRefName(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want gitmodel.RefKind
	}{
		{"empty", "", gitmodel.RefKindUnknown},
		{"head", "HEAD", gitmodel.RefKindHead},
		{"branch", "refs/heads/main", gitmodel.RefKindBranch},
		{"remote branch", "refs/remotes/origin/main", gitmodel.RefKindRemoteBranch},
		{"tag", "refs/tags/v1.0.0", gitmodel.RefKindTag},
		{"bare hash", "a1b2c3d4e5f6789012345678901234567890abcd", gitmodel.RefKindHash},
		{"unrecognized", "some/other/thing", gitmodel.RefKindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gitmodel.ClassifyRefName(gitmodel.RefName(tt.ref))
			if got != tt.want {
				t.Errorf("ClassifyRefName(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseRefName(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		wantErr bool
	}{
		{"empty", "", false},
		{"branch", "refs/heads/main", false},
		{"control character", "refs/heads/\x01bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gitmodel.ParseRefName(tt.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRefName(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
		})
	}
}

func TestParseRefKind(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    gitmodel.RefKind
		wantErr bool
	}{
		{"branch", "branch", gitmodel.RefKindBranch, false},
		{"case insensitive", "TAG", gitmodel.RefKindTag, false},
		{"unknown string", "bogus", gitmodel.RefKindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gitmodel.ParseRefKind(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRefKind(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRefKind(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
