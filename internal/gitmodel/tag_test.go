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

func TestNewTag(t *testing.T) {
	hash := gitmodel.Hash(sha1Hex)

	tests := []struct {
		name      string
		tagName   string
		object    gitmodel.Hash
		commit    gitmodel.Hash
		annotated bool
		message   string
		wantErr   bool
	}{
		{"lightweight tag", "v1.0.0", hash, hash, false, "", false},
		{"annotated tag with message", "v1.0.0", hash, hash, true, "release notes", false},
		{"lightweight tag with message is invalid", "v1.0.0", hash, hash, false, "oops", true},
		{"missing name", "", hash, hash, false, "", true},
		{"missing object", "v1.0.0", "", hash, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := gitmodel.ParseTagName(tt.tagName)
			if err != nil && tt.tagName != "" {
				t.Fatalf("ParseTagName(%q) error = %v", tt.tagName, err)
			}
			_, err = gitmodel.NewTag(name, tt.object, tt.commit, tt.annotated, tt.message)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTag() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTag_IsZero(t *testing.T) {
	if !(gitmodel.Tag{}).IsZero() {
		t.Error("zero value Tag should report IsZero() == true")
	}
}

func TestParseTagName(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		wantErr bool
	}{
		{"empty", "", false},
		{"simple version", "v1.2.3", false},
		{"hierarchical", "modules/serviceA/v1.2.3", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gitmodel.ParseTagName(tt.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTagName(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
		})
	}
}
