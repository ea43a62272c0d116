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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"verflow.dev/verflow/internal/config"
	"verflow.dev/verflow/internal/semver"
)

func TestNewDefault(t *testing.T) {
	c := config.NewDefault()

	if c.AutoIncrement != semver.Patch {
		t.Errorf("AutoIncrement = %v, want Patch", c.AutoIncrement)
	}
	if c.VerbosityName != "info" {
		t.Errorf("VerbosityName = %q, want %q", c.VerbosityName, "info")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() on NewDefault() error = %v", err)
	}
}

func TestConfig_EffectivePreReleaseIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		c     config.Config
		want  []string
	}{
		{"explicit identifiers win", config.Config{DefaultPreReleaseIdentifiers: []string{"beta", "1"}, DefaultPreReleasePhase: "rc"}, []string{"beta", "1"}},
		{"phase fallback", config.Config{DefaultPreReleasePhase: "rc"}, []string{"rc", "0"}},
		{"package default", config.Config{}, config.DefaultPreReleaseIdentifiers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.EffectivePreReleaseIdentifiers()
			if len(got) != len(tt.want) {
				t.Fatalf("EffectivePreReleaseIdentifiers() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EffectivePreReleaseIdentifiers()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       config.Config
		wantErr bool
	}{
		{"default is valid", config.NewDefault(), false},
		{"bad auto-increment", config.Config{AutoIncrement: semver.VersionPart(99), VerbosityName: "info"}, true},
		{"bad build metadata", config.Config{AutoIncrement: semver.Patch, BuildMetadata: "bad_id", VerbosityName: "info"}, true},
		{"bad verbosity", config.Config{AutoIncrement: semver.Patch, VerbosityName: "loud"}, true},
		{"bad pre-release identifier", config.Config{AutoIncrement: semver.Patch, DefaultPreReleaseIdentifiers: []string{"bad_id"}, VerbosityName: "info"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterFlags_ParsesArgs(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := config.RegisterFlags(fs)

	if err := fs.Parse([]string{"--auto-increment=minor", "--minimum-major-minor=2.0", "--ignore-height"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if c.AutoIncrement != semver.Minor {
		t.Errorf("AutoIncrement = %v, want Minor", c.AutoIncrement)
	}
	if c.MinimumMajorMinor != (semver.MajorMinor{Major: 2, Minor: 0}) {
		t.Errorf("MinimumMajorMinor = %v, want {2 0}", c.MinimumMajorMinor)
	}
	if !c.IgnoreHeight {
		t.Error("IgnoreHeight should be true")
	}
}

func TestLoadYAMLOverlay_ExplicitFlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "verflow.yaml")
	yamlBody := "auto-increment: major\ntag-prefix: v\nverbosity: debug\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := config.RegisterFlags(fs)
	if err := fs.Parse([]string{"--auto-increment=patch"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if err := config.LoadYAMLOverlay(c, path, fs); err != nil {
		t.Fatalf("LoadYAMLOverlay() error = %v", err)
	}

	if c.AutoIncrement != semver.Patch {
		t.Errorf("AutoIncrement = %v, want Patch (explicit flag should win)", c.AutoIncrement)
	}
	if c.TagPrefix != "v" {
		t.Errorf("TagPrefix = %q, want %q (from YAML overlay)", c.TagPrefix, "v")
	}
	if c.VerbosityName != "debug" {
		t.Errorf("VerbosityName = %q, want %q (from YAML overlay)", c.VerbosityName, "debug")
	}
}

func TestLoadYAMLOverlay_NoPathIsNoop(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := config.RegisterFlags(fs)

	if err := config.LoadYAMLOverlay(c, "", fs); err != nil {
		t.Errorf("LoadYAMLOverlay(\"\") error = %v", err)
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	c := config.Config{
		AutoIncrement:     semver.Minor,
		TagPrefix:         "release-",
		MinimumMajorMinor: semver.MajorMinor{Major: 1, Minor: 0},
		VerbosityName:     "warn",
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got config.Config
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.AutoIncrement != c.AutoIncrement || got.TagPrefix != c.TagPrefix || got.VerbosityName != c.VerbosityName {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
	if got.MinimumMajorMinor != c.MinimumMajorMinor {
		t.Errorf("MinimumMajorMinor round trip = %v, want %v", got.MinimumMajorMinor, c.MinimumMajorMinor)
	}
}
