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

// Package config defines the resolver's Config value, the flags that
// populate it, and the optional YAML file overlay the --config flag reads.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"dirpx.dev/rxmerr"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/semver"
)

// DefaultPreReleaseIdentifiers is the floor identifier sequence used when
// neither --default-pre-release-identifiers nor the deprecated
// --default-pre-release-phase flag is set.
var DefaultPreReleaseIdentifiers = []string{"alpha", "0"}

var preReleaseIdentifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// Config holds every value the resolver's flags and --config file can set.
// It implements a subset of model.Model: Validate and a Redacted/String
// pair (BuildMetadata may embed environment-specific identifiers some
// teams prefer not to echo into debug logs in full).
type Config struct {
	WorkDir string

	AutoIncrement                semver.VersionPart
	BuildMetadata                string
	DefaultPreReleaseIdentifiers []string
	DefaultPreReleasePhase       string
	IgnoreHeight                 bool
	MinimumMajorMinor            semver.MajorMinor
	TagPrefix                    string
	VerbosityName                string
	VersionOverride              string
	ConfigPath                   string
}

// NewDefault returns a Config with every flag at its documented default.
func NewDefault() Config {
	return Config{
		AutoIncrement:                semver.Patch,
		DefaultPreReleaseIdentifiers: append([]string{}, DefaultPreReleaseIdentifiers...),
		VerbosityName:                "info",
	}
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether c is the unpopulated zero value. Config embeds a
// slice field, so it cannot use == comparison directly.
func (c Config) IsZero() bool {
	return c.WorkDir == "" && c.AutoIncrement == 0 && c.BuildMetadata == "" &&
		len(c.DefaultPreReleaseIdentifiers) == 0 && c.DefaultPreReleasePhase == "" &&
		!c.IgnoreHeight && c.MinimumMajorMinor.IsZero() && c.TagPrefix == "" &&
		c.VerbosityName == "" && c.VersionOverride == "" && c.ConfigPath == ""
}

// String renders every flag-controlled field except ConfigPath, including
// BuildMetadata in full. DefaultPreReleasePhase is not shown on its own; it
// appears folded into the effective DefaultPreReleaseIdentifiers.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{WorkDir:%s, AutoIncrement:%s, BuildMetadata:%s, DefaultPreReleaseIdentifiers:%v, IgnoreHeight:%t, MinimumMajorMinor:%s, TagPrefix:%s, Verbosity:%s, VersionOverride:%s}",
		c.WorkDir, c.AutoIncrement, c.BuildMetadata, c.effectivePreReleaseIdentifiers(), c.IgnoreHeight,
		c.MinimumMajorMinor, c.TagPrefix, c.VerbosityName, c.VersionOverride,
	)
}

// Redacted is identical to String except BuildMetadata is elided.
func (c Config) Redacted() string {
	return fmt.Sprintf(
		"Config{WorkDir:%s, AutoIncrement:%s, BuildMetadata:[redacted], DefaultPreReleaseIdentifiers:%v, IgnoreHeight:%t, MinimumMajorMinor:%s, TagPrefix:%s, Verbosity:%s, VersionOverride:%s}",
		c.WorkDir, c.AutoIncrement, c.effectivePreReleaseIdentifiers(), c.IgnoreHeight,
		c.MinimumMajorMinor, c.TagPrefix, c.VerbosityName, c.VersionOverride,
	)
}

// effectivePreReleaseIdentifiers resolves DefaultPreReleaseIdentifiers,
// falling back to "<phase>.0" when only the deprecated
// DefaultPreReleasePhase was set, and finally to DefaultPreReleaseIdentifiers
// (the package var) when neither was.
func (c Config) effectivePreReleaseIdentifiers() []string {
	if len(c.DefaultPreReleaseIdentifiers) > 0 {
		return c.DefaultPreReleaseIdentifiers
	}
	if c.DefaultPreReleasePhase != "" {
		return []string{c.DefaultPreReleasePhase, "0"}
	}
	return DefaultPreReleaseIdentifiers
}

// EffectivePreReleaseIdentifiers is the exported accessor the resolver
// uses; it never returns an empty slice.
func (c Config) EffectivePreReleaseIdentifiers() []string {
	return c.effectivePreReleaseIdentifiers()
}

// Validate checks every field that can be malformed, collecting every
// failure via rxmerr.Collector rather than stopping at the first bad flag.
func (c Config) Validate() error {
	collector := rxmerr.NewCollector()

	if !c.AutoIncrement.Valid() {
		collector.Append(&errs.ValidationError{Type: c.TypeName(), Field: "AutoIncrement", Reason: "not a recognized VersionPart"})
	}

	if err := c.MinimumMajorMinor.Validate(); err != nil {
		collector.Append(&errs.ValidationError{Type: c.TypeName(), Field: "MinimumMajorMinor", Reason: err.Error()})
	}

	for _, id := range c.effectivePreReleaseIdentifiers() {
		if !preReleaseIdentifierPattern.MatchString(id) {
			collector.Append(&errs.ValidationError{
				Type:   c.TypeName(),
				Field:  "DefaultPreReleaseIdentifiers",
				Reason: fmt.Sprintf("identifier %q must match [0-9A-Za-z-]+", id),
			})
		}
	}

	if c.BuildMetadata != "" {
		if _, err := (semver.Version{}).AddBuildMetadata(c.BuildMetadata); err != nil {
			collector.Append(&errs.ValidationError{Type: c.TypeName(), Field: "BuildMetadata", Reason: err.Error()})
		}
	}

	if c.VerbosityName != "" {
		if _, ok := parseVerbosityName(c.VerbosityName); !ok {
			collector.Append(&errs.ValidationError{Type: c.TypeName(), Field: "VerbosityName", Reason: "not a recognized verbosity"})
		}
	}

	return collector.Err()
}

func parseVerbosityName(s string) (string, bool) {
	switch s {
	case "error", "e", "warn", "w", "info", "i", "debug", "d", "trace", "t", "diag", "diagnostic":
		return s, true
	default:
		return "", false
	}
}

// RegisterFlags binds every Config field to fs, following cmd/verflow's
// convention of passing a *pflag.FlagSet to the package that owns the
// values it populates, rather than hand-rolling flag wiring at the command
// layer.
func RegisterFlags(fs *pflag.FlagSet) *Config {
	c := NewDefault()

	fs.Var(&c.AutoIncrement, "auto-increment", "Version part to bump: major, minor, or patch")
	fs.StringVar(&c.BuildMetadata, "build-metadata", "", "Appended as SemVer build metadata")
	fs.StringSliceVar(&c.DefaultPreReleaseIdentifiers, "default-pre-release-identifiers", nil, "Comma-separated pre-release identifiers (default alpha.0)")
	fs.StringVar(&c.DefaultPreReleasePhase, "default-pre-release-phase", "", "Deprecated alias producing <phase>.0 when --default-pre-release-identifiers is unset")
	fs.BoolVar(&c.IgnoreHeight, "ignore-height", false, "Do not fold commit height into the version")
	fs.Var(&c.MinimumMajorMinor, "minimum-major-minor", "Lower-bound major.minor gate")
	fs.StringVar(&c.TagPrefix, "tag-prefix", "", "Prefix stripped from tag names before parsing")
	fs.StringVar(&c.VerbosityName, "verbosity", "info", "Log verbosity: error, warn, info, debug, or trace")
	fs.StringVar(&c.VersionOverride, "version-override", "", "Skip computation and emit this version verbatim")
	fs.StringVar(&c.ConfigPath, "config", "", "Optional YAML file providing defaults for unset flags")

	return &c
}

// LoadYAMLOverlay decodes the YAML file at path into fields not explicitly
// set on the command line (tracked via fs.Changed), so explicit flags
// always win over the file.
func LoadYAMLOverlay(c *Config, path string, fs *pflag.FlagSet) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &errs.RepositoryError{Op: "LoadYAMLOverlay", Dir: path, Err: err}
	}

	// UnmarshalYAML leaves AutoIncrement untouched when the file omits it;
	// seeding it here keeps c's value instead of the zero value, Major.
	overlay := Config{AutoIncrement: c.AutoIncrement}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return &errs.UnmarshalError{Type: "Config", Reason: err.Error()}
	}

	if !fs.Changed("auto-increment") {
		c.AutoIncrement = overlay.AutoIncrement
	}
	if !fs.Changed("build-metadata") {
		c.BuildMetadata = overlay.BuildMetadata
	}
	if !fs.Changed("default-pre-release-identifiers") && len(overlay.DefaultPreReleaseIdentifiers) > 0 {
		c.DefaultPreReleaseIdentifiers = overlay.DefaultPreReleaseIdentifiers
	}
	if !fs.Changed("default-pre-release-phase") {
		c.DefaultPreReleasePhase = overlay.DefaultPreReleasePhase
	}
	if !fs.Changed("ignore-height") {
		c.IgnoreHeight = overlay.IgnoreHeight
	}
	if !fs.Changed("minimum-major-minor") && !overlay.MinimumMajorMinor.IsZero() {
		c.MinimumMajorMinor = overlay.MinimumMajorMinor
	}
	if !fs.Changed("tag-prefix") {
		c.TagPrefix = overlay.TagPrefix
	}
	if !fs.Changed("verbosity") && overlay.VerbosityName != "" {
		c.VerbosityName = overlay.VerbosityName
	}
	if !fs.Changed("version-override") {
		c.VersionOverride = overlay.VersionOverride
	}

	return nil
}

// MarshalYAML serializes c's flag-controlled fields, for --config file
// authors who generate one programmatically.
func (c Config) MarshalYAML() (interface{}, error) {
	type config struct {
		AutoIncrement                string   `yaml:"auto-increment,omitempty"`
		BuildMetadata                string   `yaml:"build-metadata,omitempty"`
		DefaultPreReleaseIdentifiers []string `yaml:"default-pre-release-identifiers,omitempty"`
		DefaultPreReleasePhase       string   `yaml:"default-pre-release-phase,omitempty"`
		IgnoreHeight                 bool     `yaml:"ignore-height,omitempty"`
		MinimumMajorMinor            string   `yaml:"minimum-major-minor,omitempty"`
		TagPrefix                    string   `yaml:"tag-prefix,omitempty"`
		Verbosity                    string   `yaml:"verbosity,omitempty"`
		VersionOverride              string   `yaml:"version-override,omitempty"`
	}
	return config{
		AutoIncrement:                c.AutoIncrement.String(),
		BuildMetadata:                c.BuildMetadata,
		DefaultPreReleaseIdentifiers: c.DefaultPreReleaseIdentifiers,
		DefaultPreReleasePhase:       c.DefaultPreReleasePhase,
		IgnoreHeight:                 c.IgnoreHeight,
		MinimumMajorMinor:            c.MinimumMajorMinor.String(),
		TagPrefix:                    c.TagPrefix,
		Verbosity:                    c.VerbosityName,
		VersionOverride:              c.VersionOverride,
	}, nil
}

// UnmarshalYAML decodes a --config file into c.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		AutoIncrement                string   `yaml:"auto-increment"`
		BuildMetadata                string   `yaml:"build-metadata"`
		DefaultPreReleaseIdentifiers []string `yaml:"default-pre-release-identifiers"`
		DefaultPreReleasePhase       string   `yaml:"default-pre-release-phase"`
		IgnoreHeight                 bool     `yaml:"ignore-height"`
		MinimumMajorMinor            string   `yaml:"minimum-major-minor"`
		TagPrefix                    string   `yaml:"tag-prefix"`
		Verbosity                    string   `yaml:"verbosity"`
		VersionOverride              string   `yaml:"version-override"`
	}
	if err := node.Decode(&raw); err != nil {
		return &errs.UnmarshalError{Type: "Config", Reason: err.Error()}
	}

	if raw.AutoIncrement != "" {
		part, err := semver.ParseVersionPart(raw.AutoIncrement)
		if err != nil {
			return err
		}
		c.AutoIncrement = part
	}
	c.BuildMetadata = raw.BuildMetadata
	c.DefaultPreReleaseIdentifiers = raw.DefaultPreReleaseIdentifiers
	c.DefaultPreReleasePhase = raw.DefaultPreReleasePhase
	c.IgnoreHeight = raw.IgnoreHeight
	if raw.MinimumMajorMinor != "" {
		mm, err := semver.ParseMajorMinor(raw.MinimumMajorMinor)
		if err != nil {
			return err
		}
		c.MinimumMajorMinor = mm
	}
	c.TagPrefix = raw.TagPrefix
	c.VerbosityName = strings.TrimSpace(raw.Verbosity)
	c.VersionOverride = raw.VersionOverride

	return nil
}
