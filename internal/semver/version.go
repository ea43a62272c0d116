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

// Package semver implements the SemVer 2.0 value type the resolver computes
// over: parsing a tag name into a Version, comparing two Versions by SemVer
// precedence, and deriving the height-stamped, build-metadata-attached, or
// floor-satisfying variant of a Version that the resolver's later steps
// need. It wraps github.com/blang/semver/v4 for parsing and precedence, the
// same engine the teacher library used for its own Version type.
package semver

import (
	"encoding/json"
	"strconv"
	"strings"

	bsemver "github.com/blang/semver/v4"
	xmodsemver "golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
)

// Version is a parsed SemVer 2.0 version. The zero value is 0.0.0; the
// resolver's baseline when no tag is found is 0.0.0 with the default
// pre-release identifiers attached, not the zero value.
type Version struct {
	Major int

	Minor int

	Patch int

	// Prerelease is the dot-separated pre-release identifier string (no
	// leading '-'), e.g. "alpha.1". Empty means this is a release version.
	Prerelease string

	// Metadata is the dot-separated build metadata string (no leading
	// '+'). Build metadata never affects precedence.
	Metadata string
}

// Parse extracts a Version from a tag's text. tagPrefix (e.g. "v" or
// "release-") is stripped first; if text does not start with tagPrefix,
// Parse returns a ParseError so the Candidate Search layer can treat the
// tag as "not a version tag" and skip it rather than fail the whole walk.
// A leading "v" is never stripped on its own — a bare SemVer string is all
// this accepts unless tagPrefix itself is configured to absorb it (e.g.
// "v"), matching minver's --tag-prefix behavior.
//
// Before attempting the full blang/semver parse, Parse runs text through
// golang.org/x/mod/semver.IsValid as a cheap rejection filter — most
// non-version tags (branch-style names, arbitrary release labels) fail
// this check in a handful of instructions, avoiding the heavier validating
// parser for the common case of a history with many non-version tags.
func Parse(text, tagPrefix string) (Version, error) {
	rest := text
	if tagPrefix != "" {
		if !strings.HasPrefix(text, tagPrefix) {
			return Version{}, &errs.ParseError{Type: "Version", Value: text}
		}
		rest = text[len(tagPrefix):]
	}

	if !xmodsemver.IsValid("v" + rest) {
		return Version{}, &errs.ParseError{Type: "Version", Value: text}
	}

	bv, err := bsemver.Parse(rest)
	if err != nil {
		return Version{}, &errs.ParseError{Type: "Version", Value: text}
	}

	return fromBlang(bv), nil
}

// String renders v as "Major.Minor.Patch[-Prerelease][+Metadata]".
func (v Version) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

func (v Version) toBlang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlang(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	var metadata string
	if len(bv.Build) > 0 {
		metadata = strings.Join(bv.Build, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   metadata,
	}
}

// Validate reports whether v is a well-formed SemVer 2.0 version: Major,
// Minor, Patch non-negative, and Prerelease/Metadata (if present) built
// from valid dot-separated identifiers.
func (v Version) Validate() error {
	if v.Major < 0 {
		return &errs.ValidationError{Type: "Version", Field: "Major", Reason: "must be non-negative"}
	}
	if v.Minor < 0 {
		return &errs.ValidationError{Type: "Version", Field: "Minor", Reason: "must be non-negative"}
	}
	if v.Patch < 0 {
		return &errs.ValidationError{Type: "Version", Field: "Patch", Reason: "must be non-negative"}
	}

	if _, err := v.toBlang(); err != nil {
		return &errs.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}

	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no prerelease or build
// metadata. "0.0.0-alpha" is not zero — it carries semantic meaning beyond
// the numeric core.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// Compare reports v's precedence relative to other per SemVer 2.0 §11:
// -1 if v < other, 0 if equal, +1 if v > other. Build metadata never
// affects the result.
func (v Version) Compare(other Version) int {
	bv, err := v.toBlang()
	if err != nil {
		return compareCore(v, other)
	}
	bother, err := other.toBlang()
	if err != nil {
		return compareCore(v, other)
	}
	return bv.Compare(bother)
}

func compareCore(v, other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v has lower SemVer precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have identical SemVer precedence —
// build metadata is ignored, so 1.0.0+a equals 1.0.0+b.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Greater reports whether v has higher SemVer precedence than other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// Redacted is identical to String — versions are never sensitive.
func (v Version) Redacted() string {
	return v.String()
}

// MarshalJSON serializes v as its canonical string form.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON parses a JSON string into v with no tag prefix stripping
// (used for config/override values, which carry a bare version).
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errs.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	parsed, err := Parse(s, "")
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML serializes v as its canonical string form.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML parses a YAML scalar into v with no tag prefix stripping.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errs.UnmarshalError{Type: "Version", Reason: err.Error()}
	}

	parsed, err := Parse(s, "")
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
