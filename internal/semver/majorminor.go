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

package semver

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
)

// MajorMinor is a bare (major, minor) pair with no patch, pre-release, or
// build metadata component. The resolver's --minimum-major-minor flag uses
// it as a lower-bound gate: Version.Satisfying raises a computed Version up
// to this floor when the repository's tag history alone would have placed
// it lower.
type MajorMinor struct {
	Major int
	Minor int
}

// ParseMajorMinor parses "M.m" into a MajorMinor.
func ParseMajorMinor(s string) (MajorMinor, error) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return MajorMinor{}, &errs.ParseError{Type: "MajorMinor", Value: s}
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return MajorMinor{}, &errs.ParseError{Type: "MajorMinor", Value: s}
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return MajorMinor{}, &errs.ParseError{Type: "MajorMinor", Value: s}
	}

	return MajorMinor{Major: major, Minor: minor}, nil
}

// String renders mm as "Major.Minor".
func (mm MajorMinor) String() string {
	return strconv.Itoa(mm.Major) + "." + strconv.Itoa(mm.Minor)
}

// Compare reports mm's ordering relative to other: -1, 0, or +1, comparing
// Major first and Minor second.
func (mm MajorMinor) Compare(other MajorMinor) int {
	if mm.Major != other.Major {
		if mm.Major < other.Major {
			return -1
		}
		return 1
	}
	if mm.Minor != other.Minor {
		if mm.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether mm orders before other.
func (mm MajorMinor) Less(other MajorMinor) bool {
	return mm.Compare(other) < 0
}

// TypeName returns "MajorMinor".
func (mm MajorMinor) TypeName() string {
	return "MajorMinor"
}

// Redacted is identical to String — a major/minor pair is never sensitive.
func (mm MajorMinor) Redacted() string {
	return mm.String()
}

// IsZero reports whether mm is 0.0.
func (mm MajorMinor) IsZero() bool {
	return mm.Major == 0 && mm.Minor == 0
}

// Equal reports whether mm and other name the same pair.
func (mm MajorMinor) Equal(other MajorMinor) bool {
	return mm.Major == other.Major && mm.Minor == other.Minor
}

// Validate reports whether Major and Minor are both non-negative.
func (mm MajorMinor) Validate() error {
	if mm.Major < 0 {
		return &errs.ValidationError{Type: mm.TypeName(), Field: "Major", Reason: "must be non-negative"}
	}
	if mm.Minor < 0 {
		return &errs.ValidationError{Type: mm.TypeName(), Field: "Minor", Reason: "must be non-negative"}
	}
	return nil
}

// MarshalJSON serializes mm as its "M.m" string form.
func (mm MajorMinor) MarshalJSON() ([]byte, error) {
	if err := mm.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(mm.String())
}

// UnmarshalJSON parses a JSON string into mm via ParseMajorMinor.
func (mm *MajorMinor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errs.UnmarshalError{Type: "MajorMinor", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseMajorMinor(s)
	if err != nil {
		return err
	}
	*mm = parsed
	return nil
}

// MarshalYAML serializes mm as its "M.m" string form.
func (mm MajorMinor) MarshalYAML() (interface{}, error) {
	if err := mm.Validate(); err != nil {
		return nil, err
	}
	return mm.String(), nil
}

// UnmarshalYAML parses a YAML scalar into mm via ParseMajorMinor.
func (mm *MajorMinor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errs.UnmarshalError{Type: "MajorMinor", Reason: err.Error()}
	}
	parsed, err := ParseMajorMinor(s)
	if err != nil {
		return err
	}
	*mm = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, used by pflag when
// MajorMinor is bound as a CLI flag value.
func (mm MajorMinor) MarshalText() ([]byte, error) {
	if err := mm.Validate(); err != nil {
		return nil, err
	}
	return []byte(mm.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (mm *MajorMinor) UnmarshalText(text []byte) error {
	parsed, err := ParseMajorMinor(string(text))
	if err != nil {
		return err
	}
	*mm = parsed
	return nil
}

// Set implements pflag.Value, used to bind MajorMinor directly as the
// --minimum-major-minor flag's value.
func (mm *MajorMinor) Set(s string) error {
	parsed, err := ParseMajorMinor(s)
	if err != nil {
		return err
	}
	*mm = parsed
	return nil
}

// Type implements pflag.Value.
func (mm MajorMinor) Type() string {
	return "majorMinor"
}
