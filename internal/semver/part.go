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

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
)

// VersionPart names one of the three numeric components of a Version.
// The resolver's --auto-increment flag selects a VersionPart to bump when
// deriving a pre-release version for an unreleased commit.
type VersionPart int

const (
	// Major selects the first version component.
	Major VersionPart = iota

	// Minor selects the second version component.
	Minor

	// Patch selects the third version component.
	Patch
)

// String constants used for parsing, serialization, and CLI flag values.
const (
	MajorStr = "major"
	MinorStr = "minor"
	PatchStr = "patch"
)

// ParseVersionPart converts a case-sensitive string into a VersionPart.
func ParseVersionPart(s string) (VersionPart, error) {
	switch s {
	case MajorStr:
		return Major, nil
	case MinorStr:
		return Minor, nil
	case PatchStr:
		return Patch, nil
	default:
		return 0, &errs.ParseError{Type: "VersionPart", Value: s}
	}
}

// String returns the lowercase canonical name of p, or "unknown" if p is
// not one of the defined constants.
func (p VersionPart) String() string {
	switch p {
	case Major:
		return MajorStr
	case Minor:
		return MinorStr
	case Patch:
		return PatchStr
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of Major, Minor, or Patch.
func (p VersionPart) Valid() bool {
	return p == Major || p == Minor || p == Patch
}

// TypeName returns "VersionPart".
func (p VersionPart) TypeName() string {
	return "VersionPart"
}

// Redacted is identical to String — VersionPart carries no sensitive data.
func (p VersionPart) Redacted() string {
	return p.String()
}

// IsZero reports whether p equals Major, its zero value. Major is itself a
// meaningful, valid VersionPart, so IsZero is not an error indicator here.
func (p VersionPart) IsZero() bool {
	return p == Major
}

// Equal reports whether p and other name the same component.
func (p VersionPart) Equal(other VersionPart) bool {
	return p == other
}

// Validate reports whether p is one of the defined constants.
func (p VersionPart) Validate() error {
	if !p.Valid() {
		return &errs.ValidationError{Type: p.TypeName(), Reason: "not a recognized VersionPart", Value: int(p)}
	}
	return nil
}

// MarshalJSON serializes p as its lowercase string name.
func (p VersionPart) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errs.MarshalError{Type: p.TypeName(), Value: int(p)}
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either a string ("major") or a numeric (0, 1, 2)
// JSON representation.
func (p *VersionPart) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errs.UnmarshalError{Type: p.TypeName(), Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errs.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
		}
		parsed, err := ParseVersionPart(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errs.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}
	*p = VersionPart(i)
	if !p.Valid() {
		return &errs.UnmarshalError{Type: p.TypeName(), Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML serializes p as its lowercase string name.
func (p VersionPart) MarshalYAML() (interface{}, error) {
	if !p.Valid() {
		return nil, &errs.MarshalError{Type: p.TypeName(), Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML parses a YAML scalar into p via ParseVersionPart.
func (p *VersionPart) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errs.UnmarshalError{Type: p.TypeName(), Reason: err.Error()}
	}
	parsed, err := ParseVersionPart(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, used by pflag when
// VersionPart is bound as a CLI flag value.
func (p VersionPart) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errs.MarshalError{Type: p.TypeName(), Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *VersionPart) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionPart(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Set implements pflag.Value, used to bind VersionPart directly as the
// --auto-increment flag's value.
func (p *VersionPart) Set(s string) error {
	parsed, err := ParseVersionPart(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p VersionPart) Type() string {
	return "versionPart"
}
