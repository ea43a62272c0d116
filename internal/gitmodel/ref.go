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

package gitmodel

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/model"
)

const (
	// RefNameMinLen is the minimum rune length of a non-zero RefName.
	RefNameMinLen = 1

	// RefNameMaxLen is the maximum rune length of a RefName, generous enough
	// for deeply nested refs like refs/remotes/origin/feature/team/task-123.
	RefNameMaxLen = 256
)

// refNamePattern accepts the full range of strings the Git Adapter reports
// back from go-git: branch and tag refs, the special HEAD ref, and full or
// abbreviated commit hashes it falls back to when a ref is detached.
const refNamePattern = `^[a-zA-Z0-9._/@{}\-^~:]+$`

// RefNameRegexp is the compiled form of refNamePattern.
var RefNameRegexp = regexp.MustCompile(refNamePattern)

// RefName is a symbolic Git reference name as reported by the Git Adapter:
// a branch, a tag, HEAD, or a commit hash used in its place. The zero value
// (empty string) means "no ref", used when the adapter cannot name what
// HEAD currently points at (a detached, anonymous state).
type RefName string

// ParseRefName trims whitespace and validates s, returning the zero value
// for an empty (or all-whitespace) input.
func ParseRefName(s string) (RefName, error) {
	normalized := strings.TrimSpace(s)
	if normalized == "" {
		return RefName(""), nil
	}

	refName := RefName(normalized)
	if err := refName.Validate(); err != nil {
		return "", err
	}

	return refName, nil
}

var _ model.Model = (*RefName)(nil)

// String returns rn unchanged.
func (rn RefName) String() string {
	return string(rn)
}

// Redacted returns rn unchanged — ref names are not sensitive.
func (rn RefName) Redacted() string {
	return string(rn)
}

// TypeName returns "RefName".
func (rn RefName) TypeName() string {
	return "RefName"
}

// IsZero reports whether rn carries no name.
func (rn RefName) IsZero() bool {
	return rn == ""
}

// Equal reports whether rn and other are identical (case-sensitive).
func (rn RefName) Equal(other RefName) bool {
	return rn == other
}

// Validate reports whether rn is the zero value or a well-formed ref name:
// 1-256 runes, printable ASCII, no leading/trailing whitespace.
func (rn RefName) Validate() error {
	if rn.IsZero() {
		return nil
	}

	str := string(rn)

	if strings.TrimSpace(str) != str {
		return &errs.ValidationError{Type: rn.TypeName(), Reason: "must not have leading or trailing whitespace", Value: str}
	}

	runeCount := len([]rune(str))
	if runeCount < RefNameMinLen || runeCount > RefNameMaxLen {
		return &errs.ValidationError{Type: rn.TypeName(), Reason: "length out of range", Value: str}
	}

	if !RefNameRegexp.MatchString(str) {
		return &errs.ValidationError{Type: rn.TypeName(), Reason: "contains characters outside the allowed ref name set", Value: str}
	}

	for _, r := range str {
		if unicode.IsControl(r) || r > unicode.MaxASCII {
			return &errs.ValidationError{Type: rn.TypeName(), Reason: "must be printable ASCII", Value: str}
		}
	}

	return nil
}

// MarshalJSON serializes rn as a JSON string.
func (rn RefName) MarshalJSON() ([]byte, error) {
	if err := rn.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(rn))
}

// UnmarshalJSON parses a JSON string into rn via ParseRefName.
func (rn *RefName) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errs.UnmarshalError{Type: rn.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParseRefName(str)
	if err != nil {
		return err
	}

	*rn = parsed
	return nil
}

// MarshalYAML serializes rn as a YAML scalar.
func (rn RefName) MarshalYAML() (interface{}, error) {
	if err := rn.Validate(); err != nil {
		return nil, err
	}
	type refName RefName
	return refName(rn), nil
}

// UnmarshalYAML parses a YAML scalar into rn via ParseRefName.
func (rn *RefName) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errs.UnmarshalError{Type: rn.TypeName(), Reason: err.Error()}
	}

	parsed, err := ParseRefName(str)
	if err != nil {
		return err
	}

	*rn = parsed
	return nil
}

// RefKind classifies a RefName by namespace: branch, tag, HEAD, or a bare
// hash, so a caller can distinguish "HEAD is on a branch" from "HEAD is
// detached at a commit" without re-parsing the RefName string itself. The
// Git Adapter does not use it; HeadCommit resolves HEAD without classifying
// the ref.
type RefKind uint8

const (
	// RefKindUnknown is the zero value: the ref was not classified.
	RefKindUnknown RefKind = iota

	// RefKindBranch is a local branch under refs/heads/.
	RefKindBranch

	// RefKindRemoteBranch is a remote-tracking branch under refs/remotes/.
	RefKindRemoteBranch

	// RefKindTag is a tag under refs/tags/.
	RefKindTag

	// RefKindHead is the symbolic HEAD ref itself.
	RefKindHead

	// RefKindHash is a detached HEAD pointing directly at a commit object
	// id rather than a symbolic ref.
	RefKindHash
)

// ClassifyRefName derives a RefKind from the structure of name: a full ref
// path such as go-git's plumbing.Reference.Name(), "HEAD", or a bare
// commit hash for a detached HEAD.
func ClassifyRefName(name RefName) RefKind {
	str := string(name)
	switch {
	case str == "":
		return RefKindUnknown
	case str == "HEAD":
		return RefKindHead
	case strings.HasPrefix(str, "refs/heads/"):
		return RefKindBranch
	case strings.HasPrefix(str, "refs/remotes/"):
		return RefKindRemoteBranch
	case strings.HasPrefix(str, "refs/tags/"):
		return RefKindTag
	case HashHexRegexp.MatchString(str):
		return RefKindHash
	default:
		return RefKindUnknown
	}
}

// ParseRefKind parses a case-insensitive kind name into a RefKind.
func ParseRefKind(s string) (RefKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unknown", "":
		return RefKindUnknown, nil
	case "branch":
		return RefKindBranch, nil
	case "remote-branch":
		return RefKindRemoteBranch, nil
	case "tag":
		return RefKindTag, nil
	case "head":
		return RefKindHead, nil
	case "hash":
		return RefKindHash, nil
	default:
		return RefKindUnknown, &errs.ParseError{Type: "RefKind", Value: s}
	}
}

var _ model.Model = (*RefKind)(nil)

// String returns the lowercase canonical name of rk.
func (rk RefKind) String() string {
	switch rk {
	case RefKindUnknown:
		return "unknown"
	case RefKindBranch:
		return "branch"
	case RefKindRemoteBranch:
		return "remote-branch"
	case RefKindTag:
		return "tag"
	case RefKindHead:
		return "head"
	case RefKindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Redacted is identical to String — ref kinds carry no sensitive data.
func (rk RefKind) Redacted() string {
	return rk.String()
}

// TypeName returns "RefKind".
func (rk RefKind) TypeName() string {
	return "RefKind"
}

// IsZero reports whether rk equals RefKindUnknown.
func (rk RefKind) IsZero() bool {
	return rk == RefKindUnknown
}

// Equal reports whether rk and other name the same kind.
func (rk RefKind) Equal(other RefKind) bool {
	return rk == other
}

// Validate reports whether rk is one of the defined constants.
func (rk RefKind) Validate() error {
	if rk > RefKindHash {
		return &errs.ValidationError{Type: rk.TypeName(), Reason: "not a recognized RefKind", Value: uint8(rk)}
	}
	return nil
}

// MarshalJSON serializes rk as its lowercase string name.
func (rk RefKind) MarshalJSON() ([]byte, error) {
	if err := rk.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(rk.String())
}

// UnmarshalJSON parses a JSON string into rk via ParseRefKind.
func (rk *RefKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errs.UnmarshalError{Type: rk.TypeName(), Data: data, Reason: err.Error()}
	}
	parsed, err := ParseRefKind(str)
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}

// MarshalYAML serializes rk as its lowercase string name.
func (rk RefKind) MarshalYAML() (interface{}, error) {
	if err := rk.Validate(); err != nil {
		return nil, err
	}
	return rk.String(), nil
}

// UnmarshalYAML parses a YAML scalar into rk via ParseRefKind.
func (rk *RefKind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errs.UnmarshalError{Type: rk.TypeName(), Reason: err.Error()}
	}
	parsed, err := ParseRefKind(str)
	if err != nil {
		return err
	}
	*rk = parsed
	return nil
}
