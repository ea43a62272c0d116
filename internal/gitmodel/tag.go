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
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/model"
)

const (
	// TagNameMinLen is the minimum rune length of a non-zero TagName.
	TagNameMinLen = 1

	// TagNameMaxLen is the maximum rune length of a TagName, chosen to
	// comfortably fit hierarchical names like "modules/serviceA/v1.2.3".
	TagNameMaxLen = 256

	// TagMessageMaxLen bounds an annotated tag's message, in bytes.
	TagMessageMaxLen = 65536
)

// tagNamePattern is intentionally permissive — it accepts the full range of
// tag conventions repositories actually use (plain versions, hierarchical
// paths, semver build metadata) rather than the stricter git-check-ref-format
// rules, which the Candidate Search layer never needs to enforce.
const tagNamePattern = `^[a-zA-Z0-9._/@{}\-^~:+]+$`

// TagNameRegexp is the compiled form of tagNamePattern.
var TagNameRegexp = regexp.MustCompile(tagNamePattern)

// TagName is a Git tag name without its "refs/tags/" prefix. The zero value
// (empty string) means "no tag specified".
type TagName string

// ParseTagName trims whitespace and validates s, returning the zero value
// for an empty (or all-whitespace) input.
func ParseTagName(s string) (TagName, error) {
	normalized := strings.TrimSpace(s)
	if normalized == "" {
		return TagName(""), nil
	}

	tagName := TagName(normalized)
	if err := tagName.Validate(); err != nil {
		return "", err
	}

	return tagName, nil
}

var _ model.Model = (*TagName)(nil)

// String returns tn unchanged.
func (tn TagName) String() string {
	return string(tn)
}

// Redacted returns tn unchanged — tag names are public release identifiers.
func (tn TagName) Redacted() string {
	return string(tn)
}

// TypeName returns "TagName".
func (tn TagName) TypeName() string {
	return "TagName"
}

// IsZero reports whether tn carries no name.
func (tn TagName) IsZero() bool {
	return tn == ""
}

// Equal reports whether tn and other are identical (case-sensitive).
func (tn TagName) Equal(other TagName) bool {
	return tn == other
}

// Validate reports whether tn is the zero value or a well-formed tag name:
// 1-256 runes, printable ASCII, no leading/trailing whitespace.
func (tn TagName) Validate() error {
	if tn.IsZero() {
		return nil
	}

	str := string(tn)

	if strings.TrimSpace(str) != str {
		return &errs.ValidationError{Type: tn.TypeName(), Reason: "must not have leading or trailing whitespace", Value: str}
	}

	runeCount := len([]rune(str))
	if runeCount < TagNameMinLen || runeCount > TagNameMaxLen {
		return &errs.ValidationError{
			Type:   tn.TypeName(),
			Reason: fmt.Sprintf("length must be between %d and %d runes, got %d", TagNameMinLen, TagNameMaxLen, runeCount),
			Value:  str,
		}
	}

	if !TagNameRegexp.MatchString(str) {
		return &errs.ValidationError{Type: tn.TypeName(), Reason: "contains characters outside the allowed tag name set", Value: str}
	}

	for _, r := range str {
		if unicode.IsControl(r) || r > unicode.MaxASCII {
			return &errs.ValidationError{Type: tn.TypeName(), Reason: "must be printable ASCII", Value: str}
		}
	}

	return nil
}

// MarshalJSON serializes tn as a JSON string.
func (tn TagName) MarshalJSON() ([]byte, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(tn))
}

// UnmarshalJSON parses a JSON string into tn via ParseTagName.
func (tn *TagName) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errs.UnmarshalError{Type: tn.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParseTagName(str)
	if err != nil {
		return err
	}

	*tn = parsed
	return nil
}

// MarshalYAML serializes tn as a YAML scalar.
func (tn TagName) MarshalYAML() (interface{}, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}
	type tagName TagName
	return tagName(tn), nil
}

// UnmarshalYAML parses a YAML scalar into tn via ParseTagName.
func (tn *TagName) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errs.UnmarshalError{Type: tn.TypeName(), Reason: err.Error()}
	}

	parsed, err := ParseTagName(str)
	if err != nil {
		return err
	}

	*tn = parsed
	return nil
}

// Tag is a Git tag resolved from the repository. It carries no SemVer
// semantics itself — internal/semver.Parse is responsible for extracting a
// Version from Tag.Name when the resolver builds its Tag-Version Index.
//
// Lightweight tags point directly at a commit: Object equals Commit and
// Annotated is false. Annotated tags wrap a separate tag object: Object is
// the tag object's own hash, Commit is the peeled commit hash, and Annotated
// is true. The resolver always walks Commit, never Object.
type Tag struct {
	Name      TagName `json:"name" yaml:"name"`
	Object    Hash    `json:"object" yaml:"object"`
	Commit    Hash    `json:"commit" yaml:"commit"`
	Annotated bool    `json:"annotated" yaml:"annotated"`
	Message   string  `json:"message,omitempty" yaml:"message,omitempty"`
}

var _ model.Model = (*Tag)(nil)

// NewTag builds and validates a Tag in one step.
func NewTag(name TagName, object, commit Hash, annotated bool, message string) (Tag, error) {
	tag := Tag{Name: name, Object: object, Commit: commit, Annotated: annotated, Message: message}
	if err := tag.Validate(); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// String renders every field except Message, which can be arbitrarily long.
func (t Tag) String() string {
	return fmt.Sprintf("Tag{Name:%s, Object:%s, Commit:%s, Annotated:%t}",
		t.Name.String(), t.Object.String(), t.Commit.String(), t.Annotated)
}

// Redacted is identical to String for Tag — nothing here is sensitive.
func (t Tag) Redacted() string {
	return fmt.Sprintf("Tag{Name:%s, Object:%s, Commit:%s, Annotated:%t}",
		t.Name.Redacted(), t.Object.Redacted(), t.Commit.Redacted(), t.Annotated)
}

// TypeName returns "Tag".
func (t Tag) TypeName() string {
	return "Tag"
}

// IsZero reports whether every field of t is its zero value.
func (t Tag) IsZero() bool {
	return t.Name.IsZero() && t.Object.IsZero() && t.Commit.IsZero() && !t.Annotated && t.Message == ""
}

// Equal reports whether t and other match in every field.
func (t Tag) Equal(other Tag) bool {
	return t.Name.Equal(other.Name) && t.Object.Equal(other.Object) &&
		t.Commit.Equal(other.Commit) && t.Annotated == other.Annotated && t.Message == other.Message
}

// Validate checks Name/Object/Commit are non-zero and well-formed, that
// lightweight tags (Annotated == false) carry no Message, and that Message
// does not exceed TagMessageMaxLen.
func (t Tag) Validate() error {
	if t.Name.IsZero() {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Name", Reason: "must not be empty"}
	}
	if err := t.Name.Validate(); err != nil {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Name", Reason: err.Error()}
	}

	if t.Object.IsZero() {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Object", Reason: "must not be empty"}
	}
	if err := t.Object.Validate(); err != nil {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Object", Reason: err.Error()}
	}

	if t.Commit.IsZero() {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Commit", Reason: "must not be empty"}
	}
	if err := t.Commit.Validate(); err != nil {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Commit", Reason: err.Error()}
	}

	if !t.Annotated && t.Message != "" {
		return &errs.ValidationError{Type: t.TypeName(), Field: "Message", Reason: "must be empty on a lightweight tag"}
	}
	if len(t.Message) > TagMessageMaxLen {
		return &errs.ValidationError{
			Type:   t.TypeName(),
			Field:  "Message",
			Reason: fmt.Sprintf("exceeds maximum length of %d bytes", TagMessageMaxLen),
		}
	}

	return nil
}

// MarshalJSON serializes t as a JSON object, refusing to marshal an invalid
// value.
func (t Tag) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	type tag Tag
	return json.Marshal(tag(t))
}

// UnmarshalJSON decodes a JSON object into t and validates the result.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type tag Tag
	if err := json.Unmarshal(data, (*tag)(t)); err != nil {
		return &errs.UnmarshalError{Type: t.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML serializes t as a YAML object, refusing to marshal an invalid
// value.
func (t Tag) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	type tag Tag
	return tag(t), nil
}

// UnmarshalYAML decodes a YAML object into t and validates the result.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	type tag Tag
	if err := node.Decode((*tag)(t)); err != nil {
		return &errs.UnmarshalError{Type: t.TypeName(), Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return nil
}
