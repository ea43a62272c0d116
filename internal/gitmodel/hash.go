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

// Package gitmodel holds the Git domain identities the resolver walks:
// commit object ids, tags, refs, and commit metadata. It mirrors Git's own
// object model closely enough that internal/gitadapter can translate
// go-git/v5 values into it with no loss of information.
package gitmodel

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/model"
)

const (
	// HashHexSizeSHA1 is the length of a canonical SHA-1 Git object id.
	HashHexSizeSHA1 = 40

	// HashHexSizeSHA256 is the length of a canonical SHA-256 Git object id.
	HashHexSizeSHA256 = 64

	// HashShortLen is the length used for abbreviated display hashes.
	HashShortLen = 7
)

// hashHexPattern matches a normalized (lowercase, untrimmed) SHA-1 or
// SHA-256 object id.
const hashHexPattern = `^(?:[0-9a-f]{40}|[0-9a-f]{64})$`

// HashHexRegexp is the compiled form of hashHexPattern. Prefer ParseHash or
// Hash.Validate over matching against this directly.
var HashHexRegexp = regexp.MustCompile(hashHexPattern)

// Hash is a canonical Git commit object id. The zero value (empty string)
// is valid and means "no commit attached".
//
// Hash values are always fully expanded, lowercase, and either 40 (SHA-1)
// or 64 (SHA-256) hex characters. Abbreviated hashes only ever appear in
// display output via Short.
type Hash string

// String returns the full lowercase hex object id, or "" for the zero value.
func (h Hash) String() string {
	return string(h)
}

// Redacted returns Short — commit ids are not sensitive, but the
// abbreviated form keeps resolver trace logs readable.
func (h Hash) Redacted() string {
	return h.Short()
}

// TypeName returns "Hash".
func (h Hash) TypeName() string {
	return "Hash"
}

// IsZero reports whether h carries no commit id.
func (h Hash) IsZero() bool {
	return h == ""
}

// Equal reports whether h and other are the identical object id.
func (h Hash) Equal(other Hash) bool {
	return h == other
}

// Short returns the first HashShortLen characters of h, or the full string
// if h is shorter than that (including the zero value).
func (h Hash) Short() string {
	str := string(h)
	if len(str) < HashShortLen {
		return str
	}
	return str[:HashShortLen]
}

// IsSHA1 reports whether h has SHA-1 length (40 hex characters).
func (h Hash) IsSHA1() bool {
	return len(h) == HashHexSizeSHA1
}

// IsSHA256 reports whether h has SHA-256 length (64 hex characters).
func (h Hash) IsSHA256() bool {
	return len(h) == HashHexSizeSHA256
}

// Validate reports whether h is the zero value or a well-formed lowercase
// SHA-1/SHA-256 hex object id.
func (h Hash) Validate() error {
	if h.IsZero() {
		return nil
	}

	str := string(h)

	if len(str) != HashHexSizeSHA1 && len(str) != HashHexSizeSHA256 {
		return &errs.ValidationError{
			Type:   h.TypeName(),
			Reason: "length must be 40 (SHA-1) or 64 (SHA-256) hex characters, got " + strconv.Itoa(len(str)),
			Value:  str,
		}
	}

	if !HashHexRegexp.MatchString(str) {
		return &errs.ValidationError{
			Type:   h.TypeName(),
			Reason: "must be lowercase hexadecimal [0-9a-f]",
			Value:  str,
		}
	}

	return nil
}

// MarshalJSON serializes h as a JSON string, refusing to marshal an invalid
// value.
func (h Hash) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(h))
}

// UnmarshalJSON parses a JSON string into h via ParseHash, normalizing case
// and trimming whitespace before validating.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errs.UnmarshalError{Type: h.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParseHash(str)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}

// MarshalYAML serializes h as a YAML scalar, refusing to marshal an invalid
// value.
func (h Hash) MarshalYAML() (interface{}, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return string(h), nil
}

// UnmarshalYAML parses a YAML scalar into h via ParseHash.
func (h *Hash) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errs.UnmarshalError{Type: h.TypeName(), Reason: err.Error()}
	}

	parsed, err := ParseHash(str)
	if err != nil {
		return err
	}

	*h = parsed
	return nil
}

// ParseHash trims whitespace, lowercases, and validates s, returning the
// normalized Hash. The empty string parses successfully to the zero value.
func ParseHash(s string) (Hash, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	hash := Hash(normalized)
	if err := hash.Validate(); err != nil {
		return "", &errs.ParseError{Type: "Hash", Value: s}
	}

	return hash, nil
}

var _ model.Model = (*Hash)(nil)
