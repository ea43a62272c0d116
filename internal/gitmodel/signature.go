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
	"net/mail"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/model"
)

const (
	// SignatureNameMaxLength bounds an author/committer name, in bytes.
	SignatureNameMaxLength = 256

	// SignatureEmailMaxLength is RFC 5321's maximum mailbox length.
	SignatureEmailMaxLength = 254
)

// Signature is a Git identity (commit author or committer) with the
// timestamp attached to that role. The resolver does not read Signature
// fields — they play no part in candidate ordering, version precedence, or
// its log output.
type Signature struct {
	Name  string    `json:"name" yaml:"name"`
	Email string    `json:"email" yaml:"email"`
	When  time.Time `json:"when" yaml:"when"`
}

var _ model.Model = (*Signature)(nil)

// NewSignature builds and validates a Signature in one step.
func NewSignature(name, email string, when time.Time) (Signature, error) {
	sig := Signature{Name: name, Email: email, When: when}
	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// String renders every field, including the unredacted email.
func (s Signature) String() string {
	return fmt.Sprintf("Signature{Name:%s, Email:%s, When:%s}", s.Name, s.Email, s.When.Format(time.RFC3339))
}

// Redacted renders Name and When as-is but masks the email's local part,
// e.g. "jane@example.com" becomes "j***@example.com".
func (s Signature) Redacted() string {
	return fmt.Sprintf("Signature{Name:%s, Email:%s, When:%s}", s.Name, redactEmail(s.Email), s.When.Format(time.RFC3339))
}

func redactEmail(email string) string {
	if email == "" {
		return "[empty]"
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "[invalid]"
	}

	localPart := email[:atIndex]
	domain := email[atIndex:]

	return string(localPart[0]) + "***" + domain
}

// TypeName returns "Signature".
func (s Signature) TypeName() string {
	return "Signature"
}

// IsZero reports whether every field of s is its zero value.
func (s Signature) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.When.IsZero()
}

// Equal reports whether s and other match in every field.
func (s Signature) Equal(other Signature) bool {
	return s.Name == other.Name && s.Email == other.Email && s.When.Equal(other.When)
}

// Validate checks Name and Email are non-empty and within their length
// limits, that Email parses as an RFC 5322 address, and that When is set.
func (s Signature) Validate() error {
	if s.Name == "" {
		return &errs.ValidationError{Type: s.TypeName(), Field: "Name", Reason: "must not be empty"}
	}
	if len(s.Name) > SignatureNameMaxLength {
		return &errs.ValidationError{
			Type:   s.TypeName(),
			Field:  "Name",
			Reason: fmt.Sprintf("exceeds maximum length of %d bytes", SignatureNameMaxLength),
		}
	}

	if s.Email == "" {
		return &errs.ValidationError{Type: s.TypeName(), Field: "Email", Reason: "must not be empty"}
	}
	if len(s.Email) > SignatureEmailMaxLength {
		return &errs.ValidationError{
			Type:   s.TypeName(),
			Field:  "Email",
			Reason: fmt.Sprintf("exceeds maximum length of %d bytes", SignatureEmailMaxLength),
		}
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return &errs.ValidationError{Type: s.TypeName(), Field: "Email", Reason: "not a well-formed address: " + err.Error()}
	}

	if s.When.IsZero() {
		return &errs.ValidationError{Type: s.TypeName(), Field: "When", Reason: "must not be zero"}
	}

	return nil
}

// MarshalJSON serializes s as a JSON object, refusing to marshal an invalid
// value.
func (s Signature) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type signature Signature
	return json.Marshal(signature(s))
}

// UnmarshalJSON decodes a JSON object into s and validates the result.
func (s *Signature) UnmarshalJSON(data []byte) error {
	type signature Signature
	if err := json.Unmarshal(data, (*signature)(s)); err != nil {
		return &errs.UnmarshalError{Type: s.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML serializes s as a YAML object, refusing to marshal an invalid
// value.
func (s Signature) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type signature Signature
	return signature(s), nil
}

// UnmarshalYAML decodes a YAML object into s and validates the result.
func (s *Signature) UnmarshalYAML(node *yaml.Node) error {
	type signature Signature
	if err := node.Decode((*signature)(s)); err != nil {
		return &errs.UnmarshalError{Type: s.TypeName(), Reason: err.Error()}
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return nil
}
