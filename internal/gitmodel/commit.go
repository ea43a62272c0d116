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
	"strings"

	"gopkg.in/yaml.v3"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/model"
)

const (
	// CommitMessageMaxLen bounds a commit message, in bytes.
	CommitMessageMaxLen = 1048576

	// CommitSummaryMaxLen bounds a commit's first line, in bytes.
	CommitSummaryMaxLen = 512

	// CommitParentsMaxCount bounds how many parents a commit can carry.
	// Candidate Search pushes every parent onto its frontier, so this also
	// bounds the branching factor of a single step.
	CommitParentsMaxCount = 64
)

// Commit is a Git commit as Candidate Search walks it: its own id, its
// parents in Git's recorded order, and the author/committer signatures.
// Parent order matters — Candidate Search pushes Parents onto its LIFO
// frontier in reverse so the first parent is explored first, matching
// "git log"'s default first-parent-biased traversal.
type Commit struct {
	Hash      Hash      `json:"hash" yaml:"hash"`
	Parents   []Hash    `json:"parents" yaml:"parents"`
	Author    Signature `json:"author" yaml:"author"`
	Committer Signature `json:"committer" yaml:"committer"`
	Message   string    `json:"message" yaml:"message"`
	Summary   string    `json:"summary" yaml:"summary"`
}

var _ model.Model = (*Commit)(nil)

// NewCommit builds and validates a Commit. If summary is empty it is
// derived from the first line of message.
func NewCommit(hash Hash, parents []Hash, author, committer Signature, message, summary string) (Commit, error) {
	if summary == "" && message != "" {
		if lines := strings.Split(message, "\n"); len(lines) > 0 {
			summary = strings.TrimSpace(lines[0])
		}
	}

	commit := Commit{
		Hash:      hash,
		Parents:   parents,
		Author:    author,
		Committer: committer,
		Message:   message,
		Summary:   summary,
	}

	if err := commit.Validate(); err != nil {
		return Commit{}, err
	}

	return commit, nil
}

// String renders Hash, parent count, author name, and summary — Message and
// Committer are omitted as they can be long or duplicate Author.
func (c Commit) String() string {
	return fmt.Sprintf("Commit{Hash:%s, Parents:%d, Author:%s, Summary:%s}",
		c.Hash.String(), len(c.Parents), c.Author.Name, c.Summary)
}

// Redacted is identical to String except Hash is abbreviated.
func (c Commit) Redacted() string {
	return fmt.Sprintf("Commit{Hash:%s, Parents:%d, Author:%s, Summary:%s}",
		c.Hash.Redacted(), len(c.Parents), c.Author.Name, c.Summary)
}

// TypeName returns "Commit".
func (c Commit) TypeName() string {
	return "Commit"
}

// IsZero reports whether every field of c is its zero value.
func (c Commit) IsZero() bool {
	return c.Hash.IsZero() && len(c.Parents) == 0 && c.Author.IsZero() &&
		c.Committer.IsZero() && c.Message == "" && c.Summary == ""
}

// Equal reports whether c and other match in every field, including parent
// order.
func (c Commit) Equal(other Commit) bool {
	if !c.Hash.Equal(other.Hash) || !c.Author.Equal(other.Author) ||
		!c.Committer.Equal(other.Committer) || c.Message != other.Message || c.Summary != other.Summary {
		return false
	}
	if len(c.Parents) != len(other.Parents) {
		return false
	}
	for i := range c.Parents {
		if !c.Parents[i].Equal(other.Parents[i]) {
			return false
		}
	}
	return true
}

// Validate checks Hash/Author/Committer are non-zero and well-formed, that
// Parents stays within CommitParentsMaxCount and each parent is a valid
// Hash, that Message and Summary are non-empty, use LF endings, and that
// Summary matches Message's first line.
func (c Commit) Validate() error {
	if c.Hash.IsZero() {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Hash", Reason: "must not be empty"}
	}
	if err := c.Hash.Validate(); err != nil {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Hash", Reason: err.Error()}
	}

	if len(c.Parents) > CommitParentsMaxCount {
		return &errs.ValidationError{
			Type:   c.TypeName(),
			Field:  "Parents",
			Reason: fmt.Sprintf("has %d parents, maximum is %d", len(c.Parents), CommitParentsMaxCount),
		}
	}
	for i, parent := range c.Parents {
		if parent.IsZero() {
			return &errs.ValidationError{Type: c.TypeName(), Field: fmt.Sprintf("Parents[%d]", i), Reason: "must not be empty"}
		}
		if err := parent.Validate(); err != nil {
			return &errs.ValidationError{Type: c.TypeName(), Field: fmt.Sprintf("Parents[%d]", i), Reason: err.Error()}
		}
	}

	if c.Author.IsZero() {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Author", Reason: "must not be empty"}
	}
	if err := c.Author.Validate(); err != nil {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Author", Reason: err.Error()}
	}

	if c.Committer.IsZero() {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Committer", Reason: "must not be empty"}
	}
	if err := c.Committer.Validate(); err != nil {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Committer", Reason: err.Error()}
	}

	if c.Message == "" {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Message", Reason: "must not be empty"}
	}
	if len(c.Message) > CommitMessageMaxLen {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Message", Reason: fmt.Sprintf("exceeds maximum length of %d bytes", CommitMessageMaxLen)}
	}
	if strings.Contains(c.Message, "\r") {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Message", Reason: "must use LF line endings, not CR/CRLF"}
	}

	if c.Summary == "" {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Summary", Reason: "must not be empty"}
	}
	if len(c.Summary) > CommitSummaryMaxLen {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Summary", Reason: fmt.Sprintf("exceeds maximum length of %d bytes", CommitSummaryMaxLen)}
	}
	if strings.ContainsAny(c.Summary, "\n\r") {
		return &errs.ValidationError{Type: c.TypeName(), Field: "Summary", Reason: "must not contain newlines"}
	}

	if lines := strings.Split(c.Message, "\n"); len(lines) > 0 {
		if expected := strings.TrimSpace(lines[0]); c.Summary != expected {
			return &errs.ValidationError{
				Type:   c.TypeName(),
				Field:  "Summary",
				Reason: fmt.Sprintf("%q does not match first line of Message %q", c.Summary, expected),
			}
		}
	}

	return nil
}

// MarshalJSON serializes c as a JSON object, refusing to marshal an invalid
// value.
func (c Commit) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type commit Commit
	return json.Marshal(commit(c))
}

// UnmarshalJSON decodes a JSON object into c and validates the result.
func (c *Commit) UnmarshalJSON(data []byte) error {
	type commit Commit
	if err := json.Unmarshal(data, (*commit)(c)); err != nil {
		return &errs.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return nil
}

// MarshalYAML serializes c as a YAML object, refusing to marshal an invalid
// value.
func (c Commit) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type commit Commit
	return commit(c), nil
}

// UnmarshalYAML decodes a YAML object into c and validates the result.
func (c *Commit) UnmarshalYAML(node *yaml.Node) error {
	type commit Commit
	if err := node.Decode((*commit)(c)); err != nil {
		return &errs.UnmarshalError{Type: c.TypeName(), Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return nil
}
