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

// Package resolve walks a repository's commit graph from HEAD, finds the
// version-tagged ancestors (or the root if there are none), and derives the
// single SemVer version the resolver reports.
package resolve

import (
	"fmt"

	"verflow.dev/verflow/internal/diagnostics"
	"verflow.dev/verflow/internal/gitmodel"
	"verflow.dev/verflow/internal/semver"
)

// Candidate is one version Candidate Search produced: a tagged commit, or a
// synthetic root when no tag was ever reached. Candidates are immutable and
// live only for the duration of one resolve call.
type Candidate struct {
	CommitID gitmodel.Hash
	Height   int
	Tag      gitmodel.TagName
	Version  semver.Version
	Index    int
}

// String renders every field.
func (c Candidate) String() string {
	return fmt.Sprintf("Candidate{CommitID:%s, Height:%d, Tag:%s, Version:%s, Index:%d}",
		c.CommitID.String(), c.Height, c.Tag.String(), c.Version.String(), c.Index)
}

// Redacted is identical to String except CommitID is abbreviated.
func (c Candidate) Redacted() string {
	return fmt.Sprintf("Candidate{CommitID:%s, Height:%d, Tag:%s, Version:%s, Index:%d}",
		c.CommitID.Redacted(), c.Height, c.Tag.Redacted(), c.Version.String(), c.Index)
}

// TypeName returns "Candidate".
func (c Candidate) TypeName() string {
	return "Candidate"
}

// IsZero reports whether c is the unpopulated zero value.
func (c Candidate) IsZero() bool {
	return c.CommitID.IsZero() && c.Height == 0 && c.Tag.IsZero() && c.Version.IsZero() && c.Index == 0
}

// Synthetic reports whether c was emitted at an untagged root commit rather
// than at a version tag.
func (c Candidate) Synthetic() bool {
	return c.Tag.IsZero()
}

// tagVersionIndexEntry is one parsed tag in the Tag-Version Index: a tag
// whose name, after stripping tagPrefix, parsed as a SemVer 2.0 version.
type tagVersionIndexEntry struct {
	Name    gitmodel.TagName
	Commit  gitmodel.Hash
	Version semver.Version
}

// buildTagVersionIndex parses every tag in tags against tagPrefix, dropping
// (and logging at Debug) any tag whose name does not parse as a version.
// When multiple tags point at the same commit, every one of them appears as
// its own index entry — Candidate Search emits one Candidate per entry.
func buildTagVersionIndex(tags []gitmodel.Tag, tagPrefix string, log diagnostics.Logger) []tagVersionIndexEntry {
	index := make([]tagVersionIndexEntry, 0, len(tags))
	for _, tag := range tags {
		v, err := semver.Parse(tag.Name.String(), tagPrefix)
		if err != nil {
			if log.DebugEnabled() {
				log.Debug("dropping non-version tag", diagnostics.Str("tag", tag.Name.String()))
			}
			continue
		}
		index = append(index, tagVersionIndexEntry{Name: tag.Name, Commit: tag.Commit, Version: v})
	}
	return index
}
