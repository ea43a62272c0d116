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

package resolve

import (
	"context"
	"strings"

	"verflow.dev/verflow/internal/diagnostics"
	"verflow.dev/verflow/internal/gitmodel"
	"verflow.dev/verflow/internal/semver"
)

// ParentReader resolves a commit's parents to full Commit values. The Git
// Adapter's *gitadapter.Repository satisfies this; tests supply an
// in-memory implementation over a hand-built commit graph.
type ParentReader interface {
	ParentsOf(commit gitmodel.Commit) ([]gitmodel.Commit, error)
}

type frontierEntry struct {
	commit gitmodel.Commit
	height int
}

// searchCandidates performs the depth-first, LIFO-frontier walk from head,
// emitting one Candidate per tagged commit it reaches and a single
// synthetic Candidate at any untagged root it reaches. Every commit id is
// visited at most once; ctx is checked between frontier pops so a caller
// can cancel a pathological traversal.
func searchCandidates(
	ctx context.Context,
	reader ParentReader,
	head gitmodel.Commit,
	index []tagVersionIndexEntry,
	defaultPreReleaseIdentifiers []string,
	log diagnostics.Logger,
) ([]Candidate, error) {
	byCommit := make(map[gitmodel.Hash][]tagVersionIndexEntry, len(index))
	for _, entry := range index {
		byCommit[entry.Commit] = append(byCommit[entry.Commit], entry)
	}

	frontier := []frontierEntry{{commit: head, height: 0}}
	visited := make(map[gitmodel.Hash]bool)
	var candidates []Candidate
	nextIndex := 0

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := len(frontier) - 1
		entry := frontier[top]
		frontier = frontier[:top]

		if visited[entry.commit.Hash] {
			continue
		}
		visited[entry.commit.Hash] = true

		if matches, ok := byCommit[entry.commit.Hash]; ok {
			for _, m := range matches {
				c := Candidate{CommitID: entry.commit.Hash, Height: entry.height, Tag: m.Name, Version: m.Version, Index: nextIndex}
				nextIndex++
				if log.DebugEnabled() {
					log.Debug("candidate emitted", diagnostics.Str("commit", c.CommitID.Redacted()), diagnostics.Str("version", c.Version.String()))
				}
				candidates = append(candidates, c)
			}
			continue
		}

		if len(entry.commit.Parents) == 0 {
			// Unlike a tagged candidate's height (edge distance from the
			// tag to HEAD), the synthetic root's height counts the root
			// commit itself, matching minver's untagged-history behavior.
			c := Candidate{
				CommitID: entry.commit.Hash,
				Height:   entry.height + 1,
				Version:  semver.Version{Prerelease: joinIdentifiers(defaultPreReleaseIdentifiers)},
				Index:    nextIndex,
			}
			nextIndex++
			if log.DebugEnabled() {
				log.Debug("synthetic root candidate emitted", diagnostics.Str("commit", c.CommitID.Redacted()))
			}
			candidates = append(candidates, c)
			continue
		}

		parents, err := reader.ParentsOf(entry.commit)
		if err != nil {
			return nil, err
		}
		for i := len(parents) - 1; i >= 0; i-- {
			frontier = append(frontier, frontierEntry{commit: parents[i], height: entry.height + 1})
		}
	}

	return candidates, nil
}

func joinIdentifiers(identifiers []string) string {
	return strings.Join(identifiers, ".")
}
