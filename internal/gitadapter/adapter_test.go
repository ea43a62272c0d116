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

package gitadapter_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"verflow.dev/verflow/internal/gitadapter"
)

func TestTryOpen_NotARepository(t *testing.T) {
	dir := t.TempDir()

	_, err := gitadapter.TryOpen(dir)
	if !stderrors.Is(err, gitadapter.ErrNotARepository) {
		t.Errorf("TryOpen() error = %v, want ErrNotARepository", err)
	}
}

func TestHeadCommit_UnbornHead(t *testing.T) {
	dir := t.TempDir()
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}

	repo, err := gitadapter.TryOpen(dir)
	if err != nil {
		t.Fatalf("TryOpen() error = %v", err)
	}

	_, err = repo.HeadCommit()
	if !stderrors.Is(err, gitadapter.ErrUnbornHead) {
		t.Errorf("HeadCommit() error = %v, want ErrUnbornHead", err)
	}
}

// initRepoWithHistory builds a two-commit repository: a root commit tagged
// lightweight "v1.0.0", and a HEAD commit tagged annotated "v1.1.0".
func initRepoWithHistory(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error = %v", err)
	}

	sig := &object.Signature{Name: "Jane Doe", Email: "jane@example.com", When: time.Unix(1700000000, 0)}

	write(t, dir, "a.txt", "first")
	if _, err := wt.Add("a.txt"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	rootHash, err := wt.Commit("root commit", &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if _, err := repo.CreateTag("v1.0.0", rootHash, nil); err != nil {
		t.Fatalf("CreateTag(lightweight) error = %v", err)
	}

	write(t, dir, "b.txt", "second")
	if _, err := wt.Add("b.txt"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	headHash, err := wt.Commit("head commit", &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	if _, err := repo.CreateTag("v1.1.0", headHash, &git.CreateTagOptions{Message: "release 1.1.0", Tagger: sig}); err != nil {
		t.Fatalf("CreateTag(annotated) error = %v", err)
	}

	return dir
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
}

func TestRepository_HeadCommitAndTags(t *testing.T) {
	dir := initRepoWithHistory(t)

	repo, err := gitadapter.TryOpen(dir)
	if err != nil {
		t.Fatalf("TryOpen() error = %v", err)
	}

	head, err := repo.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit() error = %v", err)
	}
	if len(head.Parents) != 1 {
		t.Fatalf("HeadCommit() has %d parents, want 1", len(head.Parents))
	}

	tags, err := repo.Tags()
	if err != nil {
		t.Fatalf("Tags() error = %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("Tags() returned %d tags, want 2", len(tags))
	}

	var sawAnnotated, sawLightweight bool
	for _, tag := range tags {
		switch tag.Name.String() {
		case "v1.1.0":
			sawAnnotated = tag.Annotated
			if tag.Commit.String() != head.Hash.String() {
				t.Errorf("v1.1.0 points at %s, want HEAD %s", tag.Commit, head.Hash)
			}
		case "v1.0.0":
			sawLightweight = !tag.Annotated
		}
	}
	if !sawAnnotated {
		t.Error("expected v1.1.0 to be an annotated tag peeled to HEAD")
	}
	if !sawLightweight {
		t.Error("expected v1.0.0 to be a lightweight tag")
	}

	parents, err := repo.ParentsOf(head)
	if err != nil {
		t.Fatalf("ParentsOf() error = %v", err)
	}
	if len(parents) != 1 {
		t.Fatalf("ParentsOf() returned %d parents, want 1", len(parents))
	}
	if len(parents[0].Parents) != 0 {
		t.Error("root commit should have no parents")
	}
}

func TestRepository_IdOf(t *testing.T) {
	dir := initRepoWithHistory(t)

	repo, err := gitadapter.TryOpen(dir)
	if err != nil {
		t.Fatalf("TryOpen() error = %v", err)
	}
	head, err := repo.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit() error = %v", err)
	}

	if got := repo.IdOf(head); got != head.Hash.String() {
		t.Errorf("IdOf() = %q, want %q", got, head.Hash.String())
	}
}

func TestTryOpen_DetectsDotGitUpward(t *testing.T) {
	dir := initRepoWithHistory(t)
	sub := filepath.Join(dir, "nested", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	repo, err := gitadapter.TryOpen(sub)
	if err != nil {
		t.Fatalf("TryOpen() error = %v", err)
	}
	if _, err := repo.HeadCommit(); err != nil {
		t.Errorf("HeadCommit() from nested dir error = %v", err)
	}
}
