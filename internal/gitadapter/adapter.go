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

package gitadapter

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	errs "verflow.dev/verflow/internal/errs"
	"verflow.dev/verflow/internal/gitmodel"
)

// Repository is an opened Git working directory. Every method reads through
// to the underlying go-git repository; Repository itself holds no cache.
type Repository struct {
	repo *git.Repository
	dir  string
}

// TryOpen probes dir and each of its ancestors for a .git entry, the way
// "git rev-parse --show-toplevel" does, via go-git's DetectDotGit option.
// A returned error always wraps either ErrNotARepository or an I/O cause;
// callers distinguish the two with errors.Is.
func TryOpen(dir string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return nil, &errs.RepositoryError{Op: "TryOpen", Dir: dir, Err: ErrNotARepository}
		}
		return nil, &errs.RepositoryError{Op: "TryOpen", Dir: dir, Err: err}
	}
	return &Repository{repo: repo, dir: dir}, nil
}

// Close releases resources held by the repository. go-git's filesystem
// storage opens and closes object files per call rather than holding
// handles open across the session, so this is a no-op kept for symmetry
// with callers that always pair TryOpen with a deferred Close.
func (r *Repository) Close() error {
	return nil
}

// HeadCommit returns the commit HEAD currently points at. A repository
// whose branch has no commits yet reports ErrUnbornHead.
func (r *Repository) HeadCommit() (gitmodel.Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
			return gitmodel.Commit{}, &errs.RepositoryError{Op: "HeadCommit", Dir: r.dir, Err: ErrUnbornHead}
		}
		return gitmodel.Commit{}, &errs.RepositoryError{Op: "HeadCommit", Dir: r.dir, Err: err}
	}

	obj, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return gitmodel.Commit{}, &errs.RepositoryError{Op: "HeadCommit", Dir: r.dir, Err: err}
	}

	commit, err := fromObjectCommit(obj)
	if err != nil {
		return gitmodel.Commit{}, &errs.RepositoryError{Op: "HeadCommit", Dir: r.dir, Err: err}
	}
	return commit, nil
}

// Tags returns every tag in the repository, with annotated tags already
// peeled to the commit they ultimately point at. Name().Short() values that
// fail gitmodel validation are skipped rather than failing the whole call —
// a repository with one oddly named tag should not block resolution.
func (r *Repository) Tags() ([]gitmodel.Tag, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, &errs.RepositoryError{Op: "Tags", Dir: r.dir, Err: err}
	}

	var tags []gitmodel.Tag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name, err := gitmodel.ParseTagName(ref.Name().Short())
		if err != nil || name.IsZero() {
			return nil
		}

		tagObj, err := r.repo.TagObject(ref.Hash())
		switch {
		case err == nil:
			commitObj, cerr := tagObj.Commit()
			if cerr != nil {
				return nil
			}
			objectHash, oerr := gitmodel.ParseHash(ref.Hash().String())
			commitHash, cherr := gitmodel.ParseHash(commitObj.Hash.String())
			if oerr != nil || cherr != nil {
				return nil
			}
			tag, nerr := gitmodel.NewTag(name, objectHash, commitHash, true, tagObj.Message)
			if nerr != nil {
				return nil
			}
			tags = append(tags, tag)
		case stderrors.Is(err, plumbing.ErrObjectNotFound):
			hash, herr := gitmodel.ParseHash(ref.Hash().String())
			if herr != nil {
				return nil
			}
			tag, nerr := gitmodel.NewTag(name, hash, hash, false, "")
			if nerr != nil {
				return nil
			}
			tags = append(tags, tag)
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, &errs.RepositoryError{Op: "Tags", Dir: r.dir, Err: err}
	}

	return tags, nil
}

// ParentsOf resolves every hash in commit.Parents to its full Commit, in
// the same order Git recorded them — first parent first.
func (r *Repository) ParentsOf(commit gitmodel.Commit) ([]gitmodel.Commit, error) {
	parents := make([]gitmodel.Commit, 0, len(commit.Parents))
	for _, parentHash := range commit.Parents {
		obj, err := r.repo.CommitObject(plumbing.NewHash(parentHash.String()))
		if err != nil {
			return nil, &errs.RepositoryError{Op: "ParentsOf", Dir: r.dir, Err: err}
		}
		parent, err := fromObjectCommit(obj)
		if err != nil {
			return nil, &errs.RepositoryError{Op: "ParentsOf", Dir: r.dir, Err: err}
		}
		parents = append(parents, parent)
	}
	return parents, nil
}

// IdOf returns commit's hex object id.
func (r *Repository) IdOf(commit gitmodel.Commit) string {
	return commit.Hash.String()
}

func fromObjectCommit(obj *object.Commit) (gitmodel.Commit, error) {
	hash, err := gitmodel.ParseHash(obj.Hash.String())
	if err != nil {
		return gitmodel.Commit{}, err
	}

	parents := make([]gitmodel.Hash, len(obj.ParentHashes))
	for i, p := range obj.ParentHashes {
		parentHash, err := gitmodel.ParseHash(p.String())
		if err != nil {
			return gitmodel.Commit{}, err
		}
		parents[i] = parentHash
	}

	author, err := gitmodel.NewSignature(obj.Author.Name, obj.Author.Email, obj.Author.When)
	if err != nil {
		return gitmodel.Commit{}, err
	}
	committer, err := gitmodel.NewSignature(obj.Committer.Name, obj.Committer.Email, obj.Committer.When)
	if err != nil {
		return gitmodel.Commit{}, err
	}

	return gitmodel.NewCommit(hash, parents, author, committer, obj.Message, "")
}
