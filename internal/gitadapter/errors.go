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

// Package gitadapter opens a Git working directory and exposes the handful
// of read operations the resolver needs, translating go-git/v5's types and
// sentinel errors into internal/gitmodel values and the module's own typed
// errors.
package gitadapter

import "errors"

// ErrNotARepository is the cause wrapped by a RepositoryError from TryOpen
// when no ancestor of the probed directory contains a .git entry.
var ErrNotARepository = errors.New("no .git directory found in this directory or any parent")

// ErrUnbornHead is the cause wrapped by a RepositoryError from HeadCommit
// when HEAD exists but points at a branch with no commits yet.
var ErrUnbornHead = errors.New("HEAD has no commits")
