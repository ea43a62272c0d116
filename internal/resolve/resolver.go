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
	stderrors "errors"
	"sort"

	"go.uber.org/multierr"

	"verflow.dev/verflow/internal/config"
	"verflow.dev/verflow/internal/diagnostics"
	"verflow.dev/verflow/internal/gitadapter"
	"verflow.dev/verflow/internal/semver"
)

// Resolve computes the SemVer version for the repository rooted at workDir
// per cfg. It never returns an error for the ordinary "not a repository" or
// "no commits yet" situations — those produce a defaulted Version with a
// log line instead. A returned error means the result would be unsafe or
// meaningless: malformed configuration or a Git layer I/O failure.
func Resolve(ctx context.Context, workDir string, cfg config.Config, log diagnostics.Logger) (semver.Version, error) {
	if cfg.VersionOverride != "" {
		return semver.Parse(cfg.VersionOverride, "")
	}

	defaultPreReleaseIdentifiers := cfg.EffectivePreReleaseIdentifiers()
	defaultVersion := semver.Version{Prerelease: joinIdentifiers(defaultPreReleaseIdentifiers)}

	repo, err := gitadapter.TryOpen(workDir)
	if err != nil {
		if stderrors.Is(err, gitadapter.ErrNotARepository) {
			log.Warn("no repository found above this directory", diagnostics.Str("dir", workDir))
			return defaultVersion, nil
		}
		return semver.Version{}, err
	}

	version, resolveErr := resolveWithinRepo(ctx, repo, cfg, defaultPreReleaseIdentifiers, defaultVersion, log)
	// The repository handle is released before this function returns; a
	// failure here is combined with any failure from the walk itself
	// rather than discarded, so a caller sees both causes.
	return version, multierr.Append(resolveErr, repo.Close())
}

func resolveWithinRepo(
	ctx context.Context,
	repo *gitadapter.Repository,
	cfg config.Config,
	defaultPreReleaseIdentifiers []string,
	defaultVersion semver.Version,
	log diagnostics.Logger,
) (semver.Version, error) {
	head, err := repo.HeadCommit()
	if err != nil {
		if stderrors.Is(err, gitadapter.ErrUnbornHead) {
			log.Info("HEAD has no commits yet", diagnostics.Str("dir", cfg.WorkDir))
			return defaultVersion, nil
		}
		return semver.Version{}, err
	}

	tags, err := repo.Tags()
	if err != nil {
		return semver.Version{}, err
	}
	tagIndex := buildTagVersionIndex(tags, cfg.TagPrefix, log)

	candidates, err := searchCandidates(ctx, repo, head, tagIndex, defaultPreReleaseIdentifiers, log)
	if err != nil {
		return semver.Version{}, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if cmp := candidates[i].Version.Compare(candidates[j].Version); cmp != 0 {
			return cmp < 0
		}
		return candidates[i].Index < candidates[j].Index
	})

	selected := candidates[len(candidates)-1]

	version := selected.Version
	if !cfg.IgnoreHeight {
		version = version.WithHeight(selected.Height, cfg.AutoIncrement, defaultPreReleaseIdentifiers)
	}

	version, err = version.AddBuildMetadata(cfg.BuildMetadata)
	if err != nil {
		return semver.Version{}, err
	}

	return version.Satisfying(cfg.MinimumMajorMinor, defaultPreReleaseIdentifiers), nil
}
