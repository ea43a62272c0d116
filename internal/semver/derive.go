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

package semver

import (
	"regexp"
	"strconv"
	"strings"

	errs "verflow.dev/verflow/internal/errs"
)

// buildMetadataIdentifierPattern is SemVer 2.0 §10's grammar for a single
// dot-separated build metadata identifier.
var buildMetadataIdentifierPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// WithHeight derives the version the resolver reports for a commit `height`
// steps above the nearest tagged ancestor.
//
// If height is zero, v is returned unchanged — the commit is itself tagged.
//
// If v already carries a pre-release (the nearest ancestor tag was itself a
// pre-release), height is appended as a new numeric pre-release identifier
// and Major/Minor/Patch are left untouched: the commit is still heading
// toward that same pre-release.
//
// Otherwise v is a release version, and the commit above it is assumed to be
// working toward the next release: autoIncrement selects which of
// Major/Minor/Patch to bump (Patch when autoIncrement is not one of the
// three named parts), defaultPreReleaseIdentifiers becomes the new
// pre-release sequence, and height is appended as its final numeric
// identifier.
func (v Version) WithHeight(height int, autoIncrement VersionPart, defaultPreReleaseIdentifiers []string) Version {
	if height == 0 {
		return v
	}

	heightID := strconv.Itoa(height)

	if v.Prerelease != "" {
		next := v
		next.Prerelease = v.Prerelease + "." + heightID
		return next
	}

	next := v
	switch autoIncrement {
	case Major:
		next.Major, next.Minor, next.Patch = v.Major+1, 0, 0
	case Minor:
		next.Minor, next.Patch = v.Minor+1, 0
	default:
		next.Patch = v.Patch + 1
	}

	identifiers := append(append([]string{}, defaultPreReleaseIdentifiers...), heightID)
	next.Prerelease = strings.Join(identifiers, ".")
	return next
}

// AddBuildMetadata returns a copy of v with build metadata bm attached. An
// empty bm is a no-op. Each dot-separated identifier in bm must match
// SemVer 2.0's build metadata grammar ([0-9A-Za-z-]+); the first identifier
// that does not causes AddBuildMetadata to fail rather than silently drop
// or mangle it.
func (v Version) AddBuildMetadata(bm string) (Version, error) {
	if bm == "" {
		return v, nil
	}

	for _, id := range strings.Split(bm, ".") {
		if !buildMetadataIdentifierPattern.MatchString(id) {
			return Version{}, &errs.ValidationError{
				Type:   "Version",
				Field:  "Metadata",
				Reason: "build metadata identifier " + strconv.Quote(id) + " must match [0-9A-Za-z-]+",
				Value:  bm,
			}
		}
	}

	next := v
	next.Metadata = bm
	return next, nil
}

// Satisfying raises v to minMajorMinor when v's own Major.Minor falls below
// it, the way the resolver's --minimum-major-minor flag floors a version
// computed purely from tag history. If v already meets or exceeds the
// floor, v is returned unchanged, build metadata and all. Otherwise the
// result is built fresh: Major and Minor come from minMajorMinor, Patch is
// reset to 0, Prerelease becomes defaultPreReleaseIdentifiers, and any
// build metadata v carried is dropped — it described a version this result
// no longer is.
func (v Version) Satisfying(minMajorMinor MajorMinor, defaultPreReleaseIdentifiers []string) Version {
	if (MajorMinor{Major: v.Major, Minor: v.Minor}).Compare(minMajorMinor) >= 0 {
		return v
	}

	return Version{
		Major:      minMajorMinor.Major,
		Minor:      minMajorMinor.Minor,
		Patch:      0,
		Prerelease: strings.Join(defaultPreReleaseIdentifiers, "."),
	}
}
