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

package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
)

// ValidateAll validates every model in models and aggregates every failure
// into a single error via rxmerr.Collector, rather than stopping at the
// first bad entry, so a caller can report every malformed value in one run
// instead of forcing the user through a fix-one-rerun loop.
//
// Empty slices are valid and return nil.
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which
// IsZero reports false. The result is always a fresh, non-nil allocation.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// SafeString returns m.Redacted() unless unsafe is true, in which case it
// returns m.String(). Production log call sites MUST pass false; unsafe is
// reserved for local debugging where the destination is trusted.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}
