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

// Package model defines the core contracts that verflow's domain value
// types implement: the Git identities in internal/gitmodel and the SemVer
// value types in internal/semver. The resolver's Config and Candidate types
// implement only parts of it (string forms, TypeName, IsZero; Config also
// Validate and YAML). Any type implementing Model gains validation, JSON/YAML
// serialization, safe logging, a canonical type name, and zero-value
// detection, so the resolver can treat all of its data as a single family
// of well-behaved values instead of ad-hoc structs.
//
// Implementations are treated as immutable value types. Methods defined on
// Model SHOULD NOT mutate the receiver unless explicitly documented.
// Concurrent reads are safe; concurrent writes require external
// synchronization.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining every contract a verflow domain type
// MUST satisfy: Validatable for invariant checking, Serializable for
// round-trip JSON/YAML, Loggable for safe and unsafe string forms,
// Identifiable for a canonical type name, and ZeroCheckable for empty-value
// detection.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is satisfied by types that can check their own invariants.
// Validate MUST be fast, deterministic, idempotent, side-effect free, and
// MUST NOT mutate the receiver. It returns nil if and only if the instance
// is fully valid; otherwise the returned error MUST name the offending
// field and the rule it broke (e.g. "Hash: not a valid SHA-1/SHA-256 hex
// id"), not a generic "invalid" message.
type Validatable interface {
	Validate() error
}

// Serializable is satisfied by types that round-trip through JSON and YAML.
// Implementations MUST validate before marshaling (refusing to serialize an
// invalid instance) and after unmarshaling (refusing to leave the receiver
// in an invalid state). The type-alias pattern avoids infinite recursion:
//
//	func (v Version) MarshalJSON() ([]byte, error) {
//	    if err := v.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
//	    }
//	    type alias Version
//	    return json.Marshal((alias)(v))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is satisfied by types that provide both a safe and an unsafe
// string representation. Redacted MUST hide anything a build log should not
// leak (commit author emails, build-metadata strings a caller marked
// sensitive) while remaining useful for diagnosis; String MAY show
// everything and exists for tests and local debugging, never for
// production log sinks.
type Loggable interface {
	// Redacted returns a string safe for the Logger Port's Info/Warn/Error
	// sinks. It MUST NOT mutate the receiver and MUST be cheap to call.
	Redacted() string

	// String returns a full, possibly sensitive, representation. Use only
	// in tests and local debugging.
	String() string
}

// Identifiable is satisfied by types that know their own canonical name.
// TypeName MUST be a compile-time constant per type (e.g. "Hash", "Tag",
// "Version", "Candidate") used to build consistent error and log messages
// across the resolver.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is satisfied by types that can report whether they hold no
// meaningful data. The resolver relies on this to distinguish "no tag
// matched this commit" (zero TagName) from "the tag-version index is
// empty" and similar optional-value situations.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is satisfied by types with a domain-specific equality check,
// such as Version.Equal, which compares by SemVer precedence rather than
// field by field.
type Comparable[T any] interface {
	Equal(other T) bool
}
