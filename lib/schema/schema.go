// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// User is the acting identity for a single engine call. It is owned by
// the caller and never mutated by the engine.
//
// A nil Features slice means the user object is structurally
// incomplete (the session collaborator did not resolve permissions)
// and the engine rejects it as an argument error. An empty non-nil
// slice is a valid user with zero permissions, which produces silent
// denials rather than errors.
type User struct {
	// ID is the user's identifier, compared against Resource.ID for
	// ownership-scoped features.
	ID string `json:"id" cbor:"1,keyasint"`

	// Features is the set of feature identifiers granted to this
	// user. Membership is exact: composite identifiers like
	// "update:user:others" are opaque catalog entries, not parsed
	// hierarchies.
	Features []string `json:"features" cbor:"2,keyasint"`
}

// HasFeature reports whether the user holds the given feature. Safe on
// a nil receiver; a nil user holds nothing.
func (u *User) HasFeature(feature string) bool {
	if u == nil {
		return false
	}
	for _, held := range u.Features {
		if held == feature {
			return true
		}
	}
	return false
}

// Resource identifies the entity a feature is exercised against. The
// engine uses it only for the ownership comparison User.ID ==
// Resource.ID. For resources owned by a user other than themselves
// (e.g. a content entry), callers set ID to the owning user's
// identifier.
type Resource struct {
	// ID is the identifier compared against the acting user's ID.
	ID string `json:"id" cbor:"1,keyasint"`
}

// Payload is an arbitrary mapping of field name to value. Inbound
// payloads are fully untrusted. The engine never mutates a Payload it
// receives; filtering allocates a new map.
//
// An untyped nil value marks a field as unset. The cleanup phase of
// filtering strips such keys so that enumeration of a filtered payload
// yields only meaningfully-set fields.
type Payload = map[string]any
