// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Feature identifier constants. These are the known identifiers used
// in User.Features and checked by the sanitization engine at its
// validation boundary.
//
// Identifiers use colon-separated segments by convention
// ("verb:subject" or "verb:subject:scope"), but the segments carry no
// parsing meaning: "update:user" and "update:user:others" are two
// distinct catalog entries related by an explicit override table in
// the policy, never by string decomposition. They are plain strings,
// not a named type, because deployments extend the vocabulary through
// policy documents and the closed-set guarantee comes from catalog
// membership, not the type system.

// User account features. FeatureUpdateUser is ownership-scoped: it
// applies to the acting user's own account unless the actor also
// holds FeatureUpdateUserOthers.
const (
	FeatureCreateUser       = "create:user"
	FeatureReadUser         = "read:user"
	FeatureReadUserSelf     = "read:user:self"
	FeatureReadUserList     = "read:user:list"
	FeatureUpdateUser       = "update:user"
	FeatureUpdateUserOthers = "update:user:others"
)

// Moderation features. Exercised by operators against other users'
// accounts, so they are never ownership-scoped.
const (
	FeatureBanUser  = "ban:user"
	FeatureNukeUser = "nuke:user"
)

// Content features. FeatureUpdateContent compares the acting user
// against the content's owner; FeatureUpdateContentOthers bypasses
// that comparison.
const (
	FeatureCreateContent       = "create:content"
	FeatureReadContent         = "read:content"
	FeatureReadContentList     = "read:content:list"
	FeatureUpdateContent       = "update:content"
	FeatureUpdateContentOthers = "update:content:others"
)

// Session features. Resource-independent: creating or reading a
// session never involves a target resource.
const (
	FeatureCreateSession = "create:session"
	FeatureReadSession   = "read:session"
)
