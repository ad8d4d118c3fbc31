// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import "github.com/fieldgate/fieldgate/lib/schema"

// Default returns the built-in policy: the user, content, session,
// and moderation features with their whitelists. Deployments without
// a policy file run on this; a loaded file replaces it entirely
// rather than merging.
//
// Conventions worth noting:
//
//   - The "others" override features carry no input whitelist of
//     their own. Overrides bypass only the ownership comparison;
//     projection always uses the requested feature's whitelist, so
//     passing an override feature directly to FilterInput projects to
//     an empty payload.
//   - Privileged account fields (features, tabcoins, tabcash) appear
//     in no input whitelist. That is the point of the engine: a
//     payload claiming them is silently stripped.
func Default() *Policy {
	return &Policy{
		Features: []FeatureDef{
			{
				Name:  schema.FeatureCreateUser,
				Input: []string{"username", "email", "password"},
			},
			{
				Name:   schema.FeatureReadUser,
				Output: []string{"id", "username", "description", "features", "tabcoins", "tabcash", "created_at", "updated_at"},
			},
			{
				Name:   schema.FeatureReadUserSelf,
				Output: []string{"id", "username", "email", "description", "notifications", "features", "tabcoins", "tabcash", "created_at", "updated_at"},
			},
			{
				Name:   schema.FeatureReadUserList,
				Output: []string{"id", "username", "description", "tabcoins", "tabcash", "created_at", "updated_at"},
			},
			{
				Name:   schema.FeatureUpdateUser,
				Others: schema.FeatureUpdateUserOthers,
				Input:  []string{"username", "email", "password", "description", "notifications"},
			},
			{
				Name: schema.FeatureUpdateUserOthers,
			},
			{
				Name:   schema.FeatureBanUser,
				Input:  []string{"ban_type"},
				Output: []string{"id", "username", "features", "updated_at"},
			},
			{
				Name: schema.FeatureNukeUser,
			},
			{
				Name:  schema.FeatureCreateContent,
				Input: []string{"parent_id", "slug", "title", "body", "status", "source_url"},
			},
			{
				Name:   schema.FeatureReadContent,
				Output: []string{"id", "owner_id", "parent_id", "slug", "title", "body", "status", "source_url", "tabcoins", "owner_username", "published_at", "created_at", "updated_at", "deleted_at"},
			},
			{
				Name:   schema.FeatureReadContentList,
				Output: []string{"id", "owner_id", "parent_id", "slug", "title", "status", "source_url", "tabcoins", "owner_username", "published_at", "created_at", "updated_at"},
			},
			{
				Name:   schema.FeatureUpdateContent,
				Others: schema.FeatureUpdateContentOthers,
				Input:  []string{"slug", "title", "body", "status", "source_url"},
			},
			{
				Name: schema.FeatureUpdateContentOthers,
			},
			{
				Name:  schema.FeatureCreateSession,
				Input: []string{"email", "password"},
			},
			{
				Name:   schema.FeatureReadSession,
				Output: []string{"id", "token", "expires_at", "created_at", "updated_at"},
			},
		},
	}
}
