// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"github.com/fieldgate/fieldgate/lib/feature"
	"github.com/fieldgate/fieldgate/lib/schema"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the feature may not be exercised.
	Deny Decision = iota

	// Allow means the feature may be exercised.
	Allow
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why an authorization check was denied.
type DenyReason int

const (
	// ReasonNotGranted means the requested feature is not in the
	// user's feature set (or the user was nil).
	ReasonNotGranted DenyReason = iota

	// ReasonNotOwner means the user holds the feature but the
	// resource belongs to someone else and no held override feature
	// bypasses the ownership check.
	ReasonNotOwner
)

// String returns a human-readable reason.
func (r DenyReason) String() string {
	switch r {
	case ReasonNotGranted:
		return "feature not granted"
	case ReasonNotOwner:
		return "resource owned by another user"
	default:
		return "unknown"
	}
}

// Result describes the outcome of an authorization check, including
// which feature was evaluated and whether an override feature carried
// the decision. The trace supports the fieldgate check command and
// caller-side diagnostics.
type Result struct {
	// Decision is Allow or Deny.
	Decision Decision

	// Reason describes why the check was denied. Only meaningful
	// when Decision is Deny.
	Reason DenyReason

	// Feature is the feature that was requested.
	Feature string

	// Override is the held override feature that bypassed the
	// ownership check. Empty when ownership was not evaluated or was
	// satisfied by the user owning the resource.
	Override string
}

// Evaluator decides feature exercise against a fixed catalog. The
// catalog supplies the override relation; the user's feature set
// arrives with each call. Evaluators are immutable and safe for
// concurrent use.
type Evaluator struct {
	catalog *feature.Catalog
}

// NewEvaluator creates an evaluator over the given catalog.
func NewEvaluator(catalog *feature.Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Can reports whether user may exercise the feature against the
// optional resource. Pure boolean decision; see Check for the trace.
func (e *Evaluator) Can(user *schema.User, feat string, resource *schema.Resource) bool {
	return e.Check(user, feat, resource).Decision == Allow
}

// Check evaluates the feature request and returns the full trace.
//
// Evaluation:
//  1. The feature must be present in the user's feature set → DENY
//     (ReasonNotGranted) otherwise.
//  2. With a resource whose ID differs from the user's, the catalog
//     must declare an override feature that the user also holds →
//     DENY (ReasonNotOwner) otherwise.
//  3. Without a resource, ownership is not evaluated.
func (e *Evaluator) Check(user *schema.User, feat string, resource *schema.Resource) Result {
	result := Result{Feature: feat}

	if feat == "" || !user.HasFeature(feat) {
		result.Decision = Deny
		result.Reason = ReasonNotGranted
		return result
	}

	if resource != nil && user.ID != resource.ID {
		override, ok := e.catalog.Override(feat)
		if !ok || !user.HasFeature(override) {
			result.Decision = Deny
			result.Reason = ReasonNotOwner
			return result
		}
		result.Override = override
	}

	result.Decision = Allow
	return result
}
