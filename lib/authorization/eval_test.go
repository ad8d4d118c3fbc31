// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"testing"

	"github.com/fieldgate/fieldgate/lib/feature"
	"github.com/fieldgate/fieldgate/lib/schema"
)

// setupEvaluator builds an evaluator over a standard scenario:
//
//   - update:user is ownership-scoped, overridden by update:user:others
//   - create:user is resource-independent
//   - nuke:user is ownership-scoped with no override
func setupEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	catalog, err := feature.NewCatalog(
		[]string{
			schema.FeatureCreateUser,
			schema.FeatureUpdateUser,
			schema.FeatureUpdateUserOthers,
			schema.FeatureNukeUser,
		},
		map[string]string{
			schema.FeatureUpdateUser: schema.FeatureUpdateUserOthers,
		},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return NewEvaluator(catalog)
}

func user(id string, features ...string) *schema.User {
	if features == nil {
		features = []string{}
	}
	return &schema.User{ID: id, Features: features}
}

func TestCheck_FeatureNotGranted(t *testing.T) {
	evaluator := setupEvaluator(t)

	result := evaluator.Check(user("alice"), schema.FeatureCreateUser, nil)
	if result.Decision != Deny {
		t.Errorf("decision = %v, want deny", result.Decision)
	}
	if result.Reason != ReasonNotGranted {
		t.Errorf("reason = %v, want %v", result.Reason, ReasonNotGranted)
	}
	if result.Feature != schema.FeatureCreateUser {
		t.Errorf("feature = %q, want %q", result.Feature, schema.FeatureCreateUser)
	}
}

func TestCheck_FeatureGranted(t *testing.T) {
	evaluator := setupEvaluator(t)

	result := evaluator.Check(user("alice", schema.FeatureCreateUser), schema.FeatureCreateUser, nil)
	if result.Decision != Allow {
		t.Errorf("decision = %v (%v), want allow", result.Decision, result.Reason)
	}
	if result.Override != "" {
		t.Errorf("override = %q, want empty (no resource, no ownership check)", result.Override)
	}
}

func TestCheck_OwnResource(t *testing.T) {
	evaluator := setupEvaluator(t)

	// Alice updates her own record: ownership satisfied, no override
	// involved.
	result := evaluator.Check(user("alice", schema.FeatureUpdateUser), schema.FeatureUpdateUser, &schema.Resource{ID: "alice"})
	if result.Decision != Allow {
		t.Errorf("decision = %v (%v), want allow", result.Decision, result.Reason)
	}
	if result.Override != "" {
		t.Errorf("override = %q, want empty", result.Override)
	}
}

func TestCheck_OthersResourceWithoutOverride(t *testing.T) {
	evaluator := setupEvaluator(t)

	result := evaluator.Check(user("alice", schema.FeatureUpdateUser), schema.FeatureUpdateUser, &schema.Resource{ID: "bob"})
	if result.Decision != Deny {
		t.Errorf("decision = %v, want deny", result.Decision)
	}
	if result.Reason != ReasonNotOwner {
		t.Errorf("reason = %v, want %v", result.Reason, ReasonNotOwner)
	}
}

func TestCheck_OthersResourceWithOverride(t *testing.T) {
	evaluator := setupEvaluator(t)

	moderator := user("alice", schema.FeatureUpdateUser, schema.FeatureUpdateUserOthers)
	result := evaluator.Check(moderator, schema.FeatureUpdateUser, &schema.Resource{ID: "bob"})
	if result.Decision != Allow {
		t.Errorf("decision = %v (%v), want allow", result.Decision, result.Reason)
	}
	if result.Override != schema.FeatureUpdateUserOthers {
		t.Errorf("override = %q, want %q", result.Override, schema.FeatureUpdateUserOthers)
	}
}

func TestCheck_OverrideAloneInsufficient(t *testing.T) {
	evaluator := setupEvaluator(t)

	// Holding only the override does not grant the base feature: step 1
	// checks the requested feature itself.
	result := evaluator.Check(user("alice", schema.FeatureUpdateUserOthers), schema.FeatureUpdateUser, &schema.Resource{ID: "bob"})
	if result.Decision != Deny {
		t.Errorf("decision = %v, want deny", result.Decision)
	}
	if result.Reason != ReasonNotGranted {
		t.Errorf("reason = %v, want %v", result.Reason, ReasonNotGranted)
	}
}

func TestCheck_NoOverrideDeclared(t *testing.T) {
	evaluator := setupEvaluator(t)

	// nuke:user declares no override, so another user's resource is
	// always denied even with every feature held.
	admin := user("alice", schema.FeatureNukeUser, schema.FeatureUpdateUserOthers)
	result := evaluator.Check(admin, schema.FeatureNukeUser, &schema.Resource{ID: "bob"})
	if result.Decision != Deny {
		t.Errorf("decision = %v, want deny", result.Decision)
	}
	if result.Reason != ReasonNotOwner {
		t.Errorf("reason = %v, want %v", result.Reason, ReasonNotOwner)
	}
}

func TestCheck_NilUserAndEmptyFeature(t *testing.T) {
	evaluator := setupEvaluator(t)

	if result := evaluator.Check(nil, schema.FeatureCreateUser, nil); result.Decision != Deny {
		t.Errorf("nil user: decision = %v, want deny", result.Decision)
	}
	if result := evaluator.Check(user("alice", schema.FeatureCreateUser), "", nil); result.Decision != Deny {
		t.Errorf("empty feature: decision = %v, want deny", result.Decision)
	}
}

func TestCan(t *testing.T) {
	evaluator := setupEvaluator(t)

	if !evaluator.Can(user("alice", schema.FeatureCreateUser), schema.FeatureCreateUser, nil) {
		t.Error("Can = false, want true")
	}
	if evaluator.Can(user("alice"), schema.FeatureCreateUser, nil) {
		t.Error("Can = true, want false")
	}
}

func TestDecisionAndReasonStrings(t *testing.T) {
	if got, want := Allow.String(), "allow"; got != want {
		t.Errorf("Allow.String() = %q, want %q", got, want)
	}
	if got, want := Deny.String(), "deny"; got != want {
		t.Errorf("Deny.String() = %q, want %q", got, want)
	}
	if got, want := ReasonNotGranted.String(), "feature not granted"; got != want {
		t.Errorf("ReasonNotGranted.String() = %q, want %q", got, want)
	}
	if got, want := ReasonNotOwner.String(), "resource owned by another user"; got != want {
		t.Errorf("ReasonNotOwner.String() = %q, want %q", got, want)
	}
}
