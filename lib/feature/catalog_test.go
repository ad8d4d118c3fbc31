// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"slices"
	"testing"
)

func TestNewCatalog_Valid(t *testing.T) {
	catalog, err := NewCatalog(
		[]string{"update:user", "update:user:others", "create:user"},
		map[string]string{"update:user": "update:user:others"},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if !catalog.IsKnown("update:user") {
		t.Error("update:user should be known")
	}
	if catalog.IsKnown("delete:user") {
		t.Error("delete:user should not be known")
	}
	if got, want := catalog.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}

	override, ok := catalog.Override("update:user")
	if !ok || override != "update:user:others" {
		t.Errorf("Override(update:user) = %q, %v; want update:user:others, true", override, ok)
	}
	if _, ok := catalog.Override("create:user"); ok {
		t.Error("create:user should have no override")
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		features  []string
		overrides map[string]string
	}{
		{"empty feature name", []string{"create:user", ""}, nil},
		{"duplicate feature", []string{"create:user", "create:user"}, nil},
		{"override for unknown base", []string{"a"}, map[string]string{"b": "a"}},
		{"override by unknown feature", []string{"a"}, map[string]string{"a": "b"}},
		{"self override", []string{"a"}, map[string]string{"a": "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.features, tt.overrides); err == nil {
				t.Error("NewCatalog succeeded, want error")
			}
		})
	}
}

func TestCatalog_FeaturesSorted(t *testing.T) {
	catalog, err := NewCatalog([]string{"c", "a", "b"}, nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	got := catalog.Features()
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Features() = %v, want %v", got, want)
	}
}

func TestNewCatalog_CopiesInputs(t *testing.T) {
	features := []string{"a", "b"}
	overrides := map[string]string{"a": "b"}
	catalog, err := NewCatalog(features, overrides)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	// Mutating the caller's inputs must not affect the catalog.
	features[0] = "mutated"
	delete(overrides, "a")

	if !catalog.IsKnown("a") {
		t.Error("catalog lost feature after caller mutation")
	}
	if _, ok := catalog.Override("a"); !ok {
		t.Error("catalog lost override after caller mutation")
	}
}
