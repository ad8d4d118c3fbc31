// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package whitelist

import (
	"slices"
	"testing"
)

func TestNewTable_Valid(t *testing.T) {
	table, err := NewTable(map[string][]string{
		"create:user": {"username", "email", "password"},
		"ban:user":    {"ban_type"},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	got := table.FieldsFor("create:user")
	want := []string{"username", "email", "password"}
	if !slices.Equal(got, want) {
		t.Errorf("FieldsFor(create:user) = %v, want %v", got, want)
	}

	if table.FieldsFor("read:user") != nil {
		t.Error("FieldsFor(read:user) should be nil for an absent feature")
	}

	if !table.Allows("ban:user", "ban_type") {
		t.Error("Allows(ban:user, ban_type) = false, want true")
	}
	if table.Allows("ban:user", "features") {
		t.Error("Allows(ban:user, features) = true, want false")
	}
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string][]string
	}{
		{"empty feature name", map[string][]string{"": {"a"}}},
		{"empty field name", map[string][]string{"f": {"a", ""}}},
		{"duplicate field", map[string][]string{"f": {"a", "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.entries); err == nil {
				t.Error("NewTable succeeded, want error")
			}
		})
	}
}

func TestTable_FieldsForReturnsCopy(t *testing.T) {
	table, err := NewTable(map[string][]string{"f": {"a", "b"}})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	fields := table.FieldsFor("f")
	fields[0] = "mutated"

	if got := table.FieldsFor("f"); got[0] != "a" {
		t.Errorf("table mutated through returned slice: FieldsFor(f)[0] = %q, want a", got[0])
	}
}

func TestNewTable_DeepCopiesEntries(t *testing.T) {
	entries := map[string][]string{"f": {"a", "b"}}
	table, err := NewTable(entries)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	entries["f"][1] = "mutated"

	if got := table.FieldsFor("f"); got[1] != "b" {
		t.Errorf("table mutated through caller's entries: FieldsFor(f)[1] = %q, want b", got[1])
	}
}
