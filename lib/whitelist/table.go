// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package whitelist

import "fmt"

// Table maps a feature identifier to the ordered list of field names
// that feature may set or expose. Field order is semantic: projection
// copies fields in whitelist order, and the policy fingerprint covers
// it.
type Table struct {
	fields map[string][]string
}

// NewTable builds a table from per-feature field lists. Field names
// must be non-empty and unique within a feature. The entries are
// deep-copied.
func NewTable(entries map[string][]string) (*Table, error) {
	fields := make(map[string][]string, len(entries))
	for feature, names := range entries {
		if feature == "" {
			return nil, fmt.Errorf("empty feature identifier in whitelist")
		}
		seen := make(map[string]struct{}, len(names))
		copied := make([]string, len(names))
		for i, name := range names {
			if name == "" {
				return nil, fmt.Errorf("feature %q: empty field name", feature)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("feature %q: duplicate field %q", feature, name)
			}
			seen[name] = struct{}{}
			copied[i] = name
		}
		fields[feature] = copied
	}
	return &Table{fields: fields}, nil
}

// FieldsFor returns a copy of the ordered field list for a feature.
// Returns nil for a feature with no entry — unreachable through the
// engine, which rejects unknown features during validation, but a
// safe empty projection for direct callers.
func (t *Table) FieldsFor(feature string) []string {
	names := t.fields[feature]
	if names == nil {
		return nil
	}
	copied := make([]string, len(names))
	copy(copied, names)
	return copied
}

// Allows reports whether the feature's whitelist contains the field.
func (t *Table) Allows(feature, field string) bool {
	for _, name := range t.fields[feature] {
		if name == field {
			return true
		}
	}
	return false
}
