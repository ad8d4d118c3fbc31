// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package feature

import (
	"fmt"
	"sort"
)

// Catalog is the closed set of feature identifiers known to a
// deployment, together with the ownership-override relation. It is
// built once at startup (typically by compiling a policy document)
// and never mutated afterward, so all methods are safe for concurrent
// use without locking.
type Catalog struct {
	known map[string]struct{}

	// overrides maps an ownership-scoped feature to the feature that
	// bypasses its ownership check, e.g. "update:user" →
	// "update:user:others". Both sides are catalog members.
	overrides map[string]string
}

// NewCatalog builds a catalog from a list of feature identifiers and
// an override relation. Identifiers must be non-empty and unique.
// Every override entry must relate two distinct declared features.
// The inputs are copied; later mutation by the caller does not affect
// the catalog.
func NewCatalog(features []string, overrides map[string]string) (*Catalog, error) {
	known := make(map[string]struct{}, len(features))
	for _, name := range features {
		if name == "" {
			return nil, fmt.Errorf("empty feature identifier")
		}
		if _, dup := known[name]; dup {
			return nil, fmt.Errorf("duplicate feature %q", name)
		}
		known[name] = struct{}{}
	}

	relation := make(map[string]string, len(overrides))
	for base, override := range overrides {
		if _, ok := known[base]; !ok {
			return nil, fmt.Errorf("override declared for unknown feature %q", base)
		}
		if _, ok := known[override]; !ok {
			return nil, fmt.Errorf("feature %q overridden by unknown feature %q", base, override)
		}
		if base == override {
			return nil, fmt.Errorf("feature %q cannot override itself", base)
		}
		relation[base] = override
	}

	return &Catalog{known: known, overrides: relation}, nil
}

// IsKnown reports whether the identifier is a member of the catalog.
func (c *Catalog) IsKnown(feature string) bool {
	_, ok := c.known[feature]
	return ok
}

// Override returns the feature that bypasses the ownership check for
// the given feature, if the catalog declares one.
func (c *Catalog) Override(feature string) (string, bool) {
	override, ok := c.overrides[feature]
	return override, ok
}

// Features returns the catalog members in lexicographic order. The
// slice is a copy.
func (c *Catalog) Features() []string {
	features := make([]string, 0, len(c.known))
	for name := range c.known {
		features = append(features, name)
	}
	sort.Strings(features)
	return features
}

// Len returns the number of catalog members.
func (c *Catalog) Len() int {
	return len(c.known)
}
