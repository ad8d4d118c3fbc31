// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package whitelist implements the static per-feature field tables:
// for each feature, the ordered list of payload field names that
// feature is permitted to set (input tables) or expose (output
// tables).
//
// A table is pure configuration with no behavior beyond lookup. Like
// the feature catalog it is built once at startup and immutable
// afterward; lookups return defensive copies so callers cannot mutate
// the shared configuration.
package whitelist
