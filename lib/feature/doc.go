// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package feature implements the closed feature catalog: the set of
// identifiers a deployment recognizes, plus the explicit
// ownership-override relation between a scoped feature and its
// "others" counterpart.
//
// The catalog is immutable after construction and safe for unlimited
// concurrent reads. Membership is exact string equality — identifiers
// are opaque tokens, and the own/others relationship is declared in
// the catalog rather than inferred from identifier suffixes.
package feature
