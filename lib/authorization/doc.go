// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package authorization decides whether a user may exercise a feature,
// optionally against a target resource.
//
// The model has two checks, evaluated in order:
//
//   - Grant: the requested feature must be present in the user's
//     feature set. Holding an ownership override does not imply the
//     base feature.
//   - Ownership: when a resource is supplied, the user must own it
//     (User.ID == Resource.ID) unless the catalog declares an
//     override feature for the requested feature and the user holds
//     it. When no resource is supplied the action is
//     resource-independent and ownership is not evaluated.
//
// Evaluation is pure: no side effects, no errors, no panics. The
// Evaluator never judges whether a call is well-formed — that is the
// sanitization engine's validation phase. Malformed arguments (nil
// user, empty feature) simply deny.
package authorization
