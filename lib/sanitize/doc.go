// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package sanitize implements the input-sanitization engine: the
// entry point that turns a raw untrusted payload into one containing
// only the fields the requested feature is permitted to touch.
//
// [Engine.FilterInput] runs four phases in order:
//
//  1. Validation — the call must be structurally sound (user with a
//     resolved feature set, non-empty catalog-known feature, non-nil
//     input). Failures raise a [*ValidationError]; nothing further
//     runs.
//  2. Authorization — the permission evaluator decides the request.
//     Denial is silent: an empty payload and a nil error, because
//     "not permitted" is an expected branch of control flow, not an
//     exceptional one. Callers treat the empty payload as "apply
//     zero changes".
//  3. Projection — whitelisted fields present in the input are copied,
//     in whitelist order, into a fresh payload.
//  4. Cleanup — keys whose value is the unset marker (untyped nil)
//     are removed, so enumerating the result yields only
//     meaningfully-set fields.
//
// [Engine.FilterOutput] is the symmetric response-side filter,
// projecting an outbound representation through the per-feature
// output whitelist instead.
//
// The engine is state-free: both filters are referentially
// transparent and never mutate their arguments, and an Engine is safe
// for unlimited concurrent use.
package sanitize
