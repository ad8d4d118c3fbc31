// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy loads, validates, and compiles fieldgate policy
// documents — the external configuration that declares the feature
// catalog, the ownership-override relation, and the per-feature
// input/output field whitelists.
//
// A policy is loaded from a single file specified by:
//   - the FIELDGATE_POLICY environment variable, or
//   - an explicit path passed to LoadFile (the --policy flag).
//
// There are no fallbacks or automatic discovery; deployments that
// load no file use the built-in [Default] policy. The file extension
// selects the format: .yaml/.yml for YAML, .json/.jsonc for JSON with
// comments and trailing commas.
//
// Loading happens once at process start. Compiled artifacts (catalog,
// whitelist tables, engine) are immutable; the engine core never sees
// the document form.
//
// Snapshot and Fingerprint give deployments a verifiable identity for
// a policy: the canonical form (features sorted by name) is encoded
// as deterministic CBOR, so two processes holding the same logical
// policy — regardless of source format or declaration order — produce
// byte-identical snapshots and the same blake3 fingerprint.
package policy
