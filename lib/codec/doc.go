// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used for policy snapshots.
//
// Encoding uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// The same logical policy always produces identical bytes, which is
// what makes the blake3 policy fingerprint stable across processes
// and source formats.
//
// Consumers import only this package, not fxamacker/cbor directly.
package codec
