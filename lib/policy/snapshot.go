// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"

	"github.com/fieldgate/fieldgate/lib/codec"
)

// Snapshot container format. A snapshot is a self-describing binary
// encoding of a policy in canonical form, suitable for shipping
// between environments and for parity checks against a running
// process. Layout:
//
//	bytes 0-3   magic "FGPS"
//	byte  4     format version (currently 1)
//	byte  5     compression tag: 0 = none, 1 = lz4 block
//	bytes 6-9   uncompressed CBOR length, big endian
//	bytes 10-   body (canonical CBOR, possibly lz4-compressed)
//
// These values are protocol constants — changing them breaks snapshot
// compatibility.
const (
	snapshotMagic   = "FGPS"
	snapshotVersion = 1

	compressionNone = 0
	compressionLZ4  = 1

	snapshotHeaderSize = 10
)

// Snapshot encodes the policy's canonical form as deterministic CBOR
// and wraps it in the snapshot container. The body is lz4
// block-compressed unless the policy is too small to benefit.
func (p *Policy) Snapshot() ([]byte, error) {
	encoded, err := codec.Marshal(p.canonical())
	if err != nil {
		return nil, fmt.Errorf("encoding policy: %w", err)
	}

	tag := byte(compressionLZ4)
	body := compressLZ4(encoded)
	if body == nil {
		tag = compressionNone
		body = encoded
	}

	snapshot := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(body))
	copy(snapshot, snapshotMagic)
	snapshot[4] = snapshotVersion
	snapshot[5] = tag
	binary.BigEndian.PutUint32(snapshot[6:10], uint32(len(encoded)))
	return append(snapshot, body...), nil
}

// LoadSnapshot decodes and validates a snapshot produced by Snapshot.
func LoadSnapshot(data []byte) (*Policy, error) {
	if len(data) < snapshotHeaderSize {
		return nil, fmt.Errorf("snapshot too short: %d bytes", len(data))
	}
	if string(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("not a policy snapshot (bad magic)")
	}
	if data[4] != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", data[4])
	}

	size := int(binary.BigEndian.Uint32(data[6:10]))
	body := data[snapshotHeaderSize:]

	var encoded []byte
	switch data[5] {
	case compressionNone:
		if len(body) != size {
			return nil, fmt.Errorf("snapshot body is %d bytes, header says %d", len(body), size)
		}
		encoded = body
	case compressionLZ4:
		decompressed, err := decompressLZ4(body, size)
		if err != nil {
			return nil, err
		}
		encoded = decompressed
	default:
		return nil, fmt.Errorf("unsupported snapshot compression tag %d", data[5])
	}

	var p Policy
	if err := codec.Unmarshal(encoded, &p); err != nil {
		return nil, fmt.Errorf("decoding policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Fingerprint returns the hex-encoded blake3-256 digest of the
// policy's canonical CBOR encoding. Two policies with the same
// semantics — same features, overrides, and field orders, in any
// declaration order and from any source format — share a fingerprint.
// This is the revision identifier shown by "fieldgate policy
// fingerprint" and used for deployment parity checks.
func (p *Policy) Fingerprint() (string, error) {
	encoded, err := codec.Marshal(p.canonical())
	if err != nil {
		return "", fmt.Errorf("encoding policy: %w", err)
	}
	digest := blake3.Sum256(encoded)
	return hex.EncodeToString(digest[:]), nil
}

// compressLZ4 block-compresses data, returning nil when compression
// does not shrink it (the caller stores it uncompressed).
func compressLZ4(data []byte) []byte {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil || written == 0 || written >= len(data) {
		return nil
	}
	return destination[:written]
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}
