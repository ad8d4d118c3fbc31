// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the data types exchanged with the
// sanitization engine and the feature identifier constants checked at
// enforcement points.
//
// [User] is the acting identity produced by an external
// authentication collaborator. [Resource] identifies the entity being
// acted upon, used only for ownership comparison. [Payload] is an
// untrusted field map — raw request input on the way in, an outbound
// representation on the way out.
//
// This package depends on no other fieldgate packages.
package schema
