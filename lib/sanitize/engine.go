// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"github.com/fieldgate/fieldgate/lib/authorization"
	"github.com/fieldgate/fieldgate/lib/feature"
	"github.com/fieldgate/fieldgate/lib/schema"
	"github.com/fieldgate/fieldgate/lib/whitelist"
)

// Engine binds a feature catalog, a permission evaluator, and the
// input/output whitelist tables into the filtering entry points. Build
// one at startup (typically via policy.Engine) and share it freely:
// all components are immutable.
type Engine struct {
	catalog   *feature.Catalog
	evaluator *authorization.Evaluator
	input     *whitelist.Table
	output    *whitelist.Table
}

// NewEngine creates an engine over the given catalog and tables. The
// evaluator is derived from the catalog so the override relation used
// for ownership checks is always the one the catalog declares.
func NewEngine(catalog *feature.Catalog, input, output *whitelist.Table) *Engine {
	return &Engine{
		catalog:   catalog,
		evaluator: authorization.NewEvaluator(catalog),
		input:     input,
		output:    output,
	}
}

// Catalog returns the engine's feature catalog.
func (e *Engine) Catalog() *feature.Catalog {
	return e.catalog
}

// InputFields returns the input whitelist for a feature. See
// whitelist.Table.FieldsFor.
func (e *Engine) InputFields(feat string) []string {
	return e.input.FieldsFor(feat)
}

// OutputFields returns the output whitelist for a feature.
func (e *Engine) OutputFields(feat string) []string {
	return e.output.FieldsFor(feat)
}

// Can reports whether user may exercise the feature against the
// optional resource. Convenience passthrough to the evaluator.
func (e *Engine) Can(user *schema.User, feat string, resource *schema.Resource) bool {
	return e.evaluator.Can(user, feat, resource)
}

// Check returns the full authorization trace for a feature request.
func (e *Engine) Check(user *schema.User, feat string, resource *schema.Resource) authorization.Result {
	return e.evaluator.Check(user, feat, resource)
}

// FilterInput validates the call, authorizes it, and projects the raw
// input through the feature's input whitelist.
//
// A malformed call (nil user, user without a resolved feature set,
// empty or catalog-unknown feature, nil input) returns a
// *ValidationError and no payload. A well-formed call the user is not
// permitted to make returns an empty payload and a nil error. A
// permitted call returns a fresh payload holding exactly the
// whitelisted fields that were present in the input with a set value.
//
// resource is optional; pass nil for resource-independent features.
// FilterInput never mutates user, input, or resource.
func (e *Engine) FilterInput(user *schema.User, feat string, input schema.Payload, resource *schema.Resource) (schema.Payload, error) {
	if err := e.validate(user, feat, input); err != nil {
		return nil, err
	}

	if !e.evaluator.Can(user, feat, resource) {
		return schema.Payload{}, nil
	}

	return project(input, e.input.FieldsFor(feat)), nil
}

// FilterOutput is the response-side counterpart of FilterInput: it
// projects an outbound representation through the feature's output
// whitelist. Same validation, same silent denial. Ownership-scoped
// read features (e.g. "read:user:self") take the represented entity's
// owner as the resource, so reading another user's private
// representation denies to an empty payload.
func (e *Engine) FilterOutput(user *schema.User, feat string, output schema.Payload, resource *schema.Resource) (schema.Payload, error) {
	if err := e.validate(user, feat, output); err != nil {
		return nil, err
	}

	if !e.evaluator.Can(user, feat, resource) {
		return schema.Payload{}, nil
	}

	return project(output, e.output.FieldsFor(feat)), nil
}

// validate applies the argument checks in their fixed order. The
// first failure wins; later arguments are not examined.
func (e *Engine) validate(user *schema.User, feat string, payload schema.Payload) error {
	if user == nil {
		return validationError("user", ErrNoUser)
	}
	if user.Features == nil {
		return validationError("user", ErrNoFeatures)
	}
	if feat == "" {
		return validationError("feature", ErrNoFeature)
	}
	if !e.catalog.IsKnown(feat) {
		err := validationError("feature", ErrUnknownFeature)
		err.Detail = feat
		return err
	}
	if payload == nil {
		return validationError("input", ErrNoInput)
	}
	return nil
}

// project copies whitelisted fields from payload into a fresh map, in
// whitelist order, then strips unset values. A field absent from the
// payload is omitted, never fabricated; a field present with an
// untyped nil value is treated as unset and stripped so the result
// exposes only meaningfully-set keys.
func project(payload schema.Payload, fields []string) schema.Payload {
	filtered := make(schema.Payload, len(fields))
	for _, field := range fields {
		value, present := payload[field]
		if !present {
			continue
		}
		filtered[field] = value
	}

	// Cleanup pass: an explicit sweep rather than an encode/decode
	// round-trip, so the unset-stripping guarantee is visible here
	// and allocation stays predictable.
	for field, value := range filtered {
		if value == nil {
			delete(filtered, field)
		}
	}

	return filtered
}
