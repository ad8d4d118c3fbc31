// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"errors"
	"fmt"
)

// Validation sentinels. Each corresponds to exactly one way a filter
// call can be structurally invalid; errors returned by the engine
// match them under errors.Is.
var (
	// ErrNoUser means the user argument was nil.
	ErrNoUser = errors.New("no user specified")

	// ErrNoFeatures means the user had no resolved feature set (nil
	// Features). Distinct from an empty set, which is a valid user
	// with zero permissions.
	ErrNoFeatures = errors.New("user has no features")

	// ErrNoFeature means the feature argument was empty.
	ErrNoFeature = errors.New("no feature specified")

	// ErrUnknownFeature means the feature is not in the catalog.
	ErrUnknownFeature = errors.New("feature not available")

	// ErrNoInput means the input payload was nil.
	ErrNoInput = errors.New("no input specified")
)

// ValidationError reports a structurally invalid filter call: the
// caller passed a malformed argument, as opposed to a well-formed
// request the user is simply not permitted to make (which is a silent
// denial, not an error). It wraps one of the validation sentinels and
// names the failing argument.
type ValidationError struct {
	// Argument is the name of the argument that failed ("user",
	// "feature", or "input").
	Argument string

	// Detail optionally carries the offending value, e.g. the
	// unknown feature identifier.
	Detail string

	err error
}

// Error returns a message identifying the failing argument and why.
func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid %s argument: %s: %q", e.Argument, e.err, e.Detail)
	}
	return fmt.Sprintf("invalid %s argument: %s", e.Argument, e.err)
}

// Unwrap returns the validation sentinel.
func (e *ValidationError) Unwrap() error {
	return e.err
}

func validationError(argument string, sentinel error) *ValidationError {
	return &ValidationError{Argument: argument, err: sentinel}
}
