// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fieldgate/fieldgate/lib/policy"
	"github.com/fieldgate/fieldgate/lib/sanitize"
	"github.com/fieldgate/fieldgate/lib/schema"
)

// loadPolicy resolves the policy document for a command: the --policy
// flag if given, else the FIELDGATE_POLICY environment variable, else
// the built-in defaults.
func loadPolicy(path string) (*policy.Policy, error) {
	if path != "" {
		return policy.LoadFile(path)
	}
	if os.Getenv("FIELDGATE_POLICY") != "" {
		return policy.Load()
	}
	return policy.Default(), nil
}

// loadEngine compiles the resolved policy into a sanitization engine.
func loadEngine(policyPath string) (*sanitize.Engine, error) {
	p, err := loadPolicy(policyPath)
	if err != nil {
		return nil, err
	}
	return p.Engine()
}

// readUser parses a user JSON file: {"id": "...", "features": [...]}.
func readUser(path string) (*schema.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading user file: %w", err)
	}
	var user schema.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%s: parsing user: %w", path, err)
	}
	return &user, nil
}

// readPayload parses a JSON object from a file, or from stdin when
// path is "-".
func readPayload(path string) (schema.Payload, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading payload file: %w", err)
		}
	}
	var payload schema.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}
	return payload, nil
}

// resourceFromID builds the optional resource argument. An empty ID
// means no resource: ownership is not evaluated.
func resourceFromID(id string) *schema.Resource {
	if id == "" {
		return nil
	}
	return &schema.Resource{ID: id}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
