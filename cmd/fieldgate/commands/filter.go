// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/fieldgate/fieldgate/cmd/fieldgate/cli"
	"github.com/fieldgate/fieldgate/lib/schema"
)

// filterCommand returns the "filter" subcommand for running a payload
// through the sanitization engine.
func filterCommand() *cli.Command {
	var policyPath string
	var userPath string
	var inputPath string
	var resourceID string
	var outputSide bool

	return &cli.Command{
		Name:    "filter",
		Summary: "Filter a payload through a feature's whitelist",
		Description: `Validate, authorize, and project a JSON payload through the
feature's field whitelist, printing the sanitized payload as JSON.

A denied request prints {} — the caller-facing contract is "apply
zero changes", not an error. A structurally invalid call (unknown
feature, user without a resolved feature set, ...) is an error.

Pass --output to filter an outbound representation through the
feature's output whitelist instead of the input whitelist.`,
		Usage: "fieldgate filter [flags] <feature>",
		Examples: []cli.Example{
			{
				Description: "Sanitize a signup payload",
				Command:     "fieldgate filter --user anon.json --input signup.json create:user",
			},
			{
				Description: "Filter a user representation for a reader",
				Command:     "fieldgate filter --user alice.json --input bob-profile.json --output read:user",
			},
			{
				Description: "Read the payload from stdin",
				Command:     "cat update.json | fieldgate filter --user alice.json --input - --resource-id alice update:user",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("filter", pflag.ContinueOnError)
			flags.StringVar(&policyPath, "policy", "", "policy file (default: FIELDGATE_POLICY or built-in policy)")
			flags.StringVar(&userPath, "user", "", "path to the acting user JSON file (required)")
			flags.StringVar(&inputPath, "input", "", "path to the payload JSON file, or - for stdin (required)")
			flags.StringVar(&resourceID, "resource-id", "", "target resource identifier for the ownership check")
			flags.BoolVar(&outputSide, "output", false, "filter through the output whitelist instead of the input whitelist")
			return flags
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 positional argument (the feature), got %d", len(args))
			}
			if userPath == "" || inputPath == "" {
				return fmt.Errorf("--user and --input are required\n\nusage: fieldgate filter [flags] <feature>")
			}

			engine, err := loadEngine(policyPath)
			if err != nil {
				return err
			}
			user, err := readUser(userPath)
			if err != nil {
				return err
			}
			payload, err := readPayload(inputPath)
			if err != nil {
				return err
			}

			feat := args[0]
			resource := resourceFromID(resourceID)

			var filtered schema.Payload
			if outputSide {
				filtered, err = engine.FilterOutput(user, feat, payload, resource)
			} else {
				filtered, err = engine.FilterInput(user, feat, payload, resource)
			}
			if err != nil {
				return err
			}

			if dropped := len(payload) - len(filtered); dropped > 0 {
				logger.Info("fields dropped by whitelist",
					"feature", feat, "kept", len(filtered), "dropped", dropped)
			}

			return printJSON(filtered)
		},
	}
}
