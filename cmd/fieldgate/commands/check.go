// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/fieldgate/fieldgate/cmd/fieldgate/cli"
	"github.com/fieldgate/fieldgate/lib/authorization"
)

// checkCommand returns the "check" subcommand for evaluating a
// permission decision without filtering anything.
func checkCommand() *cli.Command {
	var policyPath string
	var userPath string
	var resourceID string
	var outputJSON bool

	return &cli.Command{
		Name:    "check",
		Summary: "Evaluate whether a user may exercise a feature",
		Description: `Evaluate an authorization decision and print the trace.

The user file is JSON: {"id": "...", "features": ["...", ...]}.
Pass --resource-id to evaluate the ownership check against a target
resource; omit it for resource-independent features.

Exits 0 for allow, 1 for deny.`,
		Usage: "fieldgate check [flags] <feature>",
		Examples: []cli.Example{
			{
				Description: "Check a resource-independent feature",
				Command:     "fieldgate check --user alice.json create:user",
			},
			{
				Description: "Check an ownership-scoped feature against another user's resource",
				Command:     "fieldgate check --user alice.json --resource-id bob update:user",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flags.StringVar(&policyPath, "policy", "", "policy file (default: FIELDGATE_POLICY or built-in policy)")
			flags.StringVar(&userPath, "user", "", "path to the acting user JSON file (required)")
			flags.StringVar(&resourceID, "resource-id", "", "target resource identifier for the ownership check")
			flags.BoolVar(&outputJSON, "json", false, "output the decision trace as JSON")
			return flags
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 positional argument (the feature), got %d", len(args))
			}
			if userPath == "" {
				return fmt.Errorf("--user is required\n\nusage: fieldgate check [flags] <feature>")
			}

			engine, err := loadEngine(policyPath)
			if err != nil {
				return err
			}
			user, err := readUser(userPath)
			if err != nil {
				return err
			}

			result := engine.Check(user, args[0], resourceFromID(resourceID))

			if outputJSON {
				trace := struct {
					Decision string `json:"decision"`
					Reason   string `json:"reason,omitempty"`
					Feature  string `json:"feature"`
					Override string `json:"override,omitempty"`
				}{
					Decision: result.Decision.String(),
					Feature:  result.Feature,
					Override: result.Override,
				}
				if result.Decision == authorization.Deny {
					trace.Reason = result.Reason.String()
				}
				if err := printJSON(trace); err != nil {
					return err
				}
			} else if result.Decision == authorization.Allow {
				if result.Override != "" {
					fmt.Printf("allow (via %s)\n", result.Override)
				} else {
					fmt.Println("allow")
				}
			} else {
				fmt.Printf("deny: %s\n", result.Reason)
			}

			if result.Decision == authorization.Deny {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
