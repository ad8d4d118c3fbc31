// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete fieldgate CLI command tree.
package commands

import (
	"github.com/fieldgate/fieldgate/cmd/fieldgate/cli"
)

// Root builds and returns the complete fieldgate CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "fieldgate",
		Description: `Fieldgate: authorization-aware input sanitization.

Evaluate feature permissions and filter untrusted payloads through
per-feature field whitelists, so attacker-supplied fields never reach
privileged attributes.`,
		Subcommands: []*cli.Command{
			checkCommand(),
			filterCommand(),
			featuresCommand(),
			policyCommand(),
		},
	}
}
