// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/fieldgate/fieldgate/cmd/fieldgate/cli"
	"github.com/fieldgate/fieldgate/lib/policy"
)

// policyCommand returns the "policy" command group: tooling for policy
// documents themselves, as opposed to decisions made under them.
func policyCommand() *cli.Command {
	return &cli.Command{
		Name:    "policy",
		Summary: "Validate, fingerprint, and snapshot policy documents",
		Description: `Work with policy documents: validate a file, print a policy's
revision fingerprint, export a binary snapshot, or inspect one.`,
		Subcommands: []*cli.Command{
			policyValidateCommand(),
			policyFingerprintCommand(),
			policyExportCommand(),
			policyInspectCommand(),
		},
	}
}

func policyValidateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Validate a policy file",
		Description: `Load and validate a policy file, reporting every structural
problem at once. Prints the feature count and fingerprint on success.`,
		Usage: "fieldgate policy validate <file>",
		Examples: []cli.Example{
			{
				Description: "Validate a YAML policy",
				Command:     "fieldgate policy validate policy.yaml",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 positional argument (the policy file), got %d", len(args))
			}
			p, err := policy.LoadFile(args[0])
			if err != nil {
				return err
			}
			fingerprint, err := p.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d features, fingerprint %s\n", len(p.Features), fingerprint)
			return nil
		},
	}
}

func policyFingerprintCommand() *cli.Command {
	var policyPath string

	return &cli.Command{
		Name:    "fingerprint",
		Summary: "Print a policy's revision fingerprint",
		Description: `Print the hex blake3 digest of the policy's canonical encoding.
Two documents with the same semantics share a fingerprint regardless
of declaration order or source format, so this is the value to
compare across environments.`,
		Usage: "fieldgate policy fingerprint [flags]",
		Examples: []cli.Example{
			{
				Description: "Fingerprint the built-in policy",
				Command:     "fieldgate policy fingerprint",
			},
			{
				Description: "Fingerprint a deployment's policy",
				Command:     "fieldgate policy fingerprint --policy policy.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("fingerprint", pflag.ContinueOnError)
			flags.StringVar(&policyPath, "policy", "", "policy file (default: FIELDGATE_POLICY or built-in policy)")
			return flags
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			p, err := loadPolicy(policyPath)
			if err != nil {
				return err
			}
			fingerprint, err := p.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Println(fingerprint)
			return nil
		},
	}
}

func policyExportCommand() *cli.Command {
	var policyPath string
	var outPath string

	return &cli.Command{
		Name:    "export",
		Summary: "Export a policy as a binary snapshot",
		Description: `Encode the resolved policy in canonical form and write it as a
binary snapshot. Snapshots are deterministic: the same policy always
exports to the same bytes.`,
		Usage: "fieldgate policy export [flags]",
		Examples: []cli.Example{
			{
				Description: "Snapshot a policy for distribution",
				Command:     "fieldgate policy export --policy policy.yaml --out policy.fgps",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("export", pflag.ContinueOnError)
			flags.StringVar(&policyPath, "policy", "", "policy file (default: FIELDGATE_POLICY or built-in policy)")
			flags.StringVar(&outPath, "out", "", "destination file for the snapshot (required)")
			return flags
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}
			if outPath == "" {
				return fmt.Errorf("--out is required\n\nusage: fieldgate policy export [flags]")
			}
			p, err := loadPolicy(policyPath)
			if err != nil {
				return err
			}
			snapshot, err := p.Snapshot()
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, snapshot, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fingerprint, err := p.Fingerprint()
			if err != nil {
				return err
			}
			logger.Info("snapshot written",
				"path", outPath, "bytes", len(snapshot), "fingerprint", fingerprint)
			return nil
		},
	}
}

func policyInspectCommand() *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "inspect",
		Summary: "Inspect a policy snapshot",
		Description: `Decode and validate a binary snapshot, printing its fingerprint
and feature list.`,
		Usage: "fieldgate policy inspect [flags] <snapshot>",
		Examples: []cli.Example{
			{
				Description: "Inspect an exported snapshot",
				Command:     "fieldgate policy inspect policy.fgps",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flags.BoolVar(&outputJSON, "json", false, "output the policy document as JSON")
			return flags
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected 1 positional argument (the snapshot file), got %d", len(args))
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			p, err := policy.LoadSnapshot(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if outputJSON {
				return printJSON(p)
			}
			fingerprint, err := p.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Printf("fingerprint: %s\n", fingerprint)
			fmt.Printf("features:    %d\n", len(p.Features))
			for _, def := range p.Features {
				fmt.Printf("  %s\n", def.Name)
			}
			return nil
		},
	}
}
