// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/fieldgate/fieldgate/cmd/fieldgate/cli"
)

// featuresCommand returns the "features" subcommand listing the
// policy's feature vocabulary.
func featuresCommand() *cli.Command {
	var policyPath string
	var outputJSON bool

	return &cli.Command{
		Name:    "features",
		Summary: "List the features a policy declares",
		Description: `List every feature the resolved policy declares, with its
override feature and input/output whitelists.`,
		Usage: "fieldgate features [flags]",
		Examples: []cli.Example{
			{
				Description: "List the built-in feature vocabulary",
				Command:     "fieldgate features",
			},
			{
				Description: "List a custom policy's features as JSON",
				Command:     "fieldgate features --policy policy.yaml --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("features", pflag.ContinueOnError)
			flags.StringVar(&policyPath, "policy", "", "policy file (default: FIELDGATE_POLICY or built-in policy)")
			flags.BoolVar(&outputJSON, "json", false, "output the feature list as JSON")
			return flags
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 0 {
				return fmt.Errorf("expected no positional arguments, got %d", len(args))
			}

			engine, err := loadEngine(policyPath)
			if err != nil {
				return err
			}
			catalog := engine.Catalog()

			type featureRow struct {
				Name     string   `json:"name"`
				Override string   `json:"override,omitempty"`
				Input    []string `json:"input,omitempty"`
				Output   []string `json:"output,omitempty"`
			}
			rows := make([]featureRow, 0, catalog.Len())
			for _, name := range catalog.Features() {
				override, _ := catalog.Override(name)
				rows = append(rows, featureRow{
					Name:     name,
					Override: override,
					Input:    engine.InputFields(name),
					Output:   engine.OutputFields(name),
				})
			}

			if outputJSON {
				return printJSON(rows)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOVERRIDE\tINPUT\tOUTPUT")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					row.Name,
					dashIfEmpty(row.Override),
					dashIfEmpty(strings.Join(row.Input, ",")),
					dashIfEmpty(strings.Join(row.Output, ",")))
			}
			return w.Flush()
		},
	}
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
