// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "fieldgate",
		Subcommands: []*Command{
			{
				Name: "check",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "check"
					return nil
				},
			},
			{
				Name: "filter",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "filter"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"filter"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "filter" {
		t.Errorf("dispatched to %q, want %q", called, "filter")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "fieldgate",
		Subcommands: []*Command{
			{
				Name: "policy",
				Subcommands: []*Command{
					{
						Name: "validate",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							called = "policy validate"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"policy", "validate", "policy.yaml"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "policy validate" {
		t.Errorf("dispatched to %q, want %q", called, "policy validate")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "policy.yaml" {
		t.Errorf("args = %v, want [policy.yaml]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var policyPath string
	var positional []string

	command := &Command{
		Name: "check",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flagSet.StringVar(&policyPath, "policy", "", "policy file")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			positional = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--policy", "custom.yaml", "create:user"}, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if policyPath != "custom.yaml" {
		t.Errorf("policy = %q, want custom.yaml", policyPath)
	}
	if len(positional) != 1 || positional[0] != "create:user" {
		t.Errorf("args = %v, want [create:user]", positional)
	}
}

func TestCommand_Execute_UnknownSubcommand(t *testing.T) {
	root := &Command{
		Name: "fieldgate",
		Subcommands: []*Command{
			{Name: "check", Run: func(ctx context.Context, args []string, logger *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"chekc"}, testLogger())
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}
	if !strings.Contains(err.Error(), `"chekc"`) {
		t.Errorf("error %q does not name the unknown command", err)
	}
}

func TestCommand_Execute_BadFlag(t *testing.T) {
	command := &Command{
		Name: "check",
		Flags: func() *pflag.FlagSet {
			return pflag.NewFlagSet("check", pflag.ContinueOnError)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--no-such-flag"}, testLogger())
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error %q does not point at --help", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:        "fieldgate",
		Description: "Authorization-aware input sanitization.",
		Subcommands: []*Command{
			{Name: "check", Summary: "Evaluate a permission"},
			{Name: "filter", Summary: "Filter a payload"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	help := buffer.String()

	for _, want := range []string{"Authorization-aware", "check", "Evaluate a permission", "filter", "Commands:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	if got := err.ExitCode(); got != 3 {
		t.Errorf("ExitCode() = %d, want 3", got)
	}
	if err.Error() == "" {
		t.Error("Error() is empty")
	}
}
