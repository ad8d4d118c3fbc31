// Copyright 2026 The Fieldgate Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the fieldgate
// CLI.
//
// The central type is [Command], which represents a named subcommand
// with optional nested [Command.Subcommands], a [pflag.FlagSet]
// factory, and a Run function. Commands are assembled into a tree in
// cmd/fieldgate/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help
// output with examples.
package cli
