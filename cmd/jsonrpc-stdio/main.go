// SPDX-FileCopyrightText: Copyright 2021 The Go Language Server Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command jsonrpc-stdio answers one JSON-RPC request, or batch, read from
// stdin with the canned methods of package fake.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.lsp.dev/jsonrpc"
	"go.lsp.dev/jsonrpc/fake"
)

type options struct {
	disableErrorData bool
	ordered          bool
	verbose          bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "jsonrpc-stdio",
		Short: "Answer a JSON-RPC 2.0 request read from stdin",
		Long: `jsonrpc-stdio reads one JSON-RPC 2.0 request or batch from stdin until EOF and writes the response to stdout. Nothing is written when no response is due.

By default responses keep insertion order and error objects carry no data member.
Pass --ordered=false to sort object members, or --disable-error-data=false to keep error data.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.disableErrorData, "disable-error-data", true, "Omit the data member of error objects")
	cmd.Flags().BoolVar(&opts.ordered, "ordered", true, "Keep object members in insertion order instead of sorting them")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests and responses to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer l.Sync() //nolint:errcheck
		logger = l
	}

	var flags jsonrpc.Flags
	if opts.disableErrorData {
		flags |= jsonrpc.DisableErrorData
	}
	if opts.ordered {
		flags |= jsonrpc.OrderedResponse
	}

	p := jsonrpc.NewProcessor(fake.NewRegistry(), jsonrpc.WithFlags(flags), jsonrpc.WithLogger(logger))
	resp := p.HandleReader(cmd.Context(), cmd.InOrStdin())
	if resp == nil {
		return nil
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
