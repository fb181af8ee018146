// Package main provides the CLI entry point for xjson, a tool that converts
// between XML and JSON documents.
package main

import (
	"errors"
	"fmt"
	"os"

	"charm.land/log/v2"
	perrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kynexlabs/xjson"
)

func main() {
	logger := log.New(os.Stderr)

	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:           "xjson",
		Short:         "Convert between XML and JSON",
		Long:          `xjson converts XML documents to JSON and back, and can re-indent XML in place.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.LoadFile(cmd.Flags()); err != nil {
				return err
			}
			return cfg.Validate()
		},
	}
	cfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		logger.Warn("register completions", "error", err)
	}

	rootCmd.AddCommand(
		newToJSONCommand(cfg, logger),
		newToXMLCommand(cfg, logger),
		newFmtCommand(cfg, logger),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "xjson: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command error to a process exit code: 2 for malformed
// input (a parse error), 1 for everything else (argument/IO errors).
func exitCodeFor(err error) int {
	cause := perrors.Cause(err)
	var perr *xjson.ParseError
	if errors.As(cause, &perr) {
		return 2
	}
	return 1
}
