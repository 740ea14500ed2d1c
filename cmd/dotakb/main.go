// Package main provides the entry point for the dotakb CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	dir      string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "dotakb",
		Short:         "Builds a Dota 2 ontology from game data and derives Prolog facts from it",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", "Working directory holding .dotakb and the data files (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error (default: from config)")

	rootCmd.AddCommand(
		newPopulateCmd(opts),
		newConvertCmd(opts),
		newBuildCmd(opts),
		newStoreCmd(opts),
		newDescribeCmd(opts),
		newListCmd(opts),
		newIndexCmd(opts),
		newSearchCmd(opts),
		newInitCmd(opts),
	)

	return rootCmd
}
