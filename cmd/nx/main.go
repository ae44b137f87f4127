// Package main provides the nx CLI, which indexes an iota tensor and
// prints the resulting view.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nx",
		Short:         "Index named tensors from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSliceCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nx %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
