package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passgen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords and score their strength",
		Long: `passgen generates random passwords from a configurable set of
character classes and scores their strength on a 0-6 scale.

Randomness comes from the operating system's secure random source.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("locale", "", "Print strength labels in this locale (e.g. de, ja)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewStrengthCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
