// Package main provides the entry point for the presencescore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for presencescore.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presencescore",
		Short: "Online presence scoring for local businesses",
		Long: `presencescore rates the online presence of a local business.

It combines an automated findings snapshot with optional reviewer
overrides, scores each topic on a 0-100 scale, caps topics with
compliance violations, and aggregates everything into category scores
and a single overall score.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
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
