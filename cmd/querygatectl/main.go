// Package main is the querygatectl command: ask questions from the terminal,
// seed a development database and mint API tokens.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time using -ldflags.
	Version = "0.0.0-dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "querygatectl",
		Short:         "Command-line companion for the querygate server",
		Long:          `querygatectl runs the natural-language query pipeline from the terminal and provides development helpers for the college database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("APP_ENV") != "production" {
				_ = godotenv.Load()
			}
		},
	}

	rootCmd.AddCommand(newAskCmd(), newSeedCmd(), newTokenCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the querygatectl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "querygatectl %s\n", Version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
