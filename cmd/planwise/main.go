package main

import (
	"os"

	"github.com/spf13/cobra"

	"planwise/internal/interfaces/cli/migrate"
	"planwise/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planwise",
		Short: "Planwise - resource allocation optimizer",
		Long:  `Planwise analyzes team capacity, detects scheduling conflicts, matches skills to project needs, and recommends resource allocations.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
