package main

import (
	"os"

	"github.com/spf13/cobra"

	"gatehouse/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gatehouse",
		Short: "Gatehouse - membership application review service",
		Long:  `Gatehouse reviews membership applications: submission, claim-based review, decisions with a full audit trail, and modmail thread routing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
