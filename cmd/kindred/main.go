package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kindredhq/kindred/internal/interfaces/cli/migrate"
	"github.com/kindredhq/kindred/internal/interfaces/cli/server"
	"github.com/kindredhq/kindred/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kindred",
		Short: "Kindred - anonymous peer support platform",
		Long:  `Kindred is the backend for an anonymous peer support community: dilemmas, helper sessions, achievements, and moderation.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
