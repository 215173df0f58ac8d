package main

import (
	"os"

	"github.com/spf13/cobra"

	"presence/internal/interfaces/cli/migrate"
	"presence/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "presence",
		Short: "Presence - hotel social media presence registry",
		Long:  `Presence collects and serves hotel social media presence registrations, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
