package main

import (
	"os"

	"github.com/spf13/cobra"

	"traindesk/internal/interfaces/cli/migrate"
	"traindesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "traindesk",
		Short: "Traindesk - a peer helpdesk with a reusable knowledge base",
		Long:  `Traindesk runs the helpdesk HTTP server and its database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
