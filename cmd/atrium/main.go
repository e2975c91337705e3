package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/interfaces/cli/migrate"
	"github.com/atriumhq/atrium/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atrium",
		Short: "Atrium - multi-tenant SaaS administration platform",
		Long:  `Atrium serves the access decision engine, navigation API and tenant administration surface.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
