package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prato-inc/prato/internal/interfaces/cli/migrate"
	"github.com/prato-inc/prato/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prato",
		Short: "Prato - payment routing and pricing for restaurant SaaS",
		Long:  `Prato resolves PSP routes, prices PIX Automático transactions and manages partner billing policies for the restaurant platform.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
