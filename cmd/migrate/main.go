package main

import (
	"os"

	"stayhub/cmd/migrate/commands"
	"stayhub/shared/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.InitLogger()

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the PostgreSQL schema",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		commands.UpCmd(),
		commands.DownCmd(),
		commands.StepUpCmd(),
		commands.DropCmd(),
		commands.VersionCmd(),
		commands.ForceCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
