package commands

import (
	"errors"
	"fmt"
	"strconv"

	"stayhub/config"
	"stayhub/helper"

	"github.com/spf13/cobra"
)

var errDropNotConfirmed = errors.New("drop removes every table; rerun with --yes to confirm")

func UpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Up(config.Get())
		},
	}
}

func DownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the last migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}

			return helper.Steps(config.Get(), -steps)
		},
	}

	cmd.Flags().Int("steps", 1, "Number of migrations to revert")

	return cmd
}

func StepUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "step-up",
		Short: "Apply the next pending migration",
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.StepUp(config.Get())
		},
	}
}

func DropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Revert every migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errDropNotConfirmed
			}

			return helper.Drop(config.Get())
		},
	}

	cmd.Flags().Bool("yes", false, "Confirm dropping the schema")

	return cmd
}

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the applied migration version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := helper.Version(config.Get())
			if err != nil {
				return err
			}

			cmd.Printf("version %d (dirty: %t)\n", version, dirty)

			return nil
		},
	}
}

func ForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force [version]",
		Short: "Mark a migration version as applied without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}

			return helper.Force(config.Get(), version)
		},
	}
}
