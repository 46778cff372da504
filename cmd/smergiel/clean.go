package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smergiel/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the emission cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		disk, err := driver.OpenDiskCache("smergiel")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := disk.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", disk.Dir())
		}
		return nil
	},
}
