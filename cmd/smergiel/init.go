package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"smergiel/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new Smergiel project",
	Long: `Initialize a new Smergiel project by creating a manifest (smergiel.toml)
and an entry point (main.smr). If [path] is omitted, initializes the current
directory; a missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "package name (default: directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}

	created, err := project.Scaffold(target, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized smergiel project in %s\n", target)
	for _, path := range created {
		fmt.Fprintf(out, "  - %s\n", filepath.Base(path))
	}
	return nil
}
