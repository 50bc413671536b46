// Forgeloop is a setup tool for ForgeLoop projects.
//
// It scaffolds a new project from a template bundle published as a GitHub
// release, configured for a chosen coding-assistant integration, and
// reports progress on a live terminal display.
//
// Usage:
//
//	forgeloop init <project-name>
//	forgeloop init --here
//	forgeloop check
//
// See 'forgeloop --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
	"github.com/Soft-wa-re/forge-loop/internal/ui"
	"github.com/Soft-wa-re/forge-loop/internal/version"
)

var debugMode bool

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forgeloop",
	Short: "ForgeLoop project setup tool",
	Long: `Setup tool for ForgeLoop projects.

Scaffolds a new project from the latest template release, configured for
your coding-assistant integration of choice, and reports progress on a
live terminal display.

If no command is specified, the banner and usage hints are shown.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugMode {
			return logging.Initialize("debug")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.PrintBanner()
		fmt.Println("Run 'forgeloop init <project-name>' to scaffold a new project")
		fmt.Println("Run 'forgeloop --help' for usage information")
		return nil
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("forgeloop %s\n", version.Full())
	},
}
