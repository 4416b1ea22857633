// Package cmd provides the CLI commands for Pomodoro Kids.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	statePath  string
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomokids",
	Short: "Pomodoro Kids - focus/break scheduling with points and rewards",
	Long: `Pomodoro Kids plans alternating focus and break blocks for a child's
task profiles (study, gaming, internet), records simulated sessions,
awards points, and tracks parent-defined reward unlocks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Path to the state file (default: ~/.pomokids/state.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomodoro Kids\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
}
