package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Pursuit - grid-pursuit scenario configuration tool",
	Long: `Pursuit validates and manages grid-pursuit scenario configurations:
declarative YAML descriptions of a gridworld in which one agent must reach a
goal cell before any seeker intercepts it.

A scenario is only accepted when it is playable - structurally well-formed,
internally consistent, and with a collision-free path from the agent's start
to its goal that fits in the episode time budget.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
