package commands

import (
	"github.com/spf13/cobra"

	"github.com/pursuit-rl/pursuit/internal/printer"
	"github.com/pursuit-rl/pursuit/internal/scaffold"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter scenario file",
	Long: `Create a starter scenario.yaml in the current directory.

The generated file is a complete, playable 10x10 scenario with two seekers
and a small obstacle cluster, and is validated immediately after writing.
Existing files are never overwritten without --force.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing scenario.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := scaffold.Initialize(".", forceInit)
	if err != nil {
		return err
	}

	printer.Success("created %s\n", path)
	printer.Info("Edit it to taste, then run 'pursuit validate %s'.\n", path)
	return nil
}
