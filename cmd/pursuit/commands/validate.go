package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pursuit-rl/pursuit/internal/config"
	"github.com/pursuit-rl/pursuit/internal/printer"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario-file>",
	Short: "Validate a scenario file",
	Long: `Validate a scenario file and report whether it describes a playable
configuration.

The file is checked in stages: YAML parsing, structural validation of every
mapping (exact keys, types, ranges), then the semantic invariants of the
assembled scenario - uniqueness, containment, overlaps, goal reachability
under the episode time budget, and the visibility radius bound.

On success, prints a summary of the scenario including the minimum number of
moves and time steps needed to reach the goal. On rejection, prints the first
violation found and exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load(path)
	if err != nil {
		return reportRejection(err)
	}

	summary, err := config.Summarize(cfg)
	if err != nil {
		return err
	}

	printer.Success("scenario is playable: %s\n", path)
	printSummary(summary)
	return nil
}

// printSummary prints the derived facts about a validated scenario.
func printSummary(s config.Summary) {
	printer.Field("grid", formatGrid(s.GridWidth, s.GridHeight))
	printer.Field("seekers", s.NumSeekers)
	printer.Field("obstacles", s.NumObstacles)
	printer.Field("minimum moves to goal", s.MinimumMoves)
	printer.Field("minimum time steps", s.MinimumTimeSteps)
	printer.Field("episode time limit", s.EpisodeTimeLimit)
}

func formatGrid(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// reportRejection classifies a validation failure by kind and prints it via
// the printer, returning the short error Cobra uses for the exit status.
func reportRejection(err error) error {
	var parseErr *config.ParseError
	var structErr *config.StructuralError
	var semErr *config.SemanticError

	switch {
	case errors.As(err, &parseErr):
		return printer.Rejection(
			"scenario file cannot be parsed",
			parseErr.Error(),
			"Fix the YAML syntax (or the file path) and re-run.",
		)
	case errors.As(err, &structErr):
		return printer.Rejection(
			"scenario file is structurally invalid",
			structErr.Error(),
			"Compare the field against a scaffolded scenario ('pursuit init').",
		)
	case errors.As(err, &semErr):
		return printer.Rejection(
			"scenario is not playable",
			semErr.Error(),
			"",
		)
	default:
		return err
	}
}
