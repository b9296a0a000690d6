package config

import (
	"github.com/pursuit-rl/pursuit/internal/pathfind"
)

// Summary holds the derived, display-oriented facts about a validated
// scenario. The CLI prints it and the registry stores it alongside the
// scenario payload so listings don't re-parse YAML.
type Summary struct {
	GridWidth        int
	GridHeight       int
	NumObstacles     int
	NumSeekers       int
	MinimumMoves     int
	MinimumTimeSteps int
	EpisodeTimeLimit int
}

// Summarize derives the summary for a validated scenario. The pathfind calls
// cannot fail for a config that passed Validate, but an error is returned
// rather than swallowed in case a hand-assembled config sneaks through.
func Summarize(cfg *SystemConfig) (Summary, error) {
	moves, err := pathfind.MinimumMoves(cfg.Environment.Grid, cfg.Agent.Start, cfg.Agent.Goal, cfg.Environment.Obstacles)
	if err != nil {
		return Summary{}, err
	}
	steps, err := pathfind.MinimumTimeSteps(moves, cfg.Agent.Velocity)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		GridWidth:        cfg.Environment.Grid.Width,
		GridHeight:       cfg.Environment.Grid.Height,
		NumObstacles:     len(cfg.Environment.Obstacles),
		NumSeekers:       cfg.NumSeekers,
		MinimumMoves:     moves,
		MinimumTimeSteps: steps,
		EpisodeTimeLimit: cfg.Environment.EpisodeTimeLimit,
	}, nil
}
