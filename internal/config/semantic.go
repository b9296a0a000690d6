package config

import (
	"errors"

	"github.com/pursuit-rl/pursuit/internal/grid"
	"github.com/pursuit-rl/pursuit/internal/pathfind"
)

// Validate checks every cross-field invariant of an assembled scenario in a
// fixed order, failing on the first violation with a *SemanticError naming
// the invariant and echoing the offending values. FromMap runs it before
// returning; it is exported for callers assembling a SystemConfig by hand.
func Validate(cfg *SystemConfig) error {
	dims := cfg.Environment.Grid
	obstacles := cfg.Environment.Obstacles

	if !coordinatesUnique(obstacles) {
		return &SemanticError{Invariant: "obstacle coordinates are not unique", Value: obstacles}
	}
	if !allInGrid(obstacles, dims) {
		return &SemanticError{Invariant: "obstacle coordinates are outside the grid", Value: obstacles}
	}

	if !dims.Contains(cfg.Agent.Start) {
		return &SemanticError{Invariant: "agent start coordinates are outside the grid", Value: cfg.Agent.Start}
	}
	if !dims.Contains(cfg.Agent.Goal) {
		return &SemanticError{Invariant: "agent goal coordinates are outside the grid", Value: cfg.Agent.Goal}
	}

	seekerStarts := make([]grid.Coordinate, 0, len(cfg.Seekers))
	for _, seeker := range cfg.Seekers {
		seekerStarts = append(seekerStarts, seeker.Start)
	}
	if !coordinatesUnique(seekerStarts) {
		return &SemanticError{Invariant: "seeker start coordinates are not unique", Value: seekerStarts}
	}
	if !allInGrid(seekerStarts, dims) {
		return &SemanticError{Invariant: "seeker start coordinates are outside the grid", Value: seekerStarts}
	}

	if contains(obstacles, cfg.Agent.Start) {
		return &SemanticError{Invariant: "agent start coordinates coincide with an obstacle", Value: cfg.Agent.Start}
	}
	if cfg.Agent.Start == cfg.Agent.Goal {
		return &SemanticError{Invariant: "agent start coordinates coincide with the agent goal coordinates", Value: cfg.Agent.Start}
	}
	if contains(seekerStarts, cfg.Agent.Start) {
		return &SemanticError{Invariant: "agent start coordinates coincide with a seeker start", Value: cfg.Agent.Start}
	}
	if contains(obstacles, cfg.Agent.Goal) {
		return &SemanticError{Invariant: "agent goal coordinates coincide with an obstacle", Value: cfg.Agent.Goal}
	}
	// A seeker parked on the goal cell makes the scenario unwinnable even
	// though a path to the goal exists, so the overlap is rejected like every
	// other pair.
	if contains(seekerStarts, cfg.Agent.Goal) {
		return &SemanticError{Invariant: "agent goal coordinates coincide with a seeker start", Value: cfg.Agent.Goal}
	}
	if intersects(seekerStarts, obstacles) {
		return &SemanticError{Invariant: "seeker start coordinates coincide with an obstacle", Value: seekerStarts}
	}

	moves, err := pathfind.MinimumMoves(dims, cfg.Agent.Start, cfg.Agent.Goal, obstacles)
	if err != nil {
		if errors.Is(err, pathfind.ErrNoPath) {
			return &SemanticError{Invariant: "agent goal is unreachable from the agent start given the obstacles", Value: obstacles}
		}
		return err
	}
	steps, err := pathfind.MinimumTimeSteps(moves, cfg.Agent.Velocity)
	if err != nil {
		return err
	}
	if cfg.Environment.EpisodeTimeLimit < steps {
		return &SemanticError{
			Invariant: "episode time limit is too short for the agent to reach the goal",
			Value:     cfg.Environment.EpisodeTimeLimit,
		}
	}

	if cfg.Agent.VisibilityRadius > max(dims.Width, dims.Height) {
		return &SemanticError{Invariant: "agent visibility radius exceeds the grid dimensions", Value: cfg.Agent.VisibilityRadius}
	}

	return nil
}

func coordinatesUnique(coords []grid.Coordinate) bool {
	seen := make(map[grid.Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

func allInGrid(coords []grid.Coordinate, dims grid.Dimensions) bool {
	for _, c := range coords {
		if !dims.Contains(c) {
			return false
		}
	}
	return true
}

func contains(coords []grid.Coordinate, target grid.Coordinate) bool {
	for _, c := range coords {
		if c == target {
			return true
		}
	}
	return false
}

func intersects(first, second []grid.Coordinate) bool {
	set := make(map[grid.Coordinate]struct{}, len(second))
	for _, c := range second {
		set[c] = struct{}{}
	}
	for _, c := range first {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}
