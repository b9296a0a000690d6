// Package config builds and validates grid-pursuit scenario configurations.
//
// Validation is two-phase. Shallow structural predicates first check the raw
// parsed YAML one nesting level at a time (exact key sets, primitive types
// and ranges), then the typed builders assemble immutable configuration
// values, and finally the semantic validator checks every cross-field
// invariant on the assembled system, including shortest-path reachability of
// the agent's goal. A *SystemConfig returned by FromMap or Load has passed
// all of it; there is no way to obtain an unvalidated one from those paths.
//
// Failures carry one of three typed errors - *ParseError, *StructuralError,
// *SemanticError - discriminable with errors.As.
package config

import (
	"github.com/pursuit-rl/pursuit/internal/grid"
)

// AgentConfig describes the pursued agent: where it starts, the goal cell it
// must reach, how many moves it may make per time step, and how far it sees.
type AgentConfig struct {
	Start            grid.Coordinate
	Goal             grid.Coordinate
	Velocity         int
	VisibilityRadius int
}

// SeekerConfig describes one seeker. Seekers have no goal of their own; they
// exist to intercept the agent.
type SeekerConfig struct {
	Start    grid.Coordinate
	Velocity int
}

// EnvironmentConfig describes the gridworld itself: its dimensions, the
// permanently blocked cells, and the episode length in time steps.
type EnvironmentConfig struct {
	Grid             grid.Dimensions
	Obstacles        []grid.Coordinate
	EpisodeTimeLimit int
}

// SystemConfig is the fully assembled scenario. NumSeekers is derived from
// the seeker list during construction, never read from the file.
type SystemConfig struct {
	Agent       AgentConfig
	Seekers     []SeekerConfig
	Environment EnvironmentConfig
	NumSeekers  int
}

// coordinateFromRaw converts coordinate data that has already passed
// isCoordinatesDataValid. Callers must check first.
func coordinateFromRaw(data any) grid.Coordinate {
	list := data.([]any)
	return grid.Coordinate{X: list[0].(int), Y: list[1].(int)}
}

// agentFromMap builds an AgentConfig from a shallowly valid agent mapping,
// re-validating the two coordinate fields it owns.
func agentFromMap(raw map[string]any) (AgentConfig, error) {
	if !isCoordinatesDataValid(raw["start_coordinates"]) {
		return AgentConfig{}, &StructuralError{Field: "agent start_coordinates", Value: raw}
	}
	if !isCoordinatesDataValid(raw["goal_coordinates"]) {
		return AgentConfig{}, &StructuralError{Field: "agent goal_coordinates", Value: raw}
	}
	return AgentConfig{
		Start:            coordinateFromRaw(raw["start_coordinates"]),
		Goal:             coordinateFromRaw(raw["goal_coordinates"]),
		Velocity:         raw["velocity"].(int),
		VisibilityRadius: raw["visibility_radius"].(int),
	}, nil
}

// seekerFromMap builds a SeekerConfig from a shallowly valid seeker mapping.
func seekerFromMap(raw map[string]any) (SeekerConfig, error) {
	if !isCoordinatesDataValid(raw["start_coordinates"]) {
		return SeekerConfig{}, &StructuralError{Field: "seeker start_coordinates", Value: raw}
	}
	return SeekerConfig{
		Start:    coordinateFromRaw(raw["start_coordinates"]),
		Velocity: raw["velocity"].(int),
	}, nil
}

// environmentFromMap builds an EnvironmentConfig from a shallowly valid
// environment mapping, re-validating the grid dimensions and obstacle list.
func environmentFromMap(raw map[string]any) (EnvironmentConfig, error) {
	if !isGridDimensionsDataValid(raw["grid_dimensions"]) {
		return EnvironmentConfig{}, &StructuralError{Field: "environment grid_dimensions", Value: raw}
	}
	if !isObstaclesDataValid(raw["obstacles_coordinates"]) {
		return EnvironmentConfig{}, &StructuralError{Field: "environment obstacles_coordinates", Value: raw}
	}

	dimsRaw := raw["grid_dimensions"].(map[string]any)
	obstaclesRaw := raw["obstacles_coordinates"].([]any)
	obstacles := make([]grid.Coordinate, 0, len(obstaclesRaw))
	for _, coords := range obstaclesRaw {
		obstacles = append(obstacles, coordinateFromRaw(coords))
	}

	return EnvironmentConfig{
		Grid:             grid.Dimensions{Width: dimsRaw["width"].(int), Height: dimsRaw["height"].(int)},
		Obstacles:        obstacles,
		EpisodeTimeLimit: raw["episode_time_limit"].(int),
	}, nil
}

// FromMap assembles and validates a SystemConfig from parsed scenario data
// whose top level has already passed the shallow system check (Load does
// that; callers holding a raw map are expected to as well). It checks the
// shallow validity of each sub-mapping, builds the typed configuration, and
// runs the full semantic validation before returning. Construction and
// validation are inseparable.
func FromMap(data map[string]any) (*SystemConfig, error) {
	if !isAgentShallowlyValid(data["agent"]) {
		return nil, &StructuralError{Field: "agent configuration", Value: data["agent"]}
	}
	if !isSeekersShallowlyValid(data["seekers"]) {
		return nil, &StructuralError{Field: "seeker configurations", Value: data["seekers"]}
	}
	if !isEnvironmentShallowlyValid(data["environment"]) {
		return nil, &StructuralError{Field: "environment configuration", Value: data["environment"]}
	}

	agent, err := agentFromMap(data["agent"].(map[string]any))
	if err != nil {
		return nil, err
	}

	seekersRaw := data["seekers"].([]any)
	seekers := make([]SeekerConfig, 0, len(seekersRaw))
	for _, seekerRaw := range seekersRaw {
		seeker, err := seekerFromMap(seekerRaw.(map[string]any))
		if err != nil {
			return nil, err
		}
		seekers = append(seekers, seeker)
	}

	environment, err := environmentFromMap(data["environment"].(map[string]any))
	if err != nil {
		return nil, err
	}

	cfg := &SystemConfig{
		Agent:       agent,
		Seekers:     seekers,
		Environment: environment,
		NumSeekers:  len(seekers),
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
