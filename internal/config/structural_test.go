package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSystemShallowlyValid(t *testing.T) {
	valid := map[string]any{
		"version":     1,
		"agent":       map[string]any{},
		"seekers":     []any{},
		"environment": map[string]any{},
	}
	assert.True(t, isSystemShallowlyValid(valid))

	t.Run("rejects non-mapping", func(t *testing.T) {
		assert.False(t, isSystemShallowlyValid("not a map"))
		assert.False(t, isSystemShallowlyValid(nil))
	})

	t.Run("rejects missing key", func(t *testing.T) {
		m := map[string]any{"version": 1, "agent": nil, "seekers": nil}
		assert.False(t, isSystemShallowlyValid(m))
	})

	t.Run("rejects extra key", func(t *testing.T) {
		m := map[string]any{
			"version": 1, "agent": nil, "seekers": nil, "environment": nil,
			"rendering": true,
		}
		assert.False(t, isSystemShallowlyValid(m))
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		m := map[string]any{"version": 2, "agent": nil, "seekers": nil, "environment": nil}
		assert.False(t, isSystemShallowlyValid(m))
	})

	t.Run("rejects non-integer version", func(t *testing.T) {
		m := map[string]any{"version": "1", "agent": nil, "seekers": nil, "environment": nil}
		assert.False(t, isSystemShallowlyValid(m))
	})
}

func TestIsAgentShallowlyValid(t *testing.T) {
	valid := map[string]any{
		"start_coordinates": []any{0, 0},
		"goal_coordinates":  []any{4, 4},
		"velocity":          1,
		"visibility_radius": 2,
	}
	assert.True(t, isAgentShallowlyValid(valid))

	t.Run("does not inspect nested coordinates", func(t *testing.T) {
		// Shallow check: broken coordinate data is the builder's problem.
		m := map[string]any{
			"start_coordinates": "garbage",
			"goal_coordinates":  nil,
			"velocity":          1,
			"visibility_radius": 2,
		}
		assert.True(t, isAgentShallowlyValid(m))
	})

	t.Run("rejects non-positive velocity", func(t *testing.T) {
		m := map[string]any{
			"start_coordinates": []any{0, 0},
			"goal_coordinates":  []any{4, 4},
			"velocity":          0,
			"visibility_radius": 2,
		}
		assert.False(t, isAgentShallowlyValid(m))
	})

	t.Run("rejects non-positive visibility radius", func(t *testing.T) {
		m := map[string]any{
			"start_coordinates": []any{0, 0},
			"goal_coordinates":  []any{4, 4},
			"velocity":          1,
			"visibility_radius": -3,
		}
		assert.False(t, isAgentShallowlyValid(m))
	})

	t.Run("rejects extra key", func(t *testing.T) {
		m := map[string]any{
			"start_coordinates": []any{0, 0},
			"goal_coordinates":  []any{4, 4},
			"velocity":          1,
			"visibility_radius": 2,
			"name":              "runner",
		}
		assert.False(t, isAgentShallowlyValid(m))
	})
}

func TestIsSeekersShallowlyValid(t *testing.T) {
	seeker := map[string]any{"start_coordinates": []any{4, 0}, "velocity": 1}

	assert.True(t, isSeekersShallowlyValid([]any{seeker}))

	t.Run("rejects empty list", func(t *testing.T) {
		assert.False(t, isSeekersShallowlyValid([]any{}))
	})

	t.Run("rejects non-list", func(t *testing.T) {
		assert.False(t, isSeekersShallowlyValid(seeker))
	})

	t.Run("rejects one bad element", func(t *testing.T) {
		bad := map[string]any{"start_coordinates": []any{4, 0}, "velocity": 0}
		assert.False(t, isSeekersShallowlyValid([]any{seeker, bad}))
	})

	t.Run("rejects seeker with agent keys", func(t *testing.T) {
		agentish := map[string]any{
			"start_coordinates": []any{4, 0},
			"goal_coordinates":  []any{0, 0},
			"velocity":          1,
		}
		assert.False(t, isSeekersShallowlyValid([]any{agentish}))
	})
}

func TestIsEnvironmentShallowlyValid(t *testing.T) {
	valid := map[string]any{
		"grid_dimensions":       map[string]any{"width": 5, "height": 5},
		"obstacles_coordinates": []any{},
		"episode_time_limit":    10,
	}
	assert.True(t, isEnvironmentShallowlyValid(valid))

	t.Run("rejects non-positive time limit", func(t *testing.T) {
		m := map[string]any{
			"grid_dimensions":       map[string]any{"width": 5, "height": 5},
			"obstacles_coordinates": []any{},
			"episode_time_limit":    0,
		}
		assert.False(t, isEnvironmentShallowlyValid(m))
	})

	t.Run("rejects missing obstacles key", func(t *testing.T) {
		m := map[string]any{
			"grid_dimensions":    map[string]any{"width": 5, "height": 5},
			"episode_time_limit": 10,
		}
		assert.False(t, isEnvironmentShallowlyValid(m))
	})
}

func TestIsGridDimensionsDataValid(t *testing.T) {
	assert.True(t, isGridDimensionsDataValid(map[string]any{"width": 5, "height": 3}))
	assert.False(t, isGridDimensionsDataValid(map[string]any{"width": 0, "height": 3}))
	assert.False(t, isGridDimensionsDataValid(map[string]any{"width": 5, "height": "3"}))
	assert.False(t, isGridDimensionsDataValid(map[string]any{"width": 5}))
	assert.False(t, isGridDimensionsDataValid([]any{5, 3}))
}

func TestIsCoordinatesDataValid(t *testing.T) {
	assert.True(t, isCoordinatesDataValid([]any{0, 0}))
	assert.True(t, isCoordinatesDataValid([]any{12, 7}))
	assert.False(t, isCoordinatesDataValid([]any{-1, 0}))
	assert.False(t, isCoordinatesDataValid([]any{1}))
	assert.False(t, isCoordinatesDataValid([]any{1, 2, 3}))
	assert.False(t, isCoordinatesDataValid([]any{"1", 2}))
	assert.False(t, isCoordinatesDataValid(map[string]any{"x": 1, "y": 2}))
}

func TestIsObstaclesDataValid(t *testing.T) {
	assert.True(t, isObstaclesDataValid([]any{}))
	assert.True(t, isObstaclesDataValid([]any{[]any{1, 1}, []any{2, 2}}))
	assert.False(t, isObstaclesDataValid([]any{[]any{1, 1}, []any{2}}))
	assert.False(t, isObstaclesDataValid(nil))
}
