package config

// Shallow structural checks over generic parsed YAML. Each predicate checks a
// single nesting level and defers nested sub-structure to the matching nested
// predicate, which lets the builders name the exact sub-object that failed.

// supportedVersion is the single scenario schema version this build accepts.
const supportedVersion = 1

func hasExactKeys(m map[string]any, keys ...string) bool {
	if len(m) != len(keys) {
		return false
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func isPositiveInt(v any) bool {
	i, ok := v.(int)
	return ok && i > 0
}

func isNonNegativeInt(v any) bool {
	i, ok := v.(int)
	return ok && i >= 0
}

// isSystemShallowlyValid checks the top level of a scenario mapping: the
// exact key set and a supported schema version. The agent, seekers and
// environment values are left to their own predicates.
func isSystemShallowlyValid(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if !hasExactKeys(m, "version", "agent", "seekers", "environment") {
		return false
	}
	version, ok := m["version"].(int)
	return ok && version == supportedVersion
}

func isAgentShallowlyValid(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if !hasExactKeys(m, "start_coordinates", "goal_coordinates", "velocity", "visibility_radius") {
		return false
	}
	return isPositiveInt(m["velocity"]) && isPositiveInt(m["visibility_radius"])
}

func isSeekerShallowlyValid(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if !hasExactKeys(m, "start_coordinates", "velocity") {
		return false
	}
	return isPositiveInt(m["velocity"])
}

// isSeekersShallowlyValid requires a non-empty list in which every element is
// a shallowly valid seeker mapping. The seeker count is derived from this
// list, so an empty list would mean a scenario with nothing to evade.
func isSeekersShallowlyValid(data any) bool {
	list, ok := data.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	for _, seeker := range list {
		if !isSeekerShallowlyValid(seeker) {
			return false
		}
	}
	return true
}

func isEnvironmentShallowlyValid(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if !hasExactKeys(m, "grid_dimensions", "obstacles_coordinates", "episode_time_limit") {
		return false
	}
	return isPositiveInt(m["episode_time_limit"])
}

func isGridDimensionsDataValid(data any) bool {
	m, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if !hasExactKeys(m, "width", "height") {
		return false
	}
	return isPositiveInt(m["width"]) && isPositiveInt(m["height"])
}

// isCoordinatesDataValid checks the raw shape of a single coordinate: a
// 2-element list of non-negative ints. Whether it fits a particular grid is a
// semantic question answered later.
func isCoordinatesDataValid(data any) bool {
	list, ok := data.([]any)
	if !ok || len(list) != 2 {
		return false
	}
	return isNonNegativeInt(list[0]) && isNonNegativeInt(list[1])
}

// isObstaclesDataValid accepts any list (including an empty one) whose
// elements are all valid coordinate data.
func isObstaclesDataValid(data any) bool {
	list, ok := data.([]any)
	if !ok {
		return false
	}
	for _, coords := range list {
		if !isCoordinatesDataValid(coords) {
			return false
		}
	}
	return true
}
