package registry

import (
	"fmt"
	"strconv"
)

// Hash field names for a scenario entry.
const (
	fieldID               = "id"
	fieldName             = "name"
	fieldCreatedAtMs      = "created_at_ms"
	fieldGridWidth        = "grid_width"
	fieldGridHeight       = "grid_height"
	fieldNumSeekers       = "num_seekers"
	fieldNumObstacles     = "num_obstacles"
	fieldMinimumTimeSteps = "minimum_time_steps"
	fieldPayload          = "payload"
)

// scenarioToHash converts a scenario entry to the flat string map Redis
// hashes require.
func scenarioToHash(s *Scenario) map[string]string {
	return map[string]string{
		fieldID:               s.ID,
		fieldName:             s.Name,
		fieldCreatedAtMs:      strconv.FormatInt(s.CreatedAtMs, 10),
		fieldGridWidth:        strconv.Itoa(s.GridWidth),
		fieldGridHeight:       strconv.Itoa(s.GridHeight),
		fieldNumSeekers:       strconv.Itoa(s.NumSeekers),
		fieldNumObstacles:     strconv.Itoa(s.NumObstacles),
		fieldMinimumTimeSteps: strconv.Itoa(s.MinimumTimeSteps),
		fieldPayload:          s.Payload,
	}
}

// hashToScenario rebuilds a scenario entry from its Redis hash.
func hashToScenario(hash map[string]string) (*Scenario, error) {
	createdAt, err := strconv.ParseInt(hash[fieldCreatedAtMs], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s field: %w", fieldCreatedAtMs, err)
	}

	ints := make(map[string]int, 5)
	for _, field := range []string{fieldGridWidth, fieldGridHeight, fieldNumSeekers, fieldNumObstacles, fieldMinimumTimeSteps} {
		v, err := strconv.Atoi(hash[field])
		if err != nil {
			return nil, fmt.Errorf("invalid %s field: %w", field, err)
		}
		ints[field] = v
	}

	return &Scenario{
		ID:               hash[fieldID],
		Name:             hash[fieldName],
		CreatedAtMs:      createdAt,
		GridWidth:        ints[fieldGridWidth],
		GridHeight:       ints[fieldGridHeight],
		NumSeekers:       ints[fieldNumSeekers],
		NumObstacles:     ints[fieldNumObstacles],
		MinimumTimeSteps: ints[fieldMinimumTimeSteps],
		Payload:          hash[fieldPayload],
	}, nil
}
