package registry

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pursuit-rl/pursuit/internal/config"
	"github.com/pursuit-rl/pursuit/internal/grid"
)

// setupTestClient creates a registry client backed by a miniredis instance.
func setupTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	client := NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func testConfig(t *testing.T) *config.SystemConfig {
	t.Helper()
	cfg := &config.SystemConfig{
		Agent: config.AgentConfig{
			Start:            grid.Coordinate{X: 0, Y: 0},
			Goal:             grid.Coordinate{X: 4, Y: 4},
			Velocity:         1,
			VisibilityRadius: 2,
		},
		Seekers: []config.SeekerConfig{
			{Start: grid.Coordinate{X: 4, Y: 0}, Velocity: 1},
		},
		Environment: config.EnvironmentConfig{
			Grid:             grid.Dimensions{Width: 5, Height: 5},
			Obstacles:        []grid.Coordinate{{X: 2, Y: 1}},
			EpisodeTimeLimit: 10,
		},
		NumSeekers: 1,
	}
	require.NoError(t, config.Validate(cfg))
	return cfg
}

func TestPing(t *testing.T) {
	client := setupTestClient(t)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestPutAndGet(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	entry, err := client.Put(ctx, "open-field", testConfig(t), []byte("version: 1\n"))
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	assert.Equal(t, "open-field", entry.Name)
	assert.Equal(t, 5, entry.GridWidth)
	assert.Equal(t, 1, entry.NumSeekers)
	assert.Equal(t, 1, entry.NumObstacles)
	assert.Equal(t, 4, entry.MinimumTimeSteps)

	fetched, err := client.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, fetched)
}

func TestPut_RejectsEmptyName(t *testing.T) {
	client := setupTestClient(t)

	_, err := client.Put(context.Background(), "", testConfig(t), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")
}

func TestGet_NotFound(t *testing.T) {
	client := setupTestClient(t)

	_, err := client.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestList_SortedByCreation(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()
	cfg := testConfig(t)

	first, err := client.Put(ctx, "first", cfg, nil)
	require.NoError(t, err)
	second, err := client.Put(ctx, "second", cfg, nil)
	require.NoError(t, err)

	scenarios, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	ids := []string{scenarios[0].ID, scenarios[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.LessOrEqual(t, scenarios[0].CreatedAtMs, scenarios[1].CreatedAtMs)
}

func TestList_Empty(t *testing.T) {
	client := setupTestClient(t)

	scenarios, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestHashRoundTrip(t *testing.T) {
	entry := &Scenario{
		ID:               "abc",
		Name:             "corridor",
		CreatedAtMs:      1700000000000,
		GridWidth:        12,
		GridHeight:       6,
		NumSeekers:       3,
		NumObstacles:     9,
		MinimumTimeSteps: 11,
		Payload:          "version: 1\n",
	}

	rebuilt, err := hashToScenario(scenarioToHash(entry))
	require.NoError(t, err)
	assert.Equal(t, entry, rebuilt)
}

func TestHashToScenario_MalformedField(t *testing.T) {
	hash := scenarioToHash(&Scenario{ID: "abc", CreatedAtMs: 1})
	hash[fieldNumSeekers] = "many"

	_, err := hashToScenario(hash)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "num_seekers")
}
