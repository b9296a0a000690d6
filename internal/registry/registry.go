// Package registry stores validated scenarios in Redis so training runs can
// fetch them by ID. Only configurations that passed the full validation
// pipeline get in: Put takes the typed config, not raw bytes, so unvalidated
// data can't reach the store by construction.
//
// Redis layout:
//
//	pursuit:scenario:{id}  hash holding one scenario entry
//	pursuit:scenarios      set of all registered scenario IDs
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pursuit-rl/pursuit/internal/config"
)

const indexKey = "pursuit:scenarios"

func scenarioKey(id string) string {
	return fmt.Sprintf("pursuit:scenario:%s", id)
}

// Scenario is one registry entry: the validated scenario's source YAML plus
// the derived summary fields listings need without re-parsing the payload.
type Scenario struct {
	ID               string
	Name             string
	CreatedAtMs      int64
	GridWidth        int
	GridHeight       int
	NumSeekers       int
	NumObstacles     int
	MinimumTimeSteps int
	Payload          string
}

// Client provides scenario store operations on a Redis server. It is safe
// for concurrent use.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a registry client from Redis connection options.
func NewClient(opts *redis.Options) *Client {
	return &Client{rdb: redis.NewClient(opts)}
}

// Close closes the Redis connection. Implements io.Closer.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity. Useful before a batch of operations.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Put stores a validated scenario under a fresh UUID and returns the entry.
// payload is the scenario's source YAML, kept verbatim so Get can hand back
// exactly what was registered.
func (c *Client) Put(ctx context.Context, name string, cfg *config.SystemConfig, payload []byte) (*Scenario, error) {
	if name == "" {
		return nil, fmt.Errorf("scenario name cannot be empty")
	}

	summary, err := config.Summarize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize scenario: %w", err)
	}

	entry := &Scenario{
		ID:               uuid.New().String(),
		Name:             name,
		CreatedAtMs:      time.Now().UnixMilli(),
		GridWidth:        summary.GridWidth,
		GridHeight:       summary.GridHeight,
		NumSeekers:       summary.NumSeekers,
		NumObstacles:     summary.NumObstacles,
		MinimumTimeSteps: summary.MinimumTimeSteps,
		Payload:          string(payload),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, scenarioKey(entry.ID), scenarioToHash(entry))
	pipe.SAdd(ctx, indexKey, entry.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store scenario: %w", err)
	}

	return entry, nil
}

// Get retrieves a scenario by ID. Returns redis.Nil if no such scenario is
// registered; use IsNotFound to check.
func (c *Client) Get(ctx context.Context, id string) (*Scenario, error) {
	hash, err := c.rdb.HGetAll(ctx, scenarioKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hash) == 0 {
		return nil, redis.Nil
	}

	entry, err := hashToScenario(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize scenario %s: %w", id, err)
	}
	return entry, nil
}

// List returns every registered scenario, oldest first. Entries whose hash
// has been deleted but whose ID lingers in the index are skipped.
func (c *Client) List(ctx context.Context) ([]*Scenario, error) {
	ids, err := c.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario IDs: %w", err)
	}

	scenarios := make([]*Scenario, 0, len(ids))
	for _, id := range ids {
		entry, err := c.Get(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				continue
			}
			return nil, err
		}
		scenarios = append(scenarios, entry)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].CreatedAtMs < scenarios[j].CreatedAtMs
	})
	return scenarios, nil
}

// IsNotFound reports whether err means the scenario does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
