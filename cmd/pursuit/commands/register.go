package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/pursuit-rl/pursuit/internal/config"
	"github.com/pursuit-rl/pursuit/internal/printer"
	"github.com/pursuit-rl/pursuit/internal/registry"
)

var (
	redisAddr    string
	scenarioName string
)

var registerCmd = &cobra.Command{
	Use:   "register <scenario-file>",
	Short: "Validate a scenario and store it in the registry",
	Long: `Validate a scenario file and, if it is playable, store it in the Redis
scenario registry under a freshly generated ID.

The registry keeps the source YAML verbatim along with derived summary
fields, so training runs can fetch scenarios by ID and listings don't need to
re-parse the payload. Rejected scenarios are never stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis server address")
	registerCmd.Flags().StringVar(&scenarioName, "name", "", "Scenario name (defaults to the file name without extension)")
	rootCmd.AddCommand(registerCmd)
}

// newRegistryClient connects to the registry and verifies the server is
// reachable before any command logic runs.
func newRegistryClient(ctx context.Context, addr string) (*registry.Client, error) {
	client := registry.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("cannot reach Redis at %s: %w", addr, err)
	}
	return client, nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	path := args[0]

	cfg, err := config.Load(path)
	if err != nil {
		return reportRejection(err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to re-read scenario file: %w", err)
	}

	name := scenarioName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	client, err := newRegistryClient(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer client.Close()

	entry, err := client.Put(ctx, name, cfg, payload)
	if err != nil {
		return err
	}

	printer.Success("registered scenario '%s'\n", entry.Name)
	printer.Field("id", entry.ID)
	printer.Field("grid", formatGrid(entry.GridWidth, entry.GridHeight))
	printer.Field("seekers", entry.NumSeekers)
	return nil
}
