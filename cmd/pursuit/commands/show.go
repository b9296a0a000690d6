package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pursuit-rl/pursuit/internal/printer"
	"github.com/pursuit-rl/pursuit/internal/registry"
)

var (
	showRedisAddr string
	showPayload   bool
)

var showCmd = &cobra.Command{
	Use:   "show <scenario-id>",
	Short: "Show a registered scenario",
	Long: `Show a registered scenario's summary fields. With --payload, also print
the scenario's source YAML exactly as it was registered.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showRedisAddr, "redis", "localhost:6379", "Redis server address")
	showCmd.Flags().BoolVar(&showPayload, "payload", false, "Print the scenario's source YAML")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	client, err := newRegistryClient(ctx, showRedisAddr)
	if err != nil {
		return err
	}
	defer client.Close()

	entry, err := client.Get(ctx, id)
	if err != nil {
		if registry.IsNotFound(err) {
			return fmt.Errorf("no scenario registered with id %s", id)
		}
		return err
	}

	printer.Info("scenario %s\n", entry.ID)
	printer.Field("name", entry.Name)
	printer.Field("grid", formatGrid(entry.GridWidth, entry.GridHeight))
	printer.Field("seekers", entry.NumSeekers)
	printer.Field("obstacles", entry.NumObstacles)
	printer.Field("minimum time steps", entry.MinimumTimeSteps)

	if showPayload {
		printer.Println()
		printer.Info("%s", entry.Payload)
	}
	return nil
}
