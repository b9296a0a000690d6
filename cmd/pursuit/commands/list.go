package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pursuit-rl/pursuit/internal/printer"
)

var listRedisAddr string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered scenarios",
	Long: `List every scenario in the registry, oldest first, with the summary
fields stored at registration time.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listRedisAddr, "redis", "localhost:6379", "Redis server address")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := newRegistryClient(ctx, listRedisAddr)
	if err != nil {
		return err
	}
	defer client.Close()

	scenarios, err := client.List(ctx)
	if err != nil {
		return err
	}

	if len(scenarios) == 0 {
		printer.Info("no scenarios registered\n")
		return nil
	}

	for _, s := range scenarios {
		created := time.UnixMilli(s.CreatedAtMs).Format(time.RFC3339)
		printer.Info("%s  %-20s %s grid, %d seekers, %d obstacles  (%s)\n",
			s.ID, s.Name, formatGrid(s.GridWidth, s.GridHeight), s.NumSeekers, s.NumObstacles, created)
	}
	return nil
}
