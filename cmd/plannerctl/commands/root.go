package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"content-planner/bootstrap"
	"content-planner/cmd/plannerctl/output"
	"content-planner/config"
	"content-planner/internal/models"
	"content-planner/internal/repository"
)

var jsonOutput bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plannerctl",
	Short: "Content planner admin tool",
	Long: `plannerctl works against the same environment and store as the planner API.

It mints bearer tokens, hashes the owner password and prints the stored
posts or a month of the calendar without starting the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadPosts reads the post collection from the configured store.
func loadPosts(ctx context.Context) ([]models.Post, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer kv.Close()
	return repository.NewPostRepository(kv, cfg.StorageKey).Load(ctx)
}
