package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/chat"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/store"
)

// ChatCmd asks the assistant one question about the cached reading.
var ChatCmd = &cobra.Command{
	Use:   "chat <question>",
	Short: "Ask the pandit about the cached reading",
	Long: `Ask a one-shot question about the most recent cached reading.

Example:
  pandit chat "what does my chart say about career changes this year?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cache, err := openCache()
	if err != nil {
		return err
	}
	snap, err := cache.Load()
	if err != nil {
		if err == store.ErrNotFound {
			return fmt.Errorf("no cached reading. Run 'pandit predict' first")
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	query := strings.Join(args, " ")
	client := api.New(cfg.APIBaseURL, log)

	ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
	defer cancel()

	fmt.Println(chat.Exchange(ctx, client, query, snap.FactSheet()))
	return nil
}
