package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/charts"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/store"
)

var chartsOutDir string

// ChartsCmd renders the chart images for the cached reading.
var ChartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Fetch chart images for the cached reading",
	Long: `Fetch the Rashi (D1) and Navamsa (D9) chart images for the most recent
cached reading and save them as PNG files.

Both charts are fetched concurrently; if one fails the other is still saved.`,
	RunE: runCharts,
}

func init() {
	ChartsCmd.Flags().StringVarP(&chartsOutDir, "out", "o", ".", "Directory to save the chart images in")
}

func runCharts(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cache, err := openCache()
	if err != nil {
		return err
	}
	detail, err := cache.LoadRequest()
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

	loader := charts.NewLoader(api.New(cfg.APIBaseURL, log), log)
	defer loader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
	defer cancel()

	fmt.Println("📐 Drawing charts...")
	result, err := loader.Load(ctx, *detail)
	if err != nil {
		return err
	}

	saved := 0
	for style, asset := range map[string]*charts.Asset{"rashi-d1": result.D1, "navamsa-d9": result.D9} {
		if asset == nil {
			fmt.Printf("  ✗ %s chart unavailable\n", style)
			continue
		}
		out := filepath.Join(chartsOutDir, style+".png")
		if err := os.WriteFile(out, asset.Data, 0644); err != nil {
			fmt.Printf("  ✗ %s: %v\n", style, err)
			continue
		}
		fmt.Printf("  ✓ %s\n", out)
		saved++
	}
	if saved == 0 {
		return fmt.Errorf("no charts could be fetched")
	}
	return nil
}
