package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/store"
)

// ReportCmd prints the cached reading, whole or one category at a time.
var ReportCmd = &cobra.Command{
	Use:   "report [category]",
	Short: "Show the cached reading",
	Long: `Show the most recent cached reading.

With a category argument, only that section is printed. Categories:
personality, health, money, career, love, miscellaneous.

An unrecognized category falls back to the overview rather than failing:
the reading is always reachable once it is cached.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
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

	if len(args) == 1 {
		if key, err := astro.ParseCategory(args[0]); err == nil {
			printCategory(snap, key)
			return nil
		}
		fmt.Printf("Unknown category %q, showing the overview.\n\n", args[0])
	}

	printOverview(snap)
	return nil
}

func printOverview(snap *astro.Snapshot) {
	fmt.Printf("✨ Destiny score: %.0f/100\n", snap.Meta.DestinyScore)
	if snap.Meta.AscendantSign != "" {
		fmt.Printf("   Ascendant: %s\n", snap.Meta.AscendantSign)
	}
	if snap.Meta.Insight != "" {
		fmt.Printf("\n%s\n", snap.Meta.Insight)
	}
	fmt.Println()

	for _, key := range astro.Categories() {
		printCategory(snap, key)
		fmt.Println()
	}

	if len(snap.Yogas) > 0 {
		fmt.Printf("🪐 Yogas (%d)\n", len(snap.Yogas))
		for _, y := range snap.Yogas {
			fmt.Printf("   • %s — %s\n", y.Name, y.Desc)
		}
		fmt.Println()
	}

	printTimeline(snap)
}

func printCategory(snap *astro.Snapshot, key astro.CategoryKey) {
	fmt.Printf("%s %s\n", key.Icon(), key.Title())
	fmt.Printf("   %s\n", snap.ReadingFor(key))
}

func printTimeline(snap *astro.Snapshot) {
	if len(snap.Dasha.Timeline) == 0 {
		fmt.Println("No timeline data available.")
		return
	}
	fmt.Println("📅 Dasha timeline")
	now := time.Now()
	for _, p := range snap.Dasha.Timeline {
		marker := " "
		if p.ActiveOn(now) {
			marker = "●"
		}
		fmt.Printf(" %s %-10s %s — %s\n", marker, p.Lord, p.Start, p.End)
	}
}
