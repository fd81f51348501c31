package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/config"
)

var matchFlags struct {
	p1Name, p1Date, p1Time, p1City string
	p2Name, p2Date, p2Time, p2City string
}

// MatchCmd runs the compatibility analysis for two people.
var MatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Check compatibility between two charts",
	Long: `Run the compatibility analysis for two people and print the breakdown
with the final verdict.

Example:
  pandit match --p1-name Asha --p1-date 1995-01-01 --p1-time 12:00 --p1-city Delhi \
               --p2-name Ravi --p2-date 1993-06-15 --p2-time 08:45 --p2-city Mumbai`,
	RunE: runMatch,
}

func init() {
	MatchCmd.Flags().StringVar(&matchFlags.p1Name, "p1-name", "", "First person's name")
	MatchCmd.Flags().StringVar(&matchFlags.p1Date, "p1-date", "", "First person's birth date (YYYY-MM-DD)")
	MatchCmd.Flags().StringVar(&matchFlags.p1Time, "p1-time", "", "First person's birth time (HH:MM)")
	MatchCmd.Flags().StringVar(&matchFlags.p1City, "p1-city", "", "First person's birth place")
	MatchCmd.Flags().StringVar(&matchFlags.p2Name, "p2-name", "", "Second person's name")
	MatchCmd.Flags().StringVar(&matchFlags.p2Date, "p2-date", "", "Second person's birth date (YYYY-MM-DD)")
	MatchCmd.Flags().StringVar(&matchFlags.p2Time, "p2-time", "", "Second person's birth time (HH:MM)")
	MatchCmd.Flags().StringVar(&matchFlags.p2City, "p2-city", "", "Second person's birth place")
	MatchCmd.MarkFlagRequired("p1-date")
	MatchCmd.MarkFlagRequired("p1-time")
	MatchCmd.MarkFlagRequired("p2-date")
	MatchCmd.MarkFlagRequired("p2-time")
}

func runMatch(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p1, err := buildDetail(cfg, log, matchFlags.p1Name, matchFlags.p1Date, matchFlags.p1Time, matchFlags.p1City, 0, 0)
	if err != nil {
		return fmt.Errorf("first person: %w", err)
	}
	p2, err := buildDetail(cfg, log, matchFlags.p2Name, matchFlags.p2Date, matchFlags.p2Time, matchFlags.p2City, 0, 0)
	if err != nil {
		return fmt.Errorf("second person: %w", err)
	}

	client := api.New(cfg.APIBaseURL, log)
	ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
	defer cancel()

	fmt.Println("💞 Matching charts...")
	result, err := client.Match(ctx, astro.BirthDetailPair{P1: p1, P2: p2})
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	fmt.Println()
	fmt.Printf("Compatibility score: %.1f\n", result.Analysis.Score)
	if len(result.Analysis.Details) > 0 {
		keys := make([]string, 0, len(result.Analysis.Details))
		for k := range result.Analysis.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-16s %.1f\n", k, result.Analysis.Details[k])
		}
	}
	if result.AIVerdict != "" {
		fmt.Println()
		fmt.Println(result.AIVerdict)
	}
	return nil
}
