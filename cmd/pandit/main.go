package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/commands"
)

// Version is set at build time via -ldflags "-X main.Version=X.Y.Z"
var Version = "0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:   "pandit",
	Short: "PanditAI - Vedic astrology readings in your terminal",
	Long: `PanditAI calculates Vedic birth chart readings and keeps the latest one
cached locally so every command can reuse it.

Quick Start:
  pandit                          Launch the interactive dashboard (default)
  pandit predict --date ... --time ... --city ...
  pandit report                   Read the cached analysis

Commands:
  predict          Calculate a reading and cache it
  report           Show the cached reading, whole or per category
  charts           Save the D1/D9 chart images as PNGs
  match            Compatibility analysis for two people
  chat             Ask a one-shot question about the reading
  cache clear      Delete the cached reading

Config: ~/.panditai/config.yaml
Cache:  ~/.panditai/cache/
Logs:   ~/.panditai/logs/pandit.log`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.RunTUIDefault()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&commands.Verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(commands.TUICmd)
	rootCmd.AddCommand(commands.PredictCmd)
	rootCmd.AddCommand(commands.ReportCmd)
	rootCmd.AddCommand(commands.ChartsCmd)
	rootCmd.AddCommand(commands.MatchCmd)
	rootCmd.AddCommand(commands.ChatCmd)
	rootCmd.AddCommand(commands.CacheCmd)
}

func main() {
	commands.AppVersion = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
