package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CacheCmd groups cache maintenance subcommands.
var CacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local prediction cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cached reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache()
		if err != nil {
			return err
		}
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Println("🧹 Cached reading cleared.")
		return nil
	},
}

func init() {
	CacheCmd.AddCommand(cacheClearCmd)
}
