package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/charts"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/geocode"
	"github.com/prakharDvedi/PanditAI/internal/store"
	"github.com/prakharDvedi/PanditAI/internal/tui"
)

// AppVersion is set by main.go before command execution.
var AppVersion = "0.0.0-dev"

// Verbose is bound to the root --verbose flag.
var Verbose bool

// TUICmd launches the interactive dashboard.
var TUICmd = &cobra.Command{
	Use:    "tui",
	Short:  "Launch the interactive reading dashboard",
	Hidden: true, // running `pandit` without args launches the TUI by default
	Long: `Launch the interactive terminal dashboard.

Navigation:
  - Use 1-5 or Tab to switch report tabs
  - Use arrow keys or j/k to navigate lists
  - Press enter to expand a period or open a category
  - Press 'q' to quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Log to a file so the TUI display stays clean.
	log := newLogger()
	logDir := filepath.Join(config.GetConfigDir(), "logs")
	os.MkdirAll(logDir, 0755)
	logFile, err := os.OpenFile(filepath.Join(logDir, "pandit.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := api.New(cfg.APIBaseURL, log)
	loader := charts.NewLoader(client, log)
	cache, err := openCache()
	if err != nil {
		return err
	}

	return tui.Run(tui.Deps{
		Config:   cfg,
		API:      client,
		Cache:    cache,
		Resolver: geocode.NewResolver(cfg.GeocoderURL, log),
		Loader:   loader,
		Log:      log,
		Version:  AppVersion,
	})
}

// RunTUIDefault runs the TUI when no subcommand is specified.
func RunTUIDefault() error {
	fi, _ := os.Stdout.Stat()
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		return fmt.Errorf("not a terminal, use specific commands instead")
	}
	return runTUI(nil, nil)
}

// newLogger builds the shared logrus logger honoring --verbose.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// openCache opens the durable prediction cache under the config directory.
func openCache() (*store.Cache, error) {
	fs, err := store.NewFileStore(filepath.Join(config.GetConfigDir(), "cache"))
	if err != nil {
		return nil, fmt.Errorf("failed to open prediction cache: %w", err)
	}
	return store.NewCache(fs), nil
}
