package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/dataroom-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired later to config/viper)
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dataroom",
	Short: "Dataroom CLI: turn exported Drive files into a gated data-room site",
	Long:  `Dataroom is a CLI tool that classifies exported Google Drive files, derives project metadata, and generates the static pages of an access-gated data-room site. A companion watcher re-runs generation when raw files change.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataroom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration, falling back to defaults
// when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load("")
	if err != nil {
		return &cfgpkg.Global{
			DataDir:           "data/projects",
			SiteDir:           "content/projects",
			DefaultVisibility: "investor",
			WatchIntervalSec:  300,
		}
	}
	return c
}
