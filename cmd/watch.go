package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KaramelBytes/dataroom-cli/internal/generate"
	"github.com/KaramelBytes/dataroom-cli/internal/watcher"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll project raw files and regenerate changed data rooms",
	Long:  `Runs a fixed-interval polling loop over every project with a recorded Drive folder. When any raw file is newer than the project's last sync, the generation pipeline is re-run and the result committed (best-effort) to version control. A failure in one project never stops the watcher.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()

		interval := c.WatchIntervalSec
		if cmd.Flags().Changed("interval") {
			interval = watchInterval
		}
		if interval <= 0 {
			return fmt.Errorf("interval must be positive, got %d", interval)
		}

		zcfg := zap.NewProductionConfig()
		if debug {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		g := &generate.Generator{DataDir: c.DataDir, SiteDir: c.SiteDir}
		w := watcher.New(watcher.Config{
			DataDir:       c.DataDir,
			Interval:      time.Duration(interval) * time.Second,
			Commit:        c.GitAutoCommit,
			CommitMessage: c.GitCommitMessage,
			RepoDir:       c.GitRepoDir,
		}, func(slug, visibility, folderID string) error {
			_, err := g.Run(slug, visibility, folderID)
			return err
		}, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w.Start(ctx)
		<-ctx.Done()
		w.Stop()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&watchInterval, "interval", 300, "polling interval in seconds")
}
