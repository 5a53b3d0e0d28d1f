package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View dataroom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("data_dir: %s\n", c.DataDir)
		fmt.Printf("site_dir: %s\n", c.SiteDir)
		fmt.Printf("default_visibility: %s\n", c.DefaultVisibility)
		fmt.Printf("watch_interval_sec: %d\n", c.WatchIntervalSec)
		fmt.Printf("git_auto_commit: %t\n", c.GitAutoCommit)
		if c.GitCommitMessage != "" {
			fmt.Printf("git_commit_message: %s\n", c.GitCommitMessage)
		}
		if c.GitRepoDir != "" {
			fmt.Printf("git_repo_dir: %s\n", c.GitRepoDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
