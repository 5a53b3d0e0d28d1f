package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataDir           string `mapstructure:"data_dir" yaml:"data_dir"`
	SiteDir           string `mapstructure:"site_dir" yaml:"site_dir"`
	DefaultVisibility string `mapstructure:"default_visibility" yaml:"default_visibility"`
	WatchIntervalSec  int    `mapstructure:"watch_interval_sec" yaml:"watch_interval_sec"`
	GitAutoCommit     bool   `mapstructure:"git_auto_commit" yaml:"git_auto_commit"`
	GitCommitMessage  string `mapstructure:"git_commit_message" yaml:"git_commit_message"`
	GitRepoDir        string `mapstructure:"git_repo_dir" yaml:"git_repo_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dataroom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dataroom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAROOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_dir", filepath.Join("data", "projects"))
	v.SetDefault("site_dir", filepath.Join("content", "projects"))
	v.SetDefault("default_visibility", "investor")
	v.SetDefault("watch_interval_sec", 300)
	v.SetDefault("git_auto_commit", true)
	v.SetDefault("git_commit_message", "chore(dataroom): sync project content")
	v.SetDefault("git_repo_dir", ".")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".dataroom"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
