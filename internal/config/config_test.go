package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/dataroom-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DefaultVisibility != "investor" {
		t.Errorf("default_visibility = %q, want investor", c.DefaultVisibility)
	}
	if c.WatchIntervalSec != 300 {
		t.Errorf("watch_interval_sec = %d, want 300", c.WatchIntervalSec)
	}
	if !c.GitAutoCommit {
		t.Error("git_auto_commit should default to true")
	}
	if c.DataDir == "" || c.SiteDir == "" {
		t.Error("directory defaults should be set")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &config.Global{
		DataDir:           "rooms/data",
		SiteDir:           "rooms/site",
		DefaultVisibility: "internal",
		WatchIntervalSec:  60,
		GitAutoCommit:     false,
		GitCommitMessage:  "sync",
		GitRepoDir:        ".",
	}
	if err := config.Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.DataDir != in.DataDir || out.SiteDir != in.SiteDir {
		t.Errorf("directories not round-tripped: %+v", out)
	}
	if out.DefaultVisibility != "internal" || out.WatchIntervalSec != 60 {
		t.Errorf("values not round-tripped: %+v", out)
	}
}
