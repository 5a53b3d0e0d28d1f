package watcher

import (
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

const gitTimeout = 30 * time.Second

// commitAll stages and commits all pending changes. Commits are best-effort:
// a failure (most commonly "nothing to commit") is logged and swallowed so an
// unattended watcher keeps running.
func commitAll(repoDir, message string, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	add := exec.CommandContext(ctx, "git", "add", "-A")
	add.Dir = repoDir
	if out, err := add.CombinedOutput(); err != nil {
		log.Debug("git add failed", zap.Error(err), zap.ByteString("output", out))
		return
	}

	commit := exec.CommandContext(ctx, "git", "commit", "-m", message)
	commit.Dir = repoDir
	if out, err := commit.CombinedOutput(); err != nil {
		log.Debug("git commit skipped", zap.Error(err), zap.ByteString("output", out))
		return
	}
	log.Info("changes committed")
}
