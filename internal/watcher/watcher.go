package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KaramelBytes/dataroom-cli/internal/project"
)

// SyncFunc regenerates one project. The watcher wires this to the generate
// pipeline; tests substitute a stub.
type SyncFunc func(slug, visibility, folderID string) error

// Config carries the operator-tunable watcher settings.
type Config struct {
	DataDir       string        // root of per-project data directories
	Interval      time.Duration // polling period between cycles
	Commit        bool          // attempt a git commit after each successful sync
	CommitMessage string
	RepoDir       string // working directory for git; defaults to the process cwd
}

// Watcher polls every project with a recorded Drive folder and re-runs
// generation when raw files are newer than the project's updatedAt. One
// project failing never aborts a cycle, and a project still syncing when the
// next tick arrives is skipped rather than raced.
type Watcher struct {
	cfg    Config
	sync   SyncFunc
	logger *zap.Logger

	mu      sync.Mutex
	locked  map[string]bool
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Watcher. The logger must be non-nil; pass zap.NewNop() to
// silence it.
func New(cfg Config, syncFn SyncFunc, logger *zap.Logger) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 300 * time.Second
	}
	return &Watcher{
		cfg:    cfg,
		sync:   syncFn,
		logger: logger,
		locked: make(map[string]bool),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start runs the polling loop in a goroutine. It is a no-op if the watcher is
// already running.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("watcher started",
		zap.String("dataDir", w.cfg.DataDir),
		zap.Duration("interval", w.cfg.Interval))
	go w.run(ctx)
}

// Stop terminates the loop and waits for the in-flight cycle to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.logger.Info("watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Cycle()
		}
	}
}

// Cycle performs one scan-and-sync pass over every project directory.
func (w *Watcher) Cycle() {
	log := w.logger.With(zap.String("cycle", uuid.NewString()))
	entries, err := os.ReadDir(w.cfg.DataDir)
	if err != nil {
		log.Debug("no project directory to scan", zap.Error(err))
		return
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		w.syncProject(log, e.Name())
	}
}

func (w *Watcher) syncProject(log *zap.Logger, slug string) {
	dataDir := filepath.Join(w.cfg.DataDir, slug)
	meta, err := project.Load(dataDir)
	if err != nil {
		// Not a project directory; skip quietly.
		return
	}
	if meta.DriveFolder == "" {
		return
	}
	if !w.tryLock(slug) {
		log.Debug("project locked by an in-flight sync, skipping", zap.String("project", slug))
		return
	}
	defer w.unlock(slug)

	latest := latestModTime(filepath.Join(dataDir, "raw"))
	if latest.IsZero() || !latest.After(meta.UpdatedAt) {
		return
	}

	log.Info("raw files changed, regenerating",
		zap.String("project", slug),
		zap.Time("latestChange", latest))
	if err := w.sync(slug, meta.Visibility, meta.DriveFolder); err != nil {
		log.Error("sync failed", zap.String("project", slug), zap.Error(err))
		return
	}
	if w.cfg.Commit {
		commitAll(w.cfg.RepoDir, w.cfg.CommitMessage, log)
	}
	log.Info("project synced", zap.String("project", slug), zap.String("version", versionOf(dataDir)))
}

func (w *Watcher) tryLock(slug string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locked[slug] {
		return false
	}
	w.locked[slug] = true
	return true
}

func (w *Watcher) unlock(slug string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.locked, slug)
}

// latestModTime returns the newest modification time among the regular files
// directly under dir, or the zero time if there are none.
func latestModTime(dir string) time.Time {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return time.Time{}
	}
	var latest time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest
}

func versionOf(dataDir string) string {
	meta, err := project.Load(dataDir)
	if err != nil {
		return ""
	}
	return meta.Version
}
