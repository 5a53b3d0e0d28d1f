package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/dataroom-cli/internal/utils"
)

// MetadataFile is the per-project metadata record written to the data directory.
const MetadataFile = "metadata.json"

// Visibility tiers for a data room.
const (
	VisibilityPublic   = "public"
	VisibilityInvestor = "investor"
	VisibilityInternal = "internal"
)

// Project is the persisted metadata record for one data-room project.
type Project struct {
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Visibility  string    `json:"visibility"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     string    `json:"version"`
	FileCount   int       `json:"fileCount"`
	Categories  []string  `json:"categories"`
	DriveFolder string    `json:"driveFolder"`
}

// ValidVisibility reports whether v is a recognized visibility tier.
func ValidVisibility(v string) bool {
	switch v {
	case VisibilityPublic, VisibilityInvestor, VisibilityInternal:
		return true
	}
	return false
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9-]`)

// Sanitize lowercases the input and replaces every character outside
// [a-z0-9-] with a hyphen.
func Sanitize(slug string) string {
	return slugUnsafe.ReplaceAllString(strings.ToLower(slug), "-")
}

// DisplayName derives a human-readable name from a slug: hyphen-separated
// segments, each capitalized. Empty segments from doubled or trailing hyphens
// are dropped.
func DisplayName(slug string) string {
	parts := strings.Split(slug, "-")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(words, " ")
}

var driveFolderRe = regexp.MustCompile(`folders/([a-zA-Z0-9_-]+)`)

// ExtractFolderID pulls the folder id out of a Drive URL containing
// "folders/<id>". A bare id is returned unchanged.
func ExtractFolderID(input string) string {
	if m := driveFolderRe.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return input
}

// Version formats the project version for a revision counter.
func Version(revision int) string {
	return fmt.Sprintf("0.1.%d", revision)
}

// Revision parses the revision counter back out of a version string,
// returning 0 for anything unparseable.
func Revision(version string) int {
	i := strings.LastIndex(version, ".")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(version[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Load reads a project's metadata.json from its data directory.
func Load(dir string) (*Project, error) {
	path := filepath.Join(dir, MetadataFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project metadata not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return &p, nil
}

// Save writes metadata.json using an atomic write. A prior record's creation
// timestamp is carried forward unchanged; only this run's fields overwrite.
func (p *Project) Save(dir string) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	if prior, err := Load(dir); err == nil {
		p.CreatedAt = prior.CreatedAt
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	data, err := utils.PrettyJSON(p)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(dir, MetadataFile), data)
}
