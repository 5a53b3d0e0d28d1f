package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/dataroom-cli/internal/classify"
	"github.com/KaramelBytes/dataroom-cli/internal/project"
	"github.com/KaramelBytes/dataroom-cli/internal/utils"
)

// ManifestFile records the most recent raw-directory scan for a project.
const ManifestFile = "drive-manifest.json"

const manifestInstructions = "Export the Drive folder contents into raw/ and re-run dataroom generate."

// Manifest is the scan record written alongside metadata.json. The files list
// is what lets a later run detect whether the classified set changed.
type Manifest struct {
	FolderID     string          `json:"folderId"`
	ScannedAt    time.Time       `json:"scannedAt"`
	Files        []classify.File `json:"files"`
	Instructions string          `json:"instructions"`
}

// Generator runs the classification and page-generation pipeline for one
// project at a time.
type Generator struct {
	DataDir string // root holding <slug>/{raw,mdx,assets,metadata.json,drive-manifest.json}
	SiteDir string // root holding <slug>/{index.mdx,_meta.ts,appendix.mdx,changelog.mdx}
}

// Result reports what one pipeline run produced.
type Result struct {
	Project *project.Project
	Files   []classify.File
}

// Run regenerates a project wholesale: classify the raw files, derive
// metadata, and overwrite the full generated page set. Every output is a pure
// function of the current raw-file set; only createdAt and the revision
// counter carry state across runs.
func (g *Generator) Run(slug, visibility, folderID string) (*Result, error) {
	if slug == "" {
		return nil, errors.New("slug is required")
	}
	if !project.ValidVisibility(visibility) {
		return nil, fmt.Errorf("invalid visibility %q (expected public, investor, or internal)", visibility)
	}

	dataDir := filepath.Join(g.DataDir, slug)
	siteDir := filepath.Join(g.SiteDir, slug)
	for _, sub := range []string{"raw", "mdx", "assets"} {
		if err := utils.EnsureDir(filepath.Join(dataDir, sub)); err != nil {
			return nil, fmt.Errorf("ensure %s dir: %w", sub, err)
		}
	}
	if err := utils.EnsureDir(siteDir); err != nil {
		return nil, fmt.Errorf("ensure site dir: %w", err)
	}

	rawDir := filepath.Join(dataDir, "raw")
	files, err := classify.ScanDir(rawDir)
	if err != nil {
		return nil, fmt.Errorf("scan raw files: %w", err)
	}

	revision := g.nextRevision(dataDir, files)

	p := &project.Project{
		Slug:        slug,
		Name:        project.DisplayName(slug),
		Visibility:  visibility,
		Status:      "active",
		Tags:        []string{},
		Version:     project.Version(revision),
		FileCount:   len(files),
		Categories:  distinctCategories(files),
		DriveFolder: folderID,
	}

	pages := map[string]string{
		"index.mdx":     renderIndex(p, files),
		"_meta.ts":      renderNav(rawDir, files),
		"appendix.mdx":  renderAppendix(p.Slug, files),
		"changelog.mdx": renderChangelog(p),
	}
	for name, content := range pages {
		if err := utils.SafeWriteFile(filepath.Join(siteDir, name), []byte(content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := p.Save(dataDir); err != nil {
		return nil, fmt.Errorf("save metadata: %w", err)
	}
	if err := g.saveManifest(dataDir, folderID, files); err != nil {
		return nil, fmt.Errorf("save manifest: %w", err)
	}

	return &Result{Project: p, Files: files}, nil
}

// nextRevision compares this run's classified set against the previous
// manifest: an unchanged set keeps the prior revision, a changed one bumps it.
func (g *Generator) nextRevision(dataDir string, files []classify.File) int {
	prior, err := loadManifest(dataDir)
	if err != nil {
		return 0
	}
	meta, err := project.Load(dataDir)
	if err != nil {
		return 0
	}
	rev := project.Revision(meta.Version)
	if fileSetChanged(prior.Files, files) {
		rev++
	}
	return rev
}

func fileSetChanged(prev, cur []classify.File) bool {
	if len(prev) != len(cur) {
		return true
	}
	for i := range prev {
		if prev[i] != cur[i] {
			return true
		}
	}
	return false
}

func distinctCategories(files []classify.File) []string {
	seen := make(map[classify.Category]bool, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, string(f.Category))
		}
	}
	return out
}

func loadManifest(dataDir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dataDir, ManifestFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func (g *Generator) saveManifest(dataDir, folderID string, files []classify.File) error {
	if files == nil {
		files = []classify.File{}
	}
	m := Manifest{
		FolderID:     folderID,
		ScannedAt:    time.Now().UTC(),
		Files:        files,
		Instructions: manifestInstructions,
	}
	data, err := utils.PrettyJSON(m)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(dataDir, ManifestFile), data)
}
