package generate

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/dataroom-cli/internal/classify"
	"github.com/KaramelBytes/dataroom-cli/internal/project"
)

// renderIndex produces the project landing page: a summary block followed by a
// table of every classified file.
func renderIndex(p *project.Project, files []classify.File) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(p.Name)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "**Status:** %s · **Visibility:** %s · **Documents:** %d · **Version:** %s\n\n",
		p.Status, p.Visibility, p.FileCount, p.Version)

	if len(files) == 0 {
		sb.WriteString("_No documents yet. Add exported files to the raw directory and regenerate._\n")
		return sb.String()
	}

	sb.WriteString("| Document | Category | Type |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", f.Name, f.Category, f.Type)
	}
	return sb.String()
}

// renderNav produces the navigation manifest (_meta.ts): a fixed Overview
// entry, one entry per markdown or document file, and a fixed trailing
// appendix entry.
func renderNav(rawDir string, files []classify.File) string {
	var sb strings.Builder
	sb.WriteString("export default {\n")
	sb.WriteString("  \"index\": \"Overview\",\n")
	for _, f := range files {
		if f.Type != classify.TypeMarkdown && f.Type != classify.TypeDocument {
			continue
		}
		slug := pageSlug(f.Name)
		if slug == "" || slug == "index" || slug == "appendix" {
			continue
		}
		fmt.Fprintf(&sb, "  %q: %q,\n", slug, navTitle(rawDir, f))
	}
	sb.WriteString("  \"appendix\": \"Downloads & Appendix\",\n")
	sb.WriteString("};\n")
	return sb.String()
}

// renderAppendix produces the downloads table with one asset link per file.
func renderAppendix(slug string, files []classify.File) string {
	var sb strings.Builder
	sb.WriteString("# Downloads & Appendix\n\n")
	if len(files) == 0 {
		sb.WriteString("_No downloads available._\n")
		return sb.String()
	}
	sb.WriteString("| Document | Category | Download |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, f := range files {
		fmt.Fprintf(&sb, "| %s | %s | [Download](/projects/%s/assets/%s) |\n",
			f.Name, f.Category, slug, f.Name)
	}
	return sb.String()
}

// renderChangelog produces the single current-version entry block.
func renderChangelog(p *project.Project) string {
	var sb strings.Builder
	sb.WriteString("# Changelog\n\n")
	fmt.Fprintf(&sb, "## %s — %s\n\n", p.Version, time.Now().UTC().Format("2006-01-02"))
	fmt.Fprintf(&sb, "- Documents: %d\n", p.FileCount)
	fmt.Fprintf(&sb, "- Categories: %s\n", strings.Join(p.Categories, ", "))
	return sb.String()
}

// pageSlug strips the extension and normalizes a filename into a URL-safe
// page identifier.
func pageSlug(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.Trim(project.Sanitize(base), "-")
}

// navTitle picks the display title for a nav entry. Markdown files with a
// top-level heading use it; everything else falls back to the humanized
// filename.
func navTitle(rawDir string, f classify.File) string {
	if f.Type == classify.TypeMarkdown {
		if h := firstHeading(filepath.Join(rawDir, f.Name)); h != "" {
			return h
		}
	}
	return humanize(f.Name)
}

// humanize turns a filename into a title: extension stripped, separators
// replaced with spaces, words capitalized.
func humanize(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
