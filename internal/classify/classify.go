package classify

import (
	"os"
	"path/filepath"
	"strings"
)

// FileType is the coarse format of a source file, keyed off its extension.
type FileType string

const (
	TypeMarkdown     FileType = "markdown"
	TypeDocument     FileType = "document"
	TypeSpreadsheet  FileType = "spreadsheet"
	TypePresentation FileType = "presentation"
	TypePDF          FileType = "pdf"
	TypeImage        FileType = "image"
	TypeUnknown      FileType = "unknown"
)

// Category is the topical bucket a file lands in within the data room.
type Category string

const (
	CategoryOverview   Category = "overview"
	CategoryFinancials Category = "financials"
	CategoryTeam       Category = "team"
	CategoryProduct    Category = "product"
	CategoryMarket     Category = "market"
	CategoryLegal      Category = "legal"
	CategoryPitch      Category = "pitch"
	CategoryAppendix   Category = "appendix"
)

// File is one classified entry from a project's raw-files directory.
type File struct {
	Name     string   `json:"name"`
	Type     FileType `json:"type"`
	Category Category `json:"category"`
}

var typeByExt = map[string]FileType{
	".md":   TypeMarkdown,
	".mdx":  TypeMarkdown,
	".txt":  TypeMarkdown,
	".docx": TypeDocument,
	".doc":  TypeDocument,
	".xlsx": TypeSpreadsheet,
	".xls":  TypeSpreadsheet,
	".csv":  TypeSpreadsheet,
	".pptx": TypePresentation,
	".ppt":  TypePresentation,
	".pdf":  TypePDF,
	".png":  TypeImage,
	".jpg":  TypeImage,
	".jpeg": TypeImage,
	".svg":  TypeImage,
	".gif":  TypeImage,
}

// rule pairs a set of filename keywords with the category they select.
type rule struct {
	keywords []string
	category Category
}

// categoryRules are evaluated in order; the first rule with a keyword contained
// in the lowercased filename wins. A name matching several rules therefore
// always lands in the earliest-listed category.
var categoryRules = []rule{
	{[]string{"exec", "summary"}, CategoryOverview},
	{[]string{"financial", "revenue"}, CategoryFinancials},
	{[]string{"team", "org"}, CategoryTeam},
	{[]string{"product", "roadmap"}, CategoryProduct},
	{[]string{"market", "competitor"}, CategoryMarket},
	{[]string{"legal", "term"}, CategoryLegal},
	{[]string{"deck", "pitch"}, CategoryPitch},
}

// TypeOf maps a filename to its FileType by extension, case-insensitively.
func TypeOf(name string) FileType {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := typeByExt[ext]; ok {
		return t
	}
	return TypeUnknown
}

// CategoryOf assigns a category by matching the lowercased filename against the
// ordered keyword rules, defaulting to the appendix.
func CategoryOf(name string) Category {
	lower := strings.ToLower(name)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return CategoryAppendix
}

// ScanDir classifies every regular file in dir, preserving directory-listing
// order. A missing directory is not an error: callers treat it the same as an
// empty one.
func ScanDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, File{
			Name:     e.Name(),
			Type:     TypeOf(e.Name()),
			Category: CategoryOf(e.Name()),
		})
	}
	return files, nil
}
