package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/dataroom-cli/internal/classify"
)

func TestTypeOfExtensionGroups(t *testing.T) {
	cases := map[string]classify.FileType{
		"notes.md":       classify.TypeMarkdown,
		"page.mdx":       classify.TypeMarkdown,
		"readme.txt":     classify.TypeMarkdown,
		"contract.docx":  classify.TypeDocument,
		"old.doc":        classify.TypeDocument,
		"model.xlsx":     classify.TypeSpreadsheet,
		"legacy.xls":     classify.TypeSpreadsheet,
		"export.csv":     classify.TypeSpreadsheet,
		"deck.pptx":      classify.TypePresentation,
		"deck.ppt":       classify.TypePresentation,
		"report.pdf":     classify.TypePDF,
		"logo.png":       classify.TypeImage,
		"photo.jpg":      classify.TypeImage,
		"photo.jpeg":     classify.TypeImage,
		"icon.svg":       classify.TypeImage,
		"anim.gif":       classify.TypeImage,
		"archive.zip":    classify.TypeUnknown,
		"no-extension":   classify.TypeUnknown,
		"REPORT.PDF":     classify.TypePDF,
		"Summary.XLSX":   classify.TypeSpreadsheet,
		"mixedCase.MdX":  classify.TypeMarkdown,
		"weird.tar.Docx": classify.TypeDocument,
	}
	for name, want := range cases {
		if got := classify.TypeOf(name); got != want {
			t.Errorf("TypeOf(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCategoryOfKeywords(t *testing.T) {
	cases := map[string]classify.Category{
		"Executive-Summary.pdf":  classify.CategoryOverview,
		"Financial-Model.xlsx":   classify.CategoryFinancials,
		"revenue-2026.csv":       classify.CategoryFinancials,
		"Team-Bios.docx":         classify.CategoryTeam,
		"org-chart.png":          classify.CategoryTeam,
		"Product-Roadmap.md":     classify.CategoryProduct,
		"market-sizing.xlsx":     classify.CategoryMarket,
		"competitor-matrix.xlsx": classify.CategoryMarket,
		"legal-opinion.pdf":      classify.CategoryLegal,
		"term-sheet.docx":        classify.CategoryLegal,
		"Pitch-Deck.pptx":        classify.CategoryPitch,
		"random-notes.txt":       classify.CategoryAppendix,
	}
	for name, want := range cases {
		if got := classify.CategoryOf(name); got != want {
			t.Errorf("CategoryOf(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCategoryPriorityOrder(t *testing.T) {
	// A name matching both overview and financials keywords must land in
	// overview, which is checked first.
	if got := classify.CategoryOf("exec-financial-review.pdf"); got != classify.CategoryOverview {
		t.Fatalf("expected overview for multi-match name, got %q", got)
	}
	// team vs legal: team is checked earlier.
	if got := classify.CategoryOf("team-legal-notes.md"); got != classify.CategoryTeam {
		t.Fatalf("expected team for multi-match name, got %q", got)
	}
}

func TestScanDirMissingDirectory(t *testing.T) {
	files, err := classify.ScanDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected zero files, got %d", len(files))
	}
}

func TestScanDirClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	names := []string{"Executive-Summary.pdf", "Financial-Model.xlsx", "random-notes.txt"}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are skipped.
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := classify.ScanDir(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	want := map[string][2]string{
		"Executive-Summary.pdf": {string(classify.TypePDF), string(classify.CategoryOverview)},
		"Financial-Model.xlsx":  {string(classify.TypeSpreadsheet), string(classify.CategoryFinancials)},
		"random-notes.txt":      {string(classify.TypeMarkdown), string(classify.CategoryAppendix)},
	}
	for _, f := range files {
		w, ok := want[f.Name]
		if !ok {
			t.Errorf("unexpected file %q", f.Name)
			continue
		}
		if string(f.Type) != w[0] || string(f.Category) != w[1] {
			t.Errorf("%s classified as (%s, %s), want (%s, %s)", f.Name, f.Type, f.Category, w[0], w[1])
		}
	}
}

func TestScanDirDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a-summary.md", "b-financials.xlsx", "c-notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	first, err := classify.ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := classify.ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
