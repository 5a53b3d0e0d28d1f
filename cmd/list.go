package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/dataroom-cli/internal/classify"
	"github.com/KaramelBytes/dataroom-cli/internal/project"
	"github.com/spf13/cobra"
)

var listFilesProject string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated projects or a project's classified files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFilesProject != "" {
			return listProjectFiles(listFilesProject)
		}
		return listAllProjects()
	},
}

func listAllProjects() error {
	c := effectiveConfig()
	dirs, err := os.ReadDir(c.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("(no projects)")
			return nil
		}
		return err
	}
	found := false
	for _, e := range dirs {
		if !e.IsDir() {
			continue
		}
		p, err := project.Load(filepath.Join(c.DataDir, e.Name()))
		if err != nil {
			continue
		}
		fmt.Printf("- %s: %s (%s, %d docs, %s)\n",
			p.Slug, p.Name, p.Visibility, p.FileCount, p.Version)
		found = true
	}
	if !found {
		fmt.Println("(no projects)")
	}
	return nil
}

func listProjectFiles(slug string) error {
	c := effectiveConfig()
	dir := filepath.Join(c.DataDir, project.Sanitize(slug))
	if _, err := project.Load(dir); err != nil {
		return err
	}
	files, err := classify.ScanDir(filepath.Join(dir, "raw"))
	if err != nil {
		return fmt.Errorf("scan raw files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("(no files)")
		return nil
	}
	for _, f := range files {
		fmt.Printf("- %s: %s / %s\n", f.Name, f.Category, f.Type)
	}
	fmt.Printf("%d files, %d categories\n", len(files), len(distinct(files)))
	return nil
}

func distinct(files []classify.File) []string {
	seen := map[classify.Category]bool{}
	var out []string
	for _, f := range files {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, string(f.Category))
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilesProject, "files", "f", "", "list the classified files of the named project")
}
