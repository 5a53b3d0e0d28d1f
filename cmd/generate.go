package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/dataroom-cli/internal/generate"
	"github.com/KaramelBytes/dataroom-cli/internal/project"
	"github.com/spf13/cobra"
)

var (
	genDrive      string
	genSlug       string
	genVisibility string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Classify a project's exported files and generate its data-room pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()

		slug := project.Sanitize(genSlug)
		if slug == "" {
			return fmt.Errorf("slug %q sanitizes to nothing usable", genSlug)
		}
		visibility := genVisibility
		if visibility == "" {
			visibility = c.DefaultVisibility
		}
		if !project.ValidVisibility(visibility) {
			return fmt.Errorf("invalid visibility %q (expected public, investor, or internal)", visibility)
		}
		folderID := project.ExtractFolderID(genDrive)

		g := &generate.Generator{DataDir: c.DataDir, SiteDir: c.SiteDir}
		res, err := g.Run(slug, visibility, folderID)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Generated data room: %s (%s)\n", res.Project.Name, res.Project.Slug)
		fmt.Printf("  Visibility: %s · Version: %s · Documents: %d\n",
			res.Project.Visibility, res.Project.Version, res.Project.FileCount)
		if len(res.Project.Categories) > 0 {
			fmt.Printf("  Categories: %s\n", strings.Join(res.Project.Categories, ", "))
		}
		fmt.Printf("  Data:  %s\n", filepath.Join(c.DataDir, slug))
		fmt.Printf("  Pages: %s\n", filepath.Join(c.SiteDir, slug))
		if res.Project.FileCount == 0 {
			fmt.Printf("⚠ No raw files found; add exports to %s and re-run\n",
				filepath.Join(c.DataDir, slug, "raw"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genDrive, "drive", "", "Drive folder id or URL (required)")
	generateCmd.Flags().StringVar(&genSlug, "slug", "", "project slug (required)")
	generateCmd.Flags().StringVar(&genVisibility, "visibility", "", "visibility tier: public, investor, or internal")
	_ = generateCmd.MarkFlagRequired("drive")
	_ = generateCmd.MarkFlagRequired("slug")
}
