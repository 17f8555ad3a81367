package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"bhajaj.dev/internal/config"
	"bhajaj.dev/internal/content"
	"bhajaj.dev/internal/security"
	"bhajaj.dev/internal/services"
	"bhajaj.dev/internal/views"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       CONTENT_PATH=content.yaml SITE_TITLE=... generate <output-dir>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}

// run writes index.html, one fragment per section and content.json under outputDir
func run(outputDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c, err := content.Load(cfg.ContentPath, security.NewTextSanitizer())
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	sectionsDir := filepath.Join(outputDir, "sections")
	if err := os.MkdirAll(sectionsDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cs := services.NewContentService(c)
	rs := services.NewRenderService(cs, cfg.SiteTitle, nil)

	page, err := rs.Page()
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outputDir, "index.html"), page); err != nil {
		return err
	}

	for _, name := range views.SectionNames {
		fragment, err := rs.Section(name)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(sectionsDir, name+".html"), fragment); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(cs.Content(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}
	return writeFile(filepath.Join(outputDir, "content.json"), data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("  Created %s (%d bytes)\n", path, len(data))
	return nil
}
