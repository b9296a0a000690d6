// Package scaffold writes a starter scenario file for new projects. The
// template it embeds is a complete, playable configuration; after writing,
// the file is run through the real validator so `init` can never leave an
// invalid scenario behind.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pursuit-rl/pursuit/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// DefaultFileName is the scenario file name `init` creates.
const DefaultFileName = "scenario.yaml"

// CheckExisting returns an error if a scenario file already exists at the
// target path, so `init` without --force never overwrites work.
func CheckExisting(dir string) error {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists\n\nUse 'pursuit init --force' to overwrite it", path)
	}
	return nil
}

// Initialize writes the starter scenario into dir and validates what it
// wrote. It returns the path of the created file. With force set, an
// existing file is overwritten.
func Initialize(dir string, force bool) (string, error) {
	if !force {
		if err := CheckExisting(dir); err != nil {
			return "", err
		}
	}

	content, err := templatesFS.ReadFile("templates/scenario.yaml.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to read scenario template: %w", err)
	}

	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	// Validate the file we just created
	if _, err := config.Load(path); err != nil {
		return "", fmt.Errorf("scaffolded scenario failed validation: %w", err)
	}

	return path, nil
}
