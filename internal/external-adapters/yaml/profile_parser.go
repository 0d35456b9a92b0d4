// Package yaml provides YAML-based resize profile parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/foliotools/folio/internal/domain/entities"
)

// yamlProfile represents the raw YAML structure
type yamlProfile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Mode        string `yaml:"mode"`
	Quality     int    `yaml:"quality"`
	Suffix      string `yaml:"suffix"`
	OutputDir   string `yaml:"output_dir"`
}

// ProfileParser parses YAML resize profile files
type ProfileParser struct{}

// NewProfileParser creates a new YAML parser
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// ParseFile parses a YAML profile file into a Profile entity
func (p *ProfileParser) ParseFile(filePath string) (*entities.Profile, error) {
	//nolint:gosec // G304: filePath is a profile definition path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Profile entity
func (p *ProfileParser) Parse(data []byte) (*entities.Profile, error) {
	var raw yamlProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if raw.Name == "" {
		return nil, fmt.Errorf("profile must have a name")
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("profile %s must have positive width and height", raw.Name)
	}

	mode := entities.ResizeMode(raw.Mode)
	switch mode {
	case "":
		mode = entities.ModeCrop
	case entities.ModeCrop, entities.ModePad:
	default:
		return nil, fmt.Errorf("profile %s has unknown mode %q (want crop or pad)", raw.Name, raw.Mode)
	}

	if raw.Quality < 0 || raw.Quality > 100 {
		return nil, fmt.Errorf("profile %s has invalid quality %d", raw.Name, raw.Quality)
	}

	suffix := raw.Suffix
	if suffix == "" {
		suffix = "_" + raw.Name
	}

	outputDir := raw.OutputDir
	if outputDir == "" {
		outputDir = raw.Name
	}

	return &entities.Profile{
		Name:        raw.Name,
		Description: raw.Description,
		Width:       raw.Width,
		Height:      raw.Height,
		Mode:        mode,
		Quality:     raw.Quality,
		Suffix:      suffix,
		OutputDir:   outputDir,
	}, nil
}
