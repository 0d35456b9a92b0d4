package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/foliotools/folio/internal/domain/entities"
)

// ProfileRepository implements repositories.ProfileRepository using the
// built-in profiles plus optional YAML files. A YAML profile with the same
// name as a built-in overrides it.
type ProfileRepository struct {
	profilesDir string
	parser      *ProfileParser
}

// NewProfileRepository creates a new YAML-backed profile repository. An
// empty or missing profiles directory leaves only the built-ins.
func NewProfileRepository(profilesDir string) *ProfileRepository {
	return &ProfileRepository{
		profilesDir: profilesDir,
		parser:      NewProfileParser(),
	}
}

// GetProfile retrieves a resize profile by name
func (r *ProfileRepository) GetProfile(_ context.Context, name string) (*entities.Profile, error) {
	if r.profilesDir != "" {
		filePath := filepath.Join(r.profilesDir, name+".yml")
		if _, err := os.Stat(filePath); err == nil {
			return r.parser.ParseFile(filePath)
		}
	}

	for _, p := range entities.DefaultProfiles() {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("profile not found: %s", name)
}

// ListProfiles returns all available resize profiles, built-ins included
func (r *ProfileRepository) ListProfiles(_ context.Context) ([]*entities.Profile, error) {
	byName := make(map[string]*entities.Profile)
	for _, p := range entities.DefaultProfiles() {
		profile := p
		byName[p.Name] = &profile
	}

	if r.profilesDir != "" {
		entries, err := os.ReadDir(r.profilesDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read profiles directory: %w", err)
		}

		for _, entry := range entries {
			// Skip non-YAML files
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yml") {
				continue
			}

			filePath := filepath.Join(r.profilesDir, entry.Name())
			profile, err := r.parser.ParseFile(filePath)
			if err != nil {
				// Log warning but continue processing other files
				fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", entry.Name(), err)
				continue
			}

			byName[profile.Name] = profile
		}
	}

	profiles := make([]*entities.Profile, 0, len(byName))
	for _, p := range byName {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

	return profiles, nil
}
