package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the checksum manifest kept next to the backups
const ManifestFileName = "manifest.yml"

// BackupManifest records SHA-256 checksums of backed-up originals
type BackupManifest struct {
	CreatedAt time.Time         `yaml:"created_at"`
	UpdatedAt time.Time         `yaml:"updated_at"`
	Checksums map[string]string `yaml:"checksums"` // file name -> hex sha256
}

// ManifestService maintains and verifies the backup checksum manifest
type ManifestService struct{}

// NewManifestService creates a new manifest service
func NewManifestService() *ManifestService {
	return &ManifestService{}
}

// Load reads the manifest from a backup directory. A missing manifest
// returns an empty one, not an error.
func (m *ManifestService) Load(backupDir string) (*BackupManifest, error) {
	path := filepath.Join(backupDir, ManifestFileName)
	//nolint:gosec // G304: manifest path is derived from the user's backup directory
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &BackupManifest{
			CreatedAt: time.Now().UTC(),
			Checksums: map[string]string{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest BackupManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if manifest.Checksums == nil {
		manifest.Checksums = map[string]string{}
	}
	return &manifest, nil
}

// Save writes the manifest into the backup directory
func (m *ManifestService) Save(backupDir string, manifest *BackupManifest) error {
	manifest.UpdatedAt = time.Now().UTC()

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(backupDir, ManifestFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Record hashes a file and stores its checksum under the given name
func (m *ManifestService) Record(manifest *BackupManifest, name, filePath string) error {
	sum, err := m.Checksum(filePath)
	if err != nil {
		return err
	}
	manifest.Checksums[name] = sum
	return nil
}

// MismatchError describes a single verification failure
type MismatchError struct {
	Name   string
	Reason string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

// Verify recomputes checksums of every manifested file in the backup
// directory and returns one entry per mismatch or missing file.
func (m *ManifestService) Verify(backupDir string, manifest *BackupManifest) []MismatchError {
	var problems []MismatchError

	names := make([]string, 0, len(manifest.Checksums))
	for name := range manifest.Checksums {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		expected := manifest.Checksums[name]
		actual, err := m.Checksum(filepath.Join(backupDir, name))
		if err != nil {
			problems = append(problems, MismatchError{Name: name, Reason: "missing or unreadable"})
			continue
		}
		if actual != expected {
			problems = append(problems, MismatchError{
				Name:   name,
				Reason: fmt.Sprintf("checksum mismatch: expected %s, got %s", expected, actual),
			})
		}
	}

	return problems
}

// Checksum calculates the SHA-256 checksum of a file
// Pure Go implementation - no external sha256sum binary needed
func (m *ManifestService) Checksum(filePath string) (string, error) {
	//nolint:gosec // G304: file path comes from the scanned backup directory
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
