package gateways

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/foliotools/folio/internal/domain/entities"
	"github.com/foliotools/folio/internal/domain/services"
)

// BackupDirName is the subdirectory holding untouched originals
const BackupDirName = "backup_original"

// BackupKeeper copies originals aside before they are processed and keeps a
// checksum manifest next to the copies.
type BackupKeeper struct {
	manifests *services.ManifestService
}

// NewBackupKeeper creates a new backup keeper
func NewBackupKeeper() *BackupKeeper {
	return &BackupKeeper{
		manifests: services.NewManifestService(),
	}
}

// BackupDir returns the backup directory for a portfolio directory
func (b *BackupKeeper) BackupDir(portfolioDir string) string {
	return filepath.Join(portfolioDir, BackupDirName)
}

// Backup copies each image into the backup directory unless a copy already
// exists, and records its checksum in the manifest. It returns the names of
// the images that were newly backed up.
func (b *BackupKeeper) Backup(portfolioDir string, images []entities.SourceImage) ([]string, error) {
	backupDir := b.BackupDir(portfolioDir)
	if err := os.MkdirAll(backupDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	manifest, err := b.manifests.Load(backupDir)
	if err != nil {
		return nil, err
	}

	var copied []string
	for _, img := range images {
		dst := filepath.Join(backupDir, img.Name)
		if _, err := os.Stat(dst); err == nil {
			// Already backed up on an earlier run
			continue
		}

		if err := copyFile(img.Path, dst); err != nil {
			return copied, fmt.Errorf("failed to back up %s: %w", img.Name, err)
		}
		if err := b.manifests.Record(manifest, img.Name, dst); err != nil {
			return copied, err
		}
		copied = append(copied, img.Name)
	}

	if len(copied) > 0 {
		if err := b.manifests.Save(backupDir, manifest); err != nil {
			return copied, err
		}
	}

	return copied, nil
}

// VerifyBackups checks every manifested backup against its recorded checksum
func (b *BackupKeeper) VerifyBackups(portfolioDir string) ([]services.MismatchError, int, error) {
	backupDir := b.BackupDir(portfolioDir)

	manifest, err := b.manifests.Load(backupDir)
	if err != nil {
		return nil, 0, err
	}
	if len(manifest.Checksums) == 0 {
		return nil, 0, fmt.Errorf("no backup manifest found in %s", backupDir)
	}

	return b.manifests.Verify(backupDir, manifest), len(manifest.Checksums), nil
}

func copyFile(src, dst string) error {
	//nolint:gosec // G304: both paths live under the portfolio directory
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	//nolint:errcheck // Defer close on read-only file
	defer in.Close()

	//nolint:gosec // G304: both paths live under the portfolio directory
	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
