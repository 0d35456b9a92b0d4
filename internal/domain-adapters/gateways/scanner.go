package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/foliotools/folio/internal/domain/entities"
)

// imageExtensions is the whitelist of file types the scanner picks up
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// DirectoryScanner finds portfolio images directly under a directory.
// Subdirectories (including the output and backup directories) are not
// traversed.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanImages lists the image files in portfolioDir, sorted by name
func (s *DirectoryScanner) ScanImages(portfolioDir string) ([]entities.SourceImage, error) {
	dirEntries, err := os.ReadDir(portfolioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio directory %s: %w", portfolioDir, err)
	}

	images := make([]entities.SourceImage, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if !IsImageFile(entry.Name()) {
			continue
		}
		images = append(images, entities.SourceImage{
			Path: filepath.Join(portfolioDir, entry.Name()),
			Name: entry.Name(),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	return images, nil
}

// IsImageFile reports whether a file name has a supported image extension
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
