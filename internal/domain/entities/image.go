package entities

import (
	"path/filepath"
	"strings"
)

// SourceImage represents an original portfolio image awaiting processing
type SourceImage struct {
	Path string // absolute or portfolio-dir-relative path to the file
	Name string // file name including extension
}

// Base returns the file name without its extension
func (s SourceImage) Base() string {
	return strings.TrimSuffix(s.Name, filepath.Ext(s.Name))
}

// Ext returns the lowercased file extension including the dot
func (s SourceImage) Ext() string {
	return strings.ToLower(filepath.Ext(s.Name))
}

// IsJPEG reports whether the image is saved as JPEG
func (s SourceImage) IsJPEG() bool {
	ext := s.Ext()
	return ext == ".jpg" || ext == ".jpeg"
}

// VariantName returns the output file name for a profile,
// e.g. "office.jpg" + preview -> "office_preview.jpg"
func (s SourceImage) VariantName(p Profile) string {
	return s.Base() + p.Suffix + filepath.Ext(s.Name)
}
