// Package entities defines core domain models and data structures.
package entities

import "strconv"

// ResizeMode selects how a source image is mapped onto the target dimensions
type ResizeMode string

const (
	// ModeCrop scales the image to cover the target, then center-crops the overflow
	ModeCrop ResizeMode = "crop"
	// ModePad fits the image inside the target and centers it on a white canvas
	ModePad ResizeMode = "pad"
)

// DefaultJPEGQuality is used when a profile does not set one
const DefaultJPEGQuality = 85

// Profile represents one output variant produced for every portfolio image
type Profile struct {
	Name        string
	Width       int
	Height      int
	Mode        ResizeMode
	Quality     int // JPEG quality (1-100)
	Suffix      string
	OutputDir   string // subdirectory of the portfolio dir
	Description string
}

// SizeLabel returns the profile dimensions as "WxH"
func (p Profile) SizeLabel() string {
	return strconv.Itoa(p.Width) + "x" + strconv.Itoa(p.Height)
}

// JPEGQuality returns the configured quality, falling back to the default
func (p Profile) JPEGQuality() int {
	if p.Quality <= 0 || p.Quality > 100 {
		return DefaultJPEGQuality
	}
	return p.Quality
}

// DefaultProfiles returns the built-in variants: a 4:3 grid preview and a
// 3:2 slider image for project detail pages.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:        "preview",
			Width:       800,
			Height:      600,
			Mode:        ModeCrop,
			Quality:     DefaultJPEGQuality,
			Suffix:      "_preview",
			OutputDir:   "preview",
			Description: "800x600px (4:3 ratio) for the portfolio grid",
		},
		{
			Name:        "slider",
			Width:       1200,
			Height:      800,
			Mode:        ModeCrop,
			Quality:     DefaultJPEGQuality,
			Suffix:      "_slider",
			OutputDir:   "slider",
			Description: "1200x800px (3:2 ratio) for project detail pages",
		},
	}
}
