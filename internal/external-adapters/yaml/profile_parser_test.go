package yaml

import (
	"testing"

	"github.com/foliotools/folio/internal/domain/entities"
)

func TestProfileParser_Parse_Valid(t *testing.T) {
	parser := NewProfileParser()
	yamlData := []byte(`name: hero
description: Full-width hero banner
width: 1920
height: 640
mode: crop
quality: 90
suffix: _hero
output_dir: hero
`)

	profile, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if profile.Name != "hero" {
		t.Errorf("Name = %v, want hero", profile.Name)
	}
	if profile.Width != 1920 || profile.Height != 640 {
		t.Errorf("size = %dx%d, want 1920x640", profile.Width, profile.Height)
	}
	if profile.Mode != entities.ModeCrop {
		t.Errorf("Mode = %v, want crop", profile.Mode)
	}
	if profile.Quality != 90 {
		t.Errorf("Quality = %d, want 90", profile.Quality)
	}
	if profile.Suffix != "_hero" {
		t.Errorf("Suffix = %v, want _hero", profile.Suffix)
	}
}

func TestProfileParser_Parse_Defaults(t *testing.T) {
	parser := NewProfileParser()
	yamlData := []byte(`name: thumb
width: 200
height: 200
`)

	profile, err := parser.Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if profile.Mode != entities.ModeCrop {
		t.Errorf("Mode = %v, want crop default", profile.Mode)
	}
	if profile.Suffix != "_thumb" {
		t.Errorf("Suffix = %v, want _thumb", profile.Suffix)
	}
	if profile.OutputDir != "thumb" {
		t.Errorf("OutputDir = %v, want thumb", profile.OutputDir)
	}
	if profile.JPEGQuality() != entities.DefaultJPEGQuality {
		t.Errorf("JPEGQuality() = %d, want %d", profile.JPEGQuality(), entities.DefaultJPEGQuality)
	}
}

func TestProfileParser_Parse_MissingName(t *testing.T) {
	parser := NewProfileParser()

	if _, err := parser.Parse([]byte("width: 100\nheight: 100\n")); err == nil {
		t.Error("Parse() should reject a profile without a name")
	}
}

func TestProfileParser_Parse_InvalidDimensions(t *testing.T) {
	parser := NewProfileParser()

	if _, err := parser.Parse([]byte("name: bad\nwidth: 0\nheight: 100\n")); err == nil {
		t.Error("Parse() should reject zero width")
	}
	if _, err := parser.Parse([]byte("name: bad\nwidth: 100\nheight: -5\n")); err == nil {
		t.Error("Parse() should reject negative height")
	}
}

func TestProfileParser_Parse_UnknownMode(t *testing.T) {
	parser := NewProfileParser()

	_, err := parser.Parse([]byte("name: bad\nwidth: 100\nheight: 100\nmode: stretch\n"))
	if err == nil {
		t.Error("Parse() should reject unknown modes")
	}
}

func TestProfileParser_Parse_MalformedYAML(t *testing.T) {
	parser := NewProfileParser()

	if _, err := parser.Parse([]byte("name: [unclosed")); err == nil {
		t.Error("Parse() should reject malformed YAML")
	}
}

// FuzzProfileParser tests the YAML parser against random/malformed inputs
// to detect crashes, panics, or unexpected behavior.
//
// Run with: go test -fuzz=FuzzProfileParser -fuzztime=30s
func FuzzProfileParser(f *testing.F) {
	// Seed corpus with valid YAML examples
	f.Add([]byte(`name: preview
width: 800
height: 600
mode: crop
`))

	f.Add([]byte(`name: hero
description: Full-width hero banner
width: 1920
height: 640
mode: pad
quality: 90
suffix: _hero
output_dir: hero
`))

	f.Add([]byte("name: x\nwidth: -1\nheight: 0\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		parser := NewProfileParser()
		profile, err := parser.Parse(data)
		if err != nil {
			return
		}
		// Successful parses must satisfy the invariants validation promises
		if profile.Name == "" {
			t.Error("parsed profile has empty name")
		}
		if profile.Width <= 0 || profile.Height <= 0 {
			t.Errorf("parsed profile has invalid size %dx%d", profile.Width, profile.Height)
		}
		if profile.Mode != entities.ModeCrop && profile.Mode != entities.ModePad {
			t.Errorf("parsed profile has invalid mode %q", profile.Mode)
		}
	})
}
