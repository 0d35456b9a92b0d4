package gateways

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	// webp sources decode through image.Decode; imaging registers the other formats
	_ "golang.org/x/image/webp"

	"github.com/foliotools/folio/internal/domain/entities"
	"github.com/foliotools/folio/internal/domain/services"
)

// ImageResizer produces resized variants of portfolio images
type ImageResizer struct {
	geometry *services.GeometryService
}

// NewImageResizer creates a new image resizer
func NewImageResizer() *ImageResizer {
	return &ImageResizer{
		geometry: services.NewGeometryService(),
	}
}

// ResizeToFile reads a source image, applies the profile and writes the
// result to outputPath. JPEG sources are re-encoded as JPEG at the profile
// quality; everything else is written as PNG.
func (r *ImageResizer) ResizeToFile(src entities.SourceImage, profile entities.Profile, outputPath string) error {
	img, err := imaging.Open(src.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src.Path, err)
	}

	out, err := r.Apply(img, profile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return r.save(out, src, profile, outputPath)
}

// Apply resizes an already-decoded image according to the profile
func (r *ImageResizer) Apply(img image.Image, profile entities.Profile) (image.Image, error) {
	bounds := img.Bounds()
	plan, err := r.geometry.Plan(bounds.Dx(), bounds.Dy(), profile)
	if err != nil {
		return nil, err
	}

	resized := imaging.Resize(img, plan.ScaledWidth, plan.ScaledHeight, imaging.Lanczos)

	if plan.Mode == entities.ModePad {
		canvas := imaging.New(profile.Width, profile.Height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		return imaging.Paste(canvas, resized, image.Pt(plan.OffsetX, plan.OffsetY)), nil
	}

	return imaging.Crop(resized, plan.CropRect), nil
}

func (r *ImageResizer) save(img image.Image, src entities.SourceImage, profile entities.Profile, outputPath string) error {
	//nolint:gosec // G304: output path is derived from the portfolio directory
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}

	var encodeErr error
	if src.IsJPEG() {
		encodeErr = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(profile.JPEGQuality()))
	} else {
		encodeErr = imaging.Encode(f, img, imaging.PNG)
	}

	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode %s: %w", outputPath, encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, closeErr)
	}
	return nil
}
