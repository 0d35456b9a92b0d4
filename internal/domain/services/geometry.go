// Package services contains pure domain logic shared by the orchestrators.
package services

import (
	"fmt"
	"image"

	"github.com/foliotools/folio/internal/domain/entities"
)

// ResizePlan describes how a source image maps onto a profile's target size.
// Crop mode scales the source until it covers the target and center-crops the
// overflow; pad mode fits the source inside the target and centers it on a
// white canvas.
type ResizePlan struct {
	// ScaledWidth and ScaledHeight are the dimensions the source is resampled to
	ScaledWidth  int
	ScaledHeight int

	// CropRect is the region cut from the scaled image (crop mode only)
	CropRect image.Rectangle

	// OffsetX and OffsetY position the scaled image on the canvas (pad mode only)
	OffsetX int
	OffsetY int

	Mode entities.ResizeMode
}

// GeometryService computes resize plans from source and target dimensions
type GeometryService struct{}

// NewGeometryService creates a new geometry service
func NewGeometryService() *GeometryService {
	return &GeometryService{}
}

// Plan computes the resize plan for a source of srcW x srcH targeting the
// given profile. An error is returned for degenerate dimensions.
func (g *GeometryService) Plan(srcW, srcH int, profile entities.Profile) (*ResizePlan, error) {
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("invalid source dimensions %dx%d", srcW, srcH)
	}
	if profile.Width <= 0 || profile.Height <= 0 {
		return nil, fmt.Errorf("profile %s has invalid target dimensions %s", profile.Name, profile.SizeLabel())
	}

	srcRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(profile.Width) / float64(profile.Height)

	plan := &ResizePlan{Mode: profile.Mode}

	if profile.Mode == entities.ModePad {
		// Fit inside the target, preserving aspect ratio.
		if srcRatio > targetRatio {
			plan.ScaledWidth = profile.Width
			plan.ScaledHeight = int(float64(profile.Width) / srcRatio)
		} else {
			plan.ScaledHeight = profile.Height
			plan.ScaledWidth = int(float64(profile.Height) * srcRatio)
		}
		plan.OffsetX = (profile.Width - plan.ScaledWidth) / 2
		plan.OffsetY = (profile.Height - plan.ScaledHeight) / 2
		return plan, nil
	}

	// Crop mode: cover the target, then cut the center.
	if srcRatio > targetRatio {
		// Source is wider than the target; the width overflows.
		plan.ScaledHeight = profile.Height
		plan.ScaledWidth = int(float64(profile.Height) * srcRatio)
		left := (plan.ScaledWidth - profile.Width) / 2
		plan.CropRect = image.Rect(left, 0, left+profile.Width, profile.Height)
	} else {
		// Source is taller than the target; the height overflows.
		plan.ScaledWidth = profile.Width
		plan.ScaledHeight = int(float64(profile.Width) / srcRatio)
		top := (plan.ScaledHeight - profile.Height) / 2
		plan.CropRect = image.Rect(0, top, profile.Width, top+profile.Height)
	}

	return plan, nil
}
