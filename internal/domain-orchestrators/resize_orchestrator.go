// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/foliotools/folio/internal/domain/entities"
	"github.com/foliotools/folio/internal/domain/interfaces"
	"github.com/foliotools/folio/internal/domain/interfaces/repositories"
)

// ImageScanner interface for discovering portfolio images
type ImageScanner interface {
	ScanImages(portfolioDir string) ([]entities.SourceImage, error)
}

// Backupper interface for copying originals aside before processing
type Backupper interface {
	Backup(portfolioDir string, images []entities.SourceImage) ([]string, error)
}

// Resizer interface for producing a single output variant
type Resizer interface {
	ResizeToFile(src entities.SourceImage, profile entities.Profile, outputPath string) error
}

// ResizeOrchestrator coordinates the complete portfolio resize workflow
type ResizeOrchestrator struct {
	profileRepo repositories.ProfileRepository
	scanner     ImageScanner
	backupper   Backupper
	resizer     Resizer
	logger      interfaces.Logger
	config      ResizeOrchestratorConfig
}

// ResizeOrchestratorConfig holds configuration for the orchestrator
type ResizeOrchestratorConfig struct {
	PortfolioDir string
	ProfileNames []string // empty means every available profile
	Backup       bool
	DryRun       bool

	// ForcePad switches every profile to pad mode (white letterboxing)
	ForcePad bool

	// QualityOverride replaces each profile's JPEG quality when > 0
	QualityOverride int

	// OnVariant is called after each variant attempt; the CLI uses it for
	// the per-file progress lines.
	OnVariant func(entities.VariantResult)
}

// NewResizeOrchestrator creates a new resize orchestrator
func NewResizeOrchestrator(
	profileRepo repositories.ProfileRepository,
	scanner ImageScanner,
	backupper Backupper,
	resizer Resizer,
	logger interfaces.Logger,
	config ResizeOrchestratorConfig,
) *ResizeOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &ResizeOrchestrator{
		profileRepo: profileRepo,
		scanner:     scanner,
		backupper:   backupper,
		resizer:     resizer,
		logger:      logger,
		config:      config,
	}
}

// Process executes the resize workflow: resolve profiles, scan the portfolio
// directory, back up originals, then produce every variant sequentially.
// Individual variant failures are recorded in the report and do not stop the
// run; only setup failures (profiles, scan, backup) abort.
func (o *ResizeOrchestrator) Process(ctx context.Context) (*entities.ResizeReport, error) {
	startTime := time.Now()

	report := &entities.ResizeReport{
		PortfolioDir:   o.config.PortfolioDir,
		SuccessDetails: []entities.VariantResult{},
		FailureDetails: []entities.VariantResult{},
	}

	profiles, err := o.resolveProfiles(ctx)
	if err != nil {
		return report, err
	}

	images, err := o.scanner.ScanImages(o.config.PortfolioDir)
	if err != nil {
		return report, err
	}
	report.TotalImages = len(images)
	report.TotalVariants = len(images) * len(profiles)

	if len(images) == 0 {
		o.logger.Warn("no images found", interfaces.F("dir", o.config.PortfolioDir))
		report.DurationSeconds = time.Since(startTime).Seconds()
		return report, nil
	}

	if o.config.Backup && !o.config.DryRun {
		copied, err := o.backupper.Backup(o.config.PortfolioDir, images)
		if err != nil {
			return report, fmt.Errorf("backup failed: %w", err)
		}
		report.BackedUp = len(copied)
		o.logger.Info("originals backed up", interfaces.F("count", len(copied)))
	}

	for _, img := range images {
		if ctx.Err() != nil {
			report.DurationSeconds = time.Since(startTime).Seconds()
			return report, ctx.Err()
		}

		for _, profile := range profiles {
			o.processVariant(img, profile, report)
		}
	}

	report.DurationSeconds = time.Since(startTime).Seconds()
	return report, nil
}

// ProcessOne produces every variant for a single image. The watch command
// uses this when a file changes.
func (o *ResizeOrchestrator) ProcessOne(ctx context.Context, img entities.SourceImage) (*entities.ResizeReport, error) {
	startTime := time.Now()

	report := &entities.ResizeReport{
		PortfolioDir:   o.config.PortfolioDir,
		TotalImages:    1,
		SuccessDetails: []entities.VariantResult{},
		FailureDetails: []entities.VariantResult{},
	}

	profiles, err := o.resolveProfiles(ctx)
	if err != nil {
		return report, err
	}
	report.TotalVariants = len(profiles)

	if o.config.Backup && !o.config.DryRun {
		copied, err := o.backupper.Backup(o.config.PortfolioDir, []entities.SourceImage{img})
		if err != nil {
			return report, fmt.Errorf("backup failed: %w", err)
		}
		report.BackedUp = len(copied)
	}

	for _, profile := range profiles {
		o.processVariant(img, profile, report)
	}

	report.DurationSeconds = time.Since(startTime).Seconds()
	return report, nil
}

func (o *ResizeOrchestrator) processVariant(img entities.SourceImage, profile entities.Profile, report *entities.ResizeReport) {
	outputPath := filepath.Join(o.config.PortfolioDir, profile.OutputDir, img.VariantName(profile))

	result := entities.VariantResult{
		Image:      img.Name,
		Profile:    profile.Name,
		OutputPath: outputPath,
	}

	if o.config.DryRun {
		result.Status = "skipped"
		result.Message = "dry run"
		report.Skipped++
		o.notify(result)
		return
	}

	if err := o.resizer.ResizeToFile(img, profile, outputPath); err != nil {
		result.Status = "error"
		result.Message = err.Error()
		report.AddFailure(result)
		o.logger.Error("resize failed",
			interfaces.F("image", img.Name),
			interfaces.F("profile", profile.Name),
			interfaces.F("error", err))
		o.notify(result)
		return
	}

	result.Status = "success"
	report.AddSuccess(result)
	o.notify(result)
}

func (o *ResizeOrchestrator) notify(result entities.VariantResult) {
	if o.config.OnVariant != nil {
		o.config.OnVariant(result)
	}
}

func (o *ResizeOrchestrator) resolveProfiles(ctx context.Context) ([]entities.Profile, error) {
	var selected []*entities.Profile

	if len(o.config.ProfileNames) == 0 {
		all, err := o.profileRepo.ListProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}
		selected = all
	} else {
		for _, name := range o.config.ProfileNames {
			p, err := o.profileRepo.GetProfile(ctx, name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, p)
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no resize profiles available")
	}

	profiles := make([]entities.Profile, 0, len(selected))
	for _, p := range selected {
		profile := *p
		if o.config.ForcePad {
			profile.Mode = entities.ModePad
		}
		if o.config.QualityOverride > 0 {
			profile.Quality = o.config.QualityOverride
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
