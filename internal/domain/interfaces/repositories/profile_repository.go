// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/foliotools/folio/internal/domain/entities"
)

// ProfileRepository defines the interface for accessing resize profiles
type ProfileRepository interface {
	// GetProfile retrieves a resize profile by name
	GetProfile(ctx context.Context, name string) (*entities.Profile, error)

	// ListProfiles returns all available resize profiles, built-ins included
	ListProfiles(ctx context.Context) ([]*entities.Profile, error)
}
