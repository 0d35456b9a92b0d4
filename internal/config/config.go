// Package config resolves tool defaults from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Built-in defaults, overridable via environment or flags
const (
	DefaultPortfolioDir = "static/img/portfolio"
	DefaultRequirements = "requirements_resize.txt"
	DefaultPip          = "pip"
)

// Environment variable names recognized as flag defaults
const (
	EnvPortfolioDir = "FOLIO_PORTFOLIO_DIR"
	EnvRequirements = "FOLIO_REQUIREMENTS"
	EnvPip          = "FOLIO_PIP"
	EnvProfilesDir  = "FOLIO_PROFILES_DIR"
)

// LoadDotEnv loads a .env file from the working directory when present.
// A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// EnvOr returns the value of an environment variable, or fallback when unset
// or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PortfolioDir returns the default portfolio directory
func PortfolioDir() string { return EnvOr(EnvPortfolioDir, DefaultPortfolioDir) }

// Requirements returns the default requirements file path
func Requirements() string { return EnvOr(EnvRequirements, DefaultRequirements) }

// Pip returns the default installer executable
func Pip() string { return EnvOr(EnvPip, DefaultPip) }

// ProfilesDir returns the default profiles directory ("" means built-ins only)
func ProfilesDir() string { return EnvOr(EnvProfilesDir, "") }
