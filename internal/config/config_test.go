package config

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv(EnvPortfolioDir, "assets/img")

	if got := PortfolioDir(); got != "assets/img" {
		t.Errorf("PortfolioDir() = %q, want assets/img", got)
	}

	t.Setenv(EnvPortfolioDir, "")
	if got := PortfolioDir(); got != DefaultPortfolioDir {
		t.Errorf("PortfolioDir() = %q, want default %q", got, DefaultPortfolioDir)
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv(EnvRequirements, "")
	t.Setenv(EnvPip, "")
	t.Setenv(EnvProfilesDir, "")

	if got := Requirements(); got != DefaultRequirements {
		t.Errorf("Requirements() = %q, want %q", got, DefaultRequirements)
	}
	if got := Pip(); got != DefaultPip {
		t.Errorf("Pip() = %q, want %q", got, DefaultPip)
	}
	if got := ProfilesDir(); got != "" {
		t.Errorf("ProfilesDir() = %q, want empty", got)
	}
}
