package services

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBackupFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestManifestService_LoadMissingManifest(t *testing.T) {
	m := NewManifestService()

	manifest, err := m.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(manifest.Checksums) != 0 {
		t.Errorf("Checksums = %v, want empty", manifest.Checksums)
	}
}

func TestManifestService_SaveAndLoadRoundTrip(t *testing.T) {
	m := NewManifestService()
	dir := t.TempDir()

	path := writeBackupFile(t, dir, "office.jpg", "not really a jpeg")

	manifest, err := m.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := m.Record(manifest, "office.jpg", path); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := m.Save(dir, manifest); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := m.Load(dir)
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}
	if reloaded.Checksums["office.jpg"] != manifest.Checksums["office.jpg"] {
		t.Errorf("checksum changed across round trip")
	}
}

func TestManifestService_VerifyDetectsTampering(t *testing.T) {
	m := NewManifestService()
	dir := t.TempDir()

	path := writeBackupFile(t, dir, "office.jpg", "original content")

	manifest, _ := m.Load(dir)
	if err := m.Record(manifest, "office.jpg", path); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if problems := m.Verify(dir, manifest); len(problems) != 0 {
		t.Fatalf("Verify() on intact backup = %v, want none", problems)
	}

	// Tamper with the backup
	writeBackupFile(t, dir, "office.jpg", "modified content")

	problems := m.Verify(dir, manifest)
	if len(problems) != 1 {
		t.Fatalf("Verify() problems = %d, want 1", len(problems))
	}
	if problems[0].Name != "office.jpg" {
		t.Errorf("problem name = %s, want office.jpg", problems[0].Name)
	}
}

func TestManifestService_VerifyDetectsMissingFile(t *testing.T) {
	m := NewManifestService()
	dir := t.TempDir()

	manifest, _ := m.Load(dir)
	manifest.Checksums["gone.png"] = "deadbeef"

	problems := m.Verify(dir, manifest)
	if len(problems) != 1 {
		t.Fatalf("Verify() problems = %d, want 1", len(problems))
	}
	if problems[0].Reason != "missing or unreadable" {
		t.Errorf("reason = %q, want missing or unreadable", problems[0].Reason)
	}
}
