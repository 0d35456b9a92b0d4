package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func TestDirectoryScanner_ScanImages(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "office.jpg"))
	touch(t, filepath.Join(dir, "team.PNG"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "archive.webp"))

	// Output directories from a previous run must not be traversed
	if err := os.MkdirAll(filepath.Join(dir, "preview"), 0750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, filepath.Join(dir, "preview", "office_preview.jpg"))

	scanner := NewDirectoryScanner()
	images, err := scanner.ScanImages(dir)
	if err != nil {
		t.Fatalf("ScanImages() error = %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("ScanImages() found %d images, want 3", len(images))
	}

	// Sorted by name
	want := []string{"archive.webp", "office.jpg", "team.PNG"}
	for i, img := range images {
		if img.Name != want[i] {
			t.Errorf("images[%d].Name = %s, want %s", i, img.Name, want[i])
		}
	}
}

func TestDirectoryScanner_ScanImages_MissingDirectory(t *testing.T) {
	scanner := NewDirectoryScanner()

	if _, err := scanner.ScanImages(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ScanImages() should fail for a missing directory")
	}
}

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"a.jpg":      true,
		"a.JPEG":     true,
		"a.png":      true,
		"a.bmp":      true,
		"a.tiff":     true,
		"a.webp":     true,
		"a.gif":      false,
		"a.txt":      false,
		"noext":      false,
		"a.jpg.yaml": false,
	}

	for name, want := range cases {
		if got := IsImageFile(name); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", name, got, want)
		}
	}
}
