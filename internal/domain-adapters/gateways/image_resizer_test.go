package gateways

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/foliotools/folio/internal/domain/entities"
)

func testProfile(mode entities.ResizeMode) entities.Profile {
	return entities.Profile{
		Name:      "preview",
		Width:     80,
		Height:    60,
		Mode:      mode,
		Quality:   85,
		Suffix:    "_preview",
		OutputDir: "preview",
	}
}

func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to save test image: %v", err)
	}
}

func TestImageResizer_Apply_CropProducesExactSize(t *testing.T) {
	r := NewImageResizer()

	src := imaging.New(400, 100, color.NRGBA{A: 255})
	out, err := r.Apply(src, testProfile(entities.ModeCrop))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if out.Bounds().Dx() != 80 || out.Bounds().Dy() != 60 {
		t.Errorf("output = %dx%d, want 80x60", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestImageResizer_Apply_PadProducesExactSizeWithWhiteBorder(t *testing.T) {
	r := NewImageResizer()

	// A black 400x100 source padded into 80x60 leaves white bands
	src := imaging.New(400, 100, color.NRGBA{A: 255})
	out, err := r.Apply(src, testProfile(entities.ModePad))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if out.Bounds().Dx() != 80 || out.Bounds().Dy() != 60 {
		t.Fatalf("output = %dx%d, want 80x60", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Top-left pixel is padding, center pixel is image content
	r0, g0, b0, _ := out.At(0, 0).RGBA()
	if r0 != 0xffff || g0 != 0xffff || b0 != 0xffff {
		t.Errorf("corner pixel = %v, want white padding", out.At(0, 0))
	}

	rc, gc, bc, _ := out.At(40, 30).RGBA()
	if rc == 0xffff && gc == 0xffff && bc == 0xffff {
		t.Error("center pixel is white, expected image content")
	}
}

func TestImageResizer_ResizeToFile_JPEG(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "office.jpg")
	writeTestImage(t, srcPath, 320, 240)

	r := NewImageResizer()
	src := entities.SourceImage{Path: srcPath, Name: "office.jpg"}
	outPath := filepath.Join(dir, "preview", "office_preview.jpg")

	if err := r.ResizeToFile(src, testProfile(entities.ModeCrop), outPath); err != nil {
		t.Fatalf("ResizeToFile() error = %v", err)
	}

	out, err := imaging.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	if out.Bounds().Dx() != 80 || out.Bounds().Dy() != 60 {
		t.Errorf("output = %dx%d, want 80x60", out.Bounds().Dx(), out.Bounds().Dy())
	}

	// JPEG magic bytes
	assertFilePrefix(t, outPath, []byte{0xff, 0xd8})
}

func TestImageResizer_ResizeToFile_PNGStaysPNG(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "diagram.png")
	writeTestImage(t, srcPath, 100, 300)

	r := NewImageResizer()
	src := entities.SourceImage{Path: srcPath, Name: "diagram.png"}
	outPath := filepath.Join(dir, "preview", "diagram_preview.png")

	if err := r.ResizeToFile(src, testProfile(entities.ModeCrop), outPath); err != nil {
		t.Fatalf("ResizeToFile() error = %v", err)
	}

	assertFilePrefix(t, outPath, []byte{0x89, 'P', 'N', 'G'})
}

func TestImageResizer_ResizeToFile_MissingSource(t *testing.T) {
	r := NewImageResizer()
	src := entities.SourceImage{Path: filepath.Join(t.TempDir(), "gone.jpg"), Name: "gone.jpg"}

	err := r.ResizeToFile(src, testProfile(entities.ModeCrop), filepath.Join(t.TempDir(), "out.jpg"))
	if err == nil {
		t.Error("ResizeToFile() should fail for a missing source")
	}
}

func assertFilePrefix(t *testing.T, path string, prefix []byte) {
	t.Helper()
	data, err := readFilePrefix(path, len(prefix))
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	for i, b := range prefix {
		if data[i] != b {
			t.Fatalf("%s: byte %d = %#x, want %#x", path, i, data[i], b)
		}
	}
}

func readFilePrefix(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
